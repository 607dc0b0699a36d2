package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials         = errors.New("invalid credentials")
	ErrEmailAlreadyInUse          = errors.New("email already in use")
	ErrIdentityVerificationFailed = errors.New("identity verification failed")
	ErrTokenInvalid               = errors.New("token invalid")
	ErrTokenExpired               = errors.New("token expired")
	ErrTokenKindMismatch          = errors.New("token kind mismatch")
	ErrSessionNotFound            = errors.New("refresh session not found")
	ErrSessionExpired             = errors.New("refresh session expired")
	ErrUserNotFound               = errors.New("user not found")
	ErrStorage                    = errors.New("storage error")
)
