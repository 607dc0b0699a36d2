package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/Hoff08/barbeariateste/internal/auth/service TokenGenerator

import (
	"errors"
	"time"

	autherror "github.com/Hoff08/barbeariateste/internal/errors"
	"github.com/golang-jwt/jwt/v5"
)

// TokenKind tags a token as access or refresh. The tag is embedded in
// the claims and checked on every verification; an access token is
// never accepted where a refresh token is required, and vice versa.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

type TokenGenerator interface {
	MintAccess(userID int64) (string, time.Time, error)
	MintRefresh(userID int64) (string, time.Time, error)
	Verify(tokenString string, expected TokenKind) (*TokenClaims, error)
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
}

// TokenService signs and verifies the two token kinds with distinct
// secrets, so a leaked short-lived access token can never be used to
// forge a long-lived refresh token.
type TokenService struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type TokenClaims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Kind   string `json:"kind"`
}

func NewTokenService(accessSecret, refreshSecret string, accessMinutes, refreshMinutes int) *TokenService {
	return &TokenService{
		AccessTokenSecret:  accessSecret,
		RefreshTokenSecret: refreshSecret,
		AccessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
	}
}

func (ts *TokenService) secretFor(kind TokenKind) ([]byte, bool) {
	switch kind {
	case TokenKindAccess:
		return []byte(ts.AccessTokenSecret), true
	case TokenKindRefresh:
		return []byte(ts.RefreshTokenSecret), true
	}
	return nil, false
}

func (ts *TokenService) mint(userID int64, kind TokenKind, validity time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(validity)

	claims := TokenClaims{
		UserID: userID,
		Kind:   string(kind),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	secret, _ := ts.secretFor(kind)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func (ts *TokenService) MintAccess(userID int64) (string, time.Time, error) {
	return ts.mint(userID, TokenKindAccess, ts.AccessTokenExpiry)
}

func (ts *TokenService) MintRefresh(userID int64) (string, time.Time, error) {
	return ts.mint(userID, TokenKindRefresh, ts.RefreshTokenExpiry)
}

// Verify parses and validates the token and checks its kind tag. The
// verification secret is chosen from the token's own kind claim, then
// the verified kind is compared to the expected one: a validly signed
// token of the wrong kind fails with ErrTokenKindMismatch, while a
// forgery still fails signature verification against the claimed
// kind's secret.
func (ts *TokenService) Verify(tokenString string, expected TokenKind) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherror.ErrTokenInvalid
		}
		c, ok := token.Claims.(*TokenClaims)
		if !ok {
			return nil, autherror.ErrTokenInvalid
		}
		secret, ok := ts.secretFor(TokenKind(c.Kind))
		if !ok {
			return nil, autherror.ErrTokenInvalid
		}
		return secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherror.ErrTokenExpired
		}
		return nil, autherror.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, autherror.ErrTokenInvalid
	}

	if TokenKind(claims.Kind) != expected {
		return nil, autherror.ErrTokenKindMismatch
	}

	return claims, nil
}

func (ts *TokenService) GetAccessTokenExpiry() time.Duration {
	return ts.AccessTokenExpiry
}

func (ts *TokenService) GetRefreshTokenExpiry() time.Duration {
	return ts.RefreshTokenExpiry
}
