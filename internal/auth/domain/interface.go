package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/Hoff08/barbeariateste/internal/auth/domain UserRepository

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByProviderID(ctx context.Context, provider Provider, externalID string) (*User, error)
	GetByEmailOrProviderID(ctx context.Context, email string, provider Provider, externalID string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	CreateLocal(ctx context.Context, name, email, passwordHash string) (*User, error)
	CreateOrLinkExternal(ctx context.Context, provider Provider, name, email, externalID string) (*User, bool, error)
}

//go:generate mockgen -destination=../../mocks/mock_session_repository.go -package=mocks github.com/Hoff08/barbeariateste/internal/auth/domain SessionRepository

type SessionRepository interface {
	StoreRefreshSession(ctx context.Context, session *RefreshSession) error
	ValidateRefreshSession(ctx context.Context, token string) (int64, error)
	RevokeRefreshSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}
