package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Hoff08/barbeariateste/internal/auth/domain"
	autherror "github.com/Hoff08/barbeariateste/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// DB is the subset of pgxpool.Pool the repository needs. pgxmock pools
// satisfy it too, which is how the tests drive this package.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// providerColumn maps a provider to its users column. Only known
// providers may ever reach a query string.
func providerColumn(p domain.Provider) (string, error) {
	switch p {
	case domain.ProviderGoogle:
		return "google_id", nil
	case domain.ProviderApple:
		return "apple_id", nil
	}
	return "", fmt.Errorf("unknown provider %q", p)
}

const userColumns = `id, name, email, COALESCE(password_hash, ''), COALESCE(google_id, ''), COALESCE(apple_id, ''), created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.GoogleID, &user.AppleID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to scan user: %v", autherror.ErrStorage, err)
	}
	return &user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1 LIMIT 1`, userColumns)
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 LIMIT 1`, userColumns)
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) GetByProviderID(ctx context.Context, provider domain.Provider, externalID string) (*domain.User, error) {
	column, err := providerColumn(provider)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1 LIMIT 1`, userColumns, column)
	return scanUser(r.db.QueryRow(ctx, query, externalID))
}

// GetByEmailOrProviderID matches on either predicate. The unique
// constraints on email and on each provider id guarantee at most one row.
func (r *PostgresRepository) GetByEmailOrProviderID(ctx context.Context, email string, provider domain.Provider, externalID string) (*domain.User, error) {
	column, err := providerColumn(provider)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1 OR %s = $2 LIMIT 1`, userColumns, column)
	return scanUser(r.db.QueryRow(ctx, query, email, externalID))
}

func (r *PostgresRepository) CreateLocal(ctx context.Context, name, email, passwordHash string) (*domain.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING %s`, userColumns)

	row := r.db.QueryRow(ctx, query, name, email, passwordHash)

	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.GoogleID, &user.AppleID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, autherror.ErrEmailAlreadyInUse
		}
		return nil, fmt.Errorf("%w: failed to create user: %v", autherror.ErrStorage, err)
	}

	return &user, nil
}

// CreateOrLinkExternal finds or creates the canonical user for a
// verified external identity. The upsert makes the first-login race
// safe: two concurrent logins for the same new email converge on one
// row, with exactly one of them observing created=true. A provider-id
// collision under a different email surfaces as a unique violation and
// is resolved by re-reading the winner's row.
func (r *PostgresRepository) CreateOrLinkExternal(ctx context.Context, provider domain.Provider, name, email, externalID string) (*domain.User, bool, error) {
	if user, err := r.GetByProviderID(ctx, provider, externalID); err != nil {
		return nil, false, err
	} else if user != nil {
		return user, false, nil
	}

	column, err := providerColumn(provider)
	if err != nil {
		return nil, false, err
	}

	// xmax = 0 only on freshly inserted rows; conflicting logins link
	// the provider id onto the existing email-matched row instead.
	query := fmt.Sprintf(`
		INSERT INTO users (name, email, %[1]s)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET
			%[1]s = COALESCE(users.%[1]s, EXCLUDED.%[1]s),
			updated_at = now()
		RETURNING %[2]s, (xmax = 0) AS created`, column, userColumns)

	row := r.db.QueryRow(ctx, query, name, email, externalID)

	var user domain.User
	var created bool
	err = row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.GoogleID, &user.AppleID, &user.CreatedAt, &user.UpdatedAt, &created)
	if err != nil {
		if isUniqueViolation(err) {
			// Lost the race on the provider id; the winner's row is
			// the canonical user.
			existing, lookupErr := r.GetByProviderID(ctx, provider, externalID)
			if lookupErr != nil {
				return nil, false, lookupErr
			}
			if existing != nil {
				return existing, false, nil
			}
			return nil, false, autherror.ErrEmailAlreadyInUse
		}
		return nil, false, fmt.Errorf("%w: failed to create or link user: %v", autherror.ErrStorage, err)
	}

	return &user, created, nil
}

func (r *PostgresRepository) StoreRefreshSession(ctx context.Context, session *domain.RefreshSession) error {
	query := `INSERT INTO refresh_sessions (id, user_id, token, expires_at, created_at)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query,
		session.ID, session.UserID, session.Token, session.ExpiresAt, session.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: failed to store refresh session: %v", autherror.ErrStorage, err)
	}
	return nil
}

// ValidateRefreshSession resolves a raw refresh token to its owning
// user. The expiry comparison happens here, at validation time, so an
// expired row that the sweeper has not removed yet is never authorized.
func (r *PostgresRepository) ValidateRefreshSession(ctx context.Context, token string) (int64, error) {
	query := `SELECT user_id, expires_at FROM refresh_sessions WHERE token = $1 LIMIT 1`
	row := r.db.QueryRow(ctx, query, token)

	var userID int64
	var expiresAt time.Time
	err := row.Scan(&userID, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, autherror.ErrSessionNotFound
		}
		return 0, fmt.Errorf("%w: failed to look up refresh session: %v", autherror.ErrStorage, err)
	}

	if !expiresAt.After(time.Now()) {
		return 0, autherror.ErrSessionExpired
	}

	return userID, nil
}

// RevokeRefreshSession deletes the session holding the given token.
// Revoking an unknown token is a no-op.
func (r *PostgresRepository) RevokeRefreshSession(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM refresh_sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("%w: failed to revoke refresh session: %v", autherror.ErrStorage, err)
	}
	return nil
}

// DeleteExpiredSessions removes every session past its expiry and
// reports how many rows went away.
func (r *PostgresRepository) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM refresh_sessions WHERE expires_at < now()`)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to delete expired sessions: %v", autherror.ErrStorage, err)
	}
	return tag.RowsAffected(), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
