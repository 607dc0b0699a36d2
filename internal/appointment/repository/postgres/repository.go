package postgres

import (
	"context"
	"fmt"

	"github.com/Hoff08/barbeariateste/internal/appointment/domain"
	autherror "github.com/Hoff08/barbeariateste/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

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

func (r *PostgresRepository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	query := `
		INSERT INTO appointments (user_id, branch, professional, service, datetime, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	row := r.db.QueryRow(ctx, query, a.UserID, a.Branch, a.Professional, a.Service, a.Datetime, a.Status)

	created := *a
	if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: failed to create appointment: %v", autherror.ErrStorage, err)
	}

	return &created, nil
}

func (r *PostgresRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.Appointment, error) {
	query := `
		SELECT id, user_id, branch, professional, service, datetime, status, created_at
		FROM appointments
		WHERE user_id = $1
		ORDER BY datetime DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list appointments: %v", autherror.ErrStorage, err)
	}
	defer rows.Close()

	var appointments []domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		if err := rows.Scan(&a.ID, &a.UserID, &a.Branch, &a.Professional, &a.Service,
			&a.Datetime, &a.Status, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: failed to scan appointment row: %v", autherror.ErrStorage, err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read appointment rows: %v", autherror.ErrStorage, err)
	}

	return appointments, nil
}
