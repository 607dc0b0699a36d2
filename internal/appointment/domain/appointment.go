package domain

import (
	"context"
	"time"
)

type Appointment struct {
	ID           int64
	UserID       int64
	Branch       string
	Professional string
	Service      string
	Datetime     string
	Status       string
	CreatedAt    time.Time
}

//go:generate mockgen -destination=../../mocks/mock_appointment_repository.go -package=mocks github.com/Hoff08/barbeariateste/internal/appointment/domain AppointmentRepository

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *Appointment) (*Appointment, error)
	ListByUserID(ctx context.Context, userID int64) ([]Appointment, error)
}
