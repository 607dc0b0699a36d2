package service

import (
	"context"

	"github.com/Hoff08/barbeariateste/internal/appointment/domain"
	"github.com/Hoff08/barbeariateste/internal/appointment/dto"
	"github.com/Hoff08/barbeariateste/pkg/constant"
)

type AppointmentService struct {
	repo domain.AppointmentRepository
}

func NewAppointmentService(repo domain.AppointmentRepository) *AppointmentService {
	return &AppointmentService{repo: repo}
}

func (s *AppointmentService) Create(ctx context.Context, userID int64, input dto.CreateAppointmentInput) (*dto.AppointmentOutput, error) {
	created, err := s.repo.Create(ctx, &domain.Appointment{
		UserID:       userID,
		Branch:       input.Branch,
		Professional: input.Professional,
		Service:      input.Service,
		Datetime:     input.Datetime,
		Status:       constant.DefaultAppointmentStatus,
	})
	if err != nil {
		return nil, err
	}

	return toOutput(created), nil
}

func (s *AppointmentService) ListByUser(ctx context.Context, userID int64) ([]dto.AppointmentOutput, error) {
	appointments, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentOutput, 0, len(appointments))
	for i := range appointments {
		out = append(out, *toOutput(&appointments[i]))
	}

	return out, nil
}

func toOutput(a *domain.Appointment) *dto.AppointmentOutput {
	return &dto.AppointmentOutput{
		ID:           a.ID,
		Branch:       a.Branch,
		Professional: a.Professional,
		Service:      a.Service,
		Datetime:     a.Datetime,
		Status:       a.Status,
		CreatedAt:    a.CreatedAt,
	}
}
