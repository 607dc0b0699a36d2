package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Hoff08/barbeariateste/internal/appointment/domain"
	"github.com/Hoff08/barbeariateste/internal/appointment/dto"
	"github.com/Hoff08/barbeariateste/internal/appointment/service"
	"github.com/Hoff08/barbeariateste/internal/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentService_Create(t *testing.T) {
	input := dto.CreateAppointmentInput{
		Branch:       "Centro",
		Professional: "Carlos",
		Service:      "Corte",
		Datetime:     "2026-09-01T14:00:00",
	}

	t.Run("success applies default status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockAppointmentRepository(ctrl)
		svc := service.NewAppointmentService(repo)

		now := time.Now()
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
				assert.Equal(t, int64(7), a.UserID)
				assert.Equal(t, "confirmed", a.Status)
				created := *a
				created.ID = 42
				created.CreatedAt = now
				return &created, nil
			})

		out, err := svc.Create(context.Background(), 7, input)

		require.NoError(t, err)
		assert.Equal(t, int64(42), out.ID)
		assert.Equal(t, "Centro", out.Branch)
		assert.Equal(t, "confirmed", out.Status)
		assert.Equal(t, now, out.CreatedAt)
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockAppointmentRepository(ctrl)
		svc := service.NewAppointmentService(repo)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("insert failed"))

		out, err := svc.Create(context.Background(), 7, input)

		assert.Error(t, err)
		assert.Nil(t, out)
	})
}

func TestAppointmentService_ListByUser(t *testing.T) {
	t.Run("returns appointments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockAppointmentRepository(ctrl)
		svc := service.NewAppointmentService(repo)

		repo.EXPECT().
			ListByUserID(gomock.Any(), int64(7)).
			Return([]domain.Appointment{
				{ID: 2, UserID: 7, Branch: "Centro", Datetime: "2026-09-02T10:00:00", Status: "confirmed"},
				{ID: 1, UserID: 7, Branch: "Centro", Datetime: "2026-09-01T14:00:00", Status: "confirmed"},
			}, nil)

		out, err := svc.ListByUser(context.Background(), 7)

		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, int64(2), out[0].ID)
		assert.Equal(t, int64(1), out[1].ID)
	})

	t.Run("no appointments yields empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockAppointmentRepository(ctrl)
		svc := service.NewAppointmentService(repo)

		repo.EXPECT().
			ListByUserID(gomock.Any(), int64(7)).
			Return(nil, nil)

		out, err := svc.ListByUser(context.Background(), 7)

		require.NoError(t, err)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockAppointmentRepository(ctrl)
		svc := service.NewAppointmentService(repo)

		repo.EXPECT().
			ListByUserID(gomock.Any(), int64(7)).
			Return(nil, errors.New("query failed"))

		out, err := svc.ListByUser(context.Background(), 7)

		assert.Error(t, err)
		assert.Nil(t, out)
	})
}
