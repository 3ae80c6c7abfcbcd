package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hartmannbarbearia/booking-api/internal/cache"
	domain "github.com/hartmannbarbearia/booking-api/internal/domain/schedule"
	"github.com/hartmannbarbearia/booking-api/internal/httperr"
)

func TestRescheduleAppointment(t *testing.T) {
	repo := newFakeRepository()
	repo.seedShop()
	seedAppointment(repo, domain.StatusConfirmed)

	uc := NewRescheduleAppointment(repo, nil, cache.NewNoop())

	ap, err := uc.Execute(context.Background(), 20, "client", RescheduleAppointmentInput{
		AppointmentID: 1,
		BarberID:      10,
		ServiceID:     1,
		Date:          futureDate,
		Time:          "14:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "14:00", ap.Date.Format("15:04"))
	assert.Equal(t, "14:30", ap.EndsAt.Format("15:04"))
	require.Len(t, repo.updated, 1)
}

func TestRescheduleCanceledAppointment(t *testing.T) {
	repo := newFakeRepository()
	repo.seedShop()
	seedAppointment(repo, domain.StatusCanceled)

	uc := NewRescheduleAppointment(repo, nil, cache.NewNoop())

	_, err := uc.Execute(context.Background(), 20, "client", RescheduleAppointmentInput{
		AppointmentID: 1,
		BarberID:      10,
		ServiceID:     1,
		Date:          futureDate,
		Time:          "14:00",
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestRescheduleSlotTaken(t *testing.T) {
	repo := newFakeRepository()
	repo.seedShop()
	seedAppointment(repo, domain.StatusConfirmed)
	repo.createErr = httperr.ErrBusiness("slot_taken")

	uc := NewRescheduleAppointment(repo, nil, cache.NewNoop())

	_, err := uc.Execute(context.Background(), 20, "client", RescheduleAppointmentInput{
		AppointmentID: 1,
		BarberID:      10,
		ServiceID:     1,
		Date:          futureDate,
		Time:          "14:00",
	})

	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
}

func TestRescheduleForbiddenForStranger(t *testing.T) {
	repo := newFakeRepository()
	repo.seedShop()
	seedAppointment(repo, domain.StatusConfirmed)

	uc := NewRescheduleAppointment(repo, nil, cache.NewNoop())

	_, err := uc.Execute(context.Background(), 30, "client", RescheduleAppointmentInput{
		AppointmentID: 1,
		BarberID:      10,
		ServiceID:     1,
		Date:          futureDate,
		Time:          "14:00",
	})

	assert.True(t, httperr.IsBusiness(err, "forbidden"))
}
