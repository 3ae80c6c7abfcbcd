package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/hartmannbarbearia/booking-api/internal/domain/schedule"
	"github.com/hartmannbarbearia/booking-api/internal/httperr"
	"github.com/hartmannbarbearia/booking-api/internal/models"
)

func saoPaulo(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestGetAvailabilityFullDay(t *testing.T) {
	repo := newFakeRepository()
	repo.seedShop()

	loc := saoPaulo(t)
	date := time.Date(2030, 1, 7, 0, 0, 0, 0, loc)
	now := time.Date(2030, 1, 7, 8, 0, 0, 0, loc)

	uc := NewGetAvailability(repo, domain.ConflictInterval)

	day, err := uc.Execute(context.Background(), AvailabilityQuery{
		BarberID:  10,
		ServiceID: 1,
		Date:      date,
		Now:       now,
	})

	require.NoError(t, err)
	assert.False(t, day.Closed)
	// 09:00–18:00 com passo de 30min
	assert.Len(t, day.Slots, 18)
	for _, s := range day.Slots {
		assert.True(t, s.Bookable, "slot %s", s.Start.Format("15:04"))
	}
}

func TestGetAvailabilityMarksBusy(t *testing.T) {
	repo := newFakeRepository()
	repo.seedShop()

	loc := saoPaulo(t)
	date := time.Date(2030, 1, 7, 0, 0, 0, 0, loc)
	now := time.Date(2030, 1, 7, 8, 0, 0, 0, loc)
	busy := time.Date(2030, 1, 7, 10, 0, 0, 0, loc)

	repo.appointments[1] = &models.Appointment{
		ID:       1,
		BarberID: 10,
		ClientID: 20,
		Date:     busy,
		EndsAt:   busy.Add(30 * time.Minute),
		Status:   string(domain.StatusConfirmed),
	}

	uc := NewGetAvailability(repo, domain.ConflictInterval)

	day, err := uc.Execute(context.Background(), AvailabilityQuery{
		BarberID:  10,
		ServiceID: 1,
		Date:      date,
		Now:       now,
	})

	require.NoError(t, err)

	var found bool
	for _, s := range day.Slots {
		if s.Start.Equal(busy) {
			found = true
			assert.False(t, s.Bookable)
			assert.Equal(t, domain.ReasonBusy, s.Reason)
		}
	}
	assert.True(t, found, "10:00 slot missing")
}

func TestGetAvailabilityOtherBarberUnaffected(t *testing.T) {
	repo := newFakeRepository()
	repo.seedShop()
	repo.users[11] = &models.User{ID: 11, Name: "Rafael", Role: models.RoleBarber}

	loc := saoPaulo(t)
	date := time.Date(2030, 1, 7, 0, 0, 0, 0, loc)
	now := time.Date(2030, 1, 7, 8, 0, 0, 0, loc)
	busy := time.Date(2030, 1, 7, 10, 0, 0, 0, loc)

	// horário ocupado do barbeiro 10 não afeta a agenda do 11
	repo.appointments[1] = &models.Appointment{
		ID:       1,
		BarberID: 10,
		ClientID: 20,
		Date:     busy,
		EndsAt:   busy.Add(30 * time.Minute),
		Status:   string(domain.StatusConfirmed),
	}

	uc := NewGetAvailability(repo, domain.ConflictInterval)

	day, err := uc.Execute(context.Background(), AvailabilityQuery{
		BarberID:  11,
		ServiceID: 1,
		Date:      date,
		Now:       now,
	})

	require.NoError(t, err)
	for _, s := range day.Slots {
		assert.True(t, s.Bookable, "slot %s", s.Start.Format("15:04"))
	}
}

func TestGetAvailabilityClosedWeekday(t *testing.T) {
	repo := newFakeRepository()
	repo.seedShop()
	repo.rules[0] = &models.WorkingHoursRule{Weekday: 0, IsClosed: true}

	loc := saoPaulo(t)
	date := time.Date(2030, 1, 6, 0, 0, 0, 0, loc) // domingo
	now := time.Date(2030, 1, 5, 8, 0, 0, 0, loc)

	uc := NewGetAvailability(repo, domain.ConflictInterval)

	day, err := uc.Execute(context.Background(), AvailabilityQuery{
		BarberID:  10,
		ServiceID: 1,
		Date:      date,
		Now:       now,
	})

	require.NoError(t, err)
	assert.True(t, day.Closed)
	assert.Empty(t, day.Slots)
}

func TestGetAvailabilityUnknownBarber(t *testing.T) {
	repo := newFakeRepository()
	repo.seedShop()

	loc := saoPaulo(t)
	date := time.Date(2030, 1, 7, 0, 0, 0, 0, loc)

	uc := NewGetAvailability(repo, domain.ConflictInterval)

	_, err := uc.Execute(context.Background(), AvailabilityQuery{
		BarberID:  99,
		ServiceID: 1,
		Date:      date,
		Now:       date,
	})

	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
}
