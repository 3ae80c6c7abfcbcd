package booking

import (
	"context"
	"time"

	domain "github.com/hartmannbarbearia/booking-api/internal/domain/schedule"
	"github.com/hartmannbarbearia/booking-api/internal/httperr"
)

type AvailabilityQuery struct {
	BarberID  uint
	ServiceID uint
	Date      time.Time // dia alvo no fuso da barbearia
	Now       time.Time
}

type GetAvailability struct {
	repo   domain.Repository
	policy domain.ConflictPolicy
}

func NewGetAvailability(repo domain.Repository, policy domain.ConflictPolicy) *GetAvailability {
	return &GetAvailability{repo: repo, policy: policy}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityQuery,
) (domain.Day, error) {

	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return domain.Day{}, err
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return domain.Day{}, httperr.ErrBusiness("service_not_found")
	}

	if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		return domain.Day{}, httperr.ErrBusiness("barber_not_found")
	}

	rule, err := uc.repo.GetWorkingHours(ctx, int(in.Date.Weekday()))
	if err != nil {
		return domain.Day{}, err
	}

	loc := in.Date.Location()
	dayStart := time.Date(in.Date.Year(), in.Date.Month(), in.Date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsForDay(ctx, in.BarberID, dayStart, dayEnd)
	if err != nil {
		return domain.Day{}, err
	}

	interval := time.Duration(settings.SlotIntervalMinutes) * time.Minute

	return domain.BuildDay(domain.AvailabilityInput{
		Rule:            rule,
		Date:            in.Date,
		Interval:        interval,
		ServiceDuration: time.Duration(service.DurationMin) * time.Minute,
		Appointments:    appointments,
		Now:             in.Now,
		Policy:          uc.policy,
	}), nil
}
