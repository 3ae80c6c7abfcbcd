package booking

import (
	"context"
	"time"

	"github.com/hartmannbarbearia/booking-api/internal/audit"
	"github.com/hartmannbarbearia/booking-api/internal/cache"
	domain "github.com/hartmannbarbearia/booking-api/internal/domain/schedule"
	"github.com/hartmannbarbearia/booking-api/internal/httperr"
	"github.com/hartmannbarbearia/booking-api/internal/models"
	"github.com/hartmannbarbearia/booking-api/internal/timezone"
)

type RescheduleAppointmentInput struct {
	AppointmentID uint

	BarberID  uint
	ServiceID uint
	Date      string // YYYY-MM-DD
	Time      string // HH:mm
}

type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache cache.Cache
}

func NewRescheduleAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	c cache.Cache,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: auditDisp,
		cache: c,
	}
}

// Execute muda data/serviço/profissional de um agendamento vivo. Trocar
// qualquer seleção invalida o horário antigo: tudo é revalidado do zero,
// com a mesma guarda de conflito da criação.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	actorID uint,
	actorRole string,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if !canActOn(ap, actorID, actorRole) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	loc := timezone.Location(settings.Timezone)

	start, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.Time, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	now := timezone.NowIn(settings.Timezone)
	minAllowed := now.Add(time.Duration(settings.MinAdvanceMinutes) * time.Minute)
	if !start.After(minAllowed) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	rule, err := uc.repo.GetWorkingHours(ctx, int(start.Weekday()))
	if err != nil {
		return nil, err
	}
	if rule == nil || rule.IsClosed {
		return nil, httperr.ErrBusiness("shop_closed")
	}
	if !domain.WithinWorkingHours(rule, start, end) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	oldBarberID := ap.BarberID
	oldDate := ap.Date

	ap.BarberID = in.BarberID
	ap.ServiceID = service.ID
	ap.Date = start
	ap.EndsAt = end

	if err := uc.repo.RescheduleAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	// o horário antigo voltou a ficar livre e o novo ficou ocupado
	invalidateFor(uc.cache, &models.Appointment{BarberID: oldBarberID, Date: oldDate})
	invalidateFor(uc.cache, ap)

	return ap, nil
}
