package booking

import (
	"context"
	"log"
	"time"

	"github.com/hartmannbarbearia/booking-api/internal/audit"
	"github.com/hartmannbarbearia/booking-api/internal/cache"
	domain "github.com/hartmannbarbearia/booking-api/internal/domain/schedule"
	"github.com/hartmannbarbearia/booking-api/internal/httperr"
	"github.com/hartmannbarbearia/booking-api/internal/models"
	"github.com/hartmannbarbearia/booking-api/internal/notifications"
	"github.com/hartmannbarbearia/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID  uint
	BarberID  uint
	ServiceID uint

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	mailer notifications.Mailer
	cache  cache.Cache
}

func NewCreateAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	mailer notifications.Mailer,
	c cache.Cache,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		audit:  auditDisp,
		mailer: mailer,
		cache:  c,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
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

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
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

	client, err := uc.repo.GetUser(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		BarberID:  in.BarberID,
		ClientID:  in.ClientID,
		ServiceID: service.ID,
		Date:      start,
		EndsAt:    end,
		Status:    string(domain.InitialStatus(settings.AutoConfirm)),
		Notes:     in.Notes,
	}

	// O repositório fecha a corrida entre dois clientes que viram o mesmo
	// slot livre; perder vira slot_taken.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	invalidateFor(uc.cache, ap)

	// Confirmação por e-mail é melhor-esforço: o agendamento já foi
	// criado e não volta atrás por falha de envio.
	go uc.sendConfirmation(client, barber, service, start)

	return ap, nil
}

func (uc *CreateAppointment) sendConfirmation(
	client *models.User,
	barber *models.User,
	service *models.Service,
	start time.Time,
) {
	if uc.mailer == nil || client.Email == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := uc.mailer.SendAppointmentConfirmation(ctx, notifications.ConfirmationData{
		ClientName:  client.Name,
		ClientEmail: client.Email,
		BarberName:  barber.Name,
		ServiceName: service.Name,
		Date:        start.Format("02/01/2006"),
		Time:        start.Format("15:04"),
	})
	if err != nil {
		log.Println("appointment confirmation email failed:", err)
	}
}
