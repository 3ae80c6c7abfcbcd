package booking

import (
	"context"

	"github.com/hartmannbarbearia/booking-api/internal/audit"
	"github.com/hartmannbarbearia/booking-api/internal/cache"
	domain "github.com/hartmannbarbearia/booking-api/internal/domain/schedule"
	"github.com/hartmannbarbearia/booking-api/internal/httperr"
	"github.com/hartmannbarbearia/booking-api/internal/models"
	"github.com/hartmannbarbearia/booking-api/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache cache.Cache
}

func NewCancelAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	c cache.Cache,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: auditDisp,
		cache: c,
	}
}

// Execute faz o soft-cancel: status vira "canceled" e o horário volta a
// contar como livre. Nunca apaga a linha.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actorID uint,
	actorRole string,
	appointmentID uint,
) (*models.Appointment, error) {

	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if !canActOn(ap, actorID, actorRole) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	now := timezone.NowIn(settings.Timezone)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_canceled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	invalidateFor(uc.cache, ap)

	return ap, nil
}

// canActOn: o próprio cliente, o barbeiro do horário ou um admin.
func canActOn(ap *models.Appointment, actorID uint, actorRole string) bool {
	if actorRole == models.RoleAdmin {
		return true
	}
	if ap.ClientID == actorID {
		return true
	}
	return actorRole == models.RoleBarber && ap.BarberID == actorID
}
