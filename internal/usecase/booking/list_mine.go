package booking

import (
	"context"

	domain "github.com/hartmannbarbearia/booking-api/internal/domain/schedule"
	"github.com/hartmannbarbearia/booking-api/internal/dto"
)

type ListClientAppointments struct {
	repo domain.Repository
}

func NewListClientAppointments(
	repo domain.Repository,
) *ListClientAppointments {
	return &ListClientAppointments{
		repo: repo,
	}
}

// Execute lista o histórico do cliente (área do cliente), sem cancelados,
// em ordem cronológica.
func (uc *ListClientAppointments) Execute(
	ctx context.Context,
	clientID uint,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			EndsAt:      ap.EndsAt,
			Status:      ap.Status,
			BarberName:  ap.Barber.Name,
			ServiceName: ap.Service.Name,
		})
	}

	return out, nil
}
