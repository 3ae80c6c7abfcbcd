package schedule

import (
	"context"
	"time"

	"github.com/hartmannbarbearia/booking-api/internal/models"
)

type Repository interface {
	// -------- Settings --------
	GetSettings(ctx context.Context) (*models.ShopSettings, error)

	// -------- Catalog / team --------
	GetService(ctx context.Context, id uint) (*models.Service, error)

	GetBarber(ctx context.Context, id uint) (*models.User, error)

	GetUser(ctx context.Context, id uint) (*models.User, error)

	// -------- Working hours --------
	// GetWorkingHours devolve (nil, nil) quando não há regra para o
	// weekday: dia sem regra é dia fechado, não erro.
	GetWorkingHours(ctx context.Context, weekday int) (*models.WorkingHoursRule, error)

	// -------- Appointment (create / conflict) --------
	// CreateAppointment insere com guarda atômica de conflito; perder a
	// corrida vira BusinessError("slot_taken").
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	// RescheduleAppointment persiste nova data/serviço/profissional com a
	// mesma guarda, ignorando o próprio agendamento.
	RescheduleAppointment(ctx context.Context, ap *models.Appointment) error

	// -------- Appointment (state change) --------
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)

	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	// -------- Availability / listing --------
	// ListAppointmentsForDay devolve apenas não cancelados, ordenados
	// por início.
	ListAppointmentsForDay(ctx context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error)

	ListAppointmentsForPeriod(ctx context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error)

	ListAppointmentsForClient(ctx context.Context, clientID uint) ([]models.Appointment, error)
}
