package booking

import (
	"context"
	"time"

	domain "github.com/hartmannbarbearia/booking-api/internal/domain/schedule"
	"github.com/hartmannbarbearia/booking-api/internal/httperr"
	"github.com/hartmannbarbearia/booking-api/internal/models"
)

// fakeRepository implementa domain.Repository em memória para os testes
// de caso de uso. createErr força o caminho de corrida (slot_taken).
type fakeRepository struct {
	settings *models.ShopSettings

	services map[uint]*models.Service
	users    map[uint]*models.User
	rules    map[int]*models.WorkingHoursRule

	appointments map[uint]*models.Appointment
	nextID       uint

	createErr error
	created   []*models.Appointment
	updated   []*models.Appointment
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		settings: &models.ShopSettings{
			ID:                  1,
			Name:                "Hartmann Barbearia",
			Timezone:            "America/Sao_Paulo",
			SlotIntervalMinutes: 30,
			AutoConfirm:         true,
		},
		services:     map[uint]*models.Service{},
		users:        map[uint]*models.User{},
		rules:        map[int]*models.WorkingHoursRule{},
		appointments: map[uint]*models.Appointment{},
		nextID:       1,
	}
}

func (f *fakeRepository) GetSettings(ctx context.Context) (*models.ShopSettings, error) {
	return f.settings, nil
}

func (f *fakeRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok || !s.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return s, nil
}

func (f *fakeRepository) GetBarber(ctx context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok || !u.IsBookable() {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	return u, nil
}

func (f *fakeRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, httperr.ErrBusiness("user_not_found")
	}
	return u, nil
}

func (f *fakeRepository) GetWorkingHours(ctx context.Context, weekday int) (*models.WorkingHoursRule, error) {
	return f.rules[weekday], nil
}

func (f *fakeRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	ap.ID = f.nextID
	f.nextID++
	f.appointments[ap.ID] = ap
	f.created = append(f.created, ap)
	return nil
}

func (f *fakeRepository) RescheduleAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.appointments[ap.ID] = ap
	f.updated = append(f.updated, ap)
	return nil
}

func (f *fakeRepository) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return ap, nil
}

func (f *fakeRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.appointments[ap.ID] = ap
	f.updated = append(f.updated, ap)
	return nil
}

func (f *fakeRepository) ListAppointmentsForDay(ctx context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID != barberID || ap.Status == string(domain.StatusCanceled) {
			continue
		}
		if ap.Date.Before(start) || !ap.Date.Before(end) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeRepository) ListAppointmentsForPeriod(ctx context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	return f.ListAppointmentsForDay(ctx, barberID, start, end)
}

func (f *fakeRepository) ListAppointmentsForClient(ctx context.Context, clientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ClientID == clientID && ap.Status != string(domain.StatusCanceled) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepository)(nil)

// grade de teste: barbearia aberta a semana inteira, 09:00–18:00.
func (f *fakeRepository) seedShop() {
	for wd := 0; wd <= 6; wd++ {
		f.rules[wd] = &models.WorkingHoursRule{
			Weekday:  wd,
			OpensAt:  "09:00",
			ClosesAt: "18:00",
		}
	}

	f.services[1] = &models.Service{
		ID:          1,
		Name:        "Corte Masculino",
		DurationMin: 30,
		Price:       45,
		Active:      true,
	}

	f.users[10] = &models.User{ID: 10, Name: "Lucas", Role: models.RoleBarber}
	f.users[20] = &models.User{ID: 20, Name: "João", Email: "joao@example.com", Role: models.RoleClient}
	f.users[30] = &models.User{ID: 30, Name: "Pedro", Role: models.RoleClient}
	f.users[40] = &models.User{ID: 40, Name: "Dono", Role: models.RoleAdmin}
}
