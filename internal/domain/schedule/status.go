package schedule

import "github.com/hartmannbarbearia/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

// ===============================
// Validations
// ===============================

// CanCancel define se um agendamento pode ser cancelado (soft, nunca delete).
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanConfirm define se um agendamento pendente pode ser aprovado.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanReschedule define se data/serviço/profissional ainda podem mudar.
func CanReschedule(current Status) error {
	if current == StatusCanceled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus depende da barbearia ter ou não etapa de aprovação.
func InitialStatus(autoConfirm bool) Status {
	if autoConfirm {
		return StatusConfirmed
	}
	return StatusPending
}
