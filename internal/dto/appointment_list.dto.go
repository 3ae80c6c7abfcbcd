package dto

import "time"

type AppointmentListDTO struct {
	ID          uint      `json:"id"`
	Date        time.Time `json:"date"`
	EndsAt      time.Time `json:"ends_at"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name"`
	BarberName  string    `json:"barber_name"`
	ServiceName string    `json:"service_name"`
}
