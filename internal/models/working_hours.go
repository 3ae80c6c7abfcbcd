package models

import "time"

// WorkingHoursRule define o expediente da barbearia para um dia da semana
// (0=domingo..6=sábado). Uma linha por weekday; ausência de linha equivale
// a dia fechado.
type WorkingHoursRule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Weekday int `gorm:"uniqueIndex;not null" json:"weekday"`

	OpensAt  string `gorm:"size:5" json:"opens_at"`
	ClosesAt string `gorm:"size:5" json:"closes_at"`
	IsClosed bool   `gorm:"default:false" json:"is_closed"`

	BreakStart string `gorm:"size:5" json:"break_start"`
	BreakEnd   string `gorm:"size:5" json:"break_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
