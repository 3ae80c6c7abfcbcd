package models

import "time"

// ShopSettings é uma linha única (id=1) com a configuração da barbearia.
type ShopSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Phone    string `gorm:"size:20" json:"phone"`
	Address  string `gorm:"size:255" json:"address"`
	LogoURL  string `gorm:"size:255" json:"logo_url"`
	Timezone string `gorm:"size:50" json:"timezone"`

	SlotIntervalMinutes int `gorm:"default:30" json:"slot_interval_minutes"`
	MinAdvanceMinutes   int `gorm:"default:0" json:"min_advance_minutes"`

	// AutoConfirm faz o agendamento já nascer "confirmed" quando a
	// barbearia não tem etapa de aprovação.
	AutoConfirm bool `gorm:"default:true" json:"auto_confirm"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
