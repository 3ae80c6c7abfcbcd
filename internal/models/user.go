package models

import "time"

const (
	RoleClient = "client"
	RoleBarber = "barber"
	RoleAdmin  = "admin"
)

// User cobre clientes e equipe no mesmo cadastro (perfil único).
// Barbeiros e admins são agendáveis como profissionais.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	Role      string `gorm:"size:20;default:'client'" json:"role"`
	AvatarURL string `gorm:"size:255" json:"avatar_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsBookable diz se o usuário atende como profissional.
func (u *User) IsBookable() bool {
	return u.Role == RoleBarber || u.Role == RoleAdmin
}
