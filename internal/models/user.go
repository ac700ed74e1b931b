package models

import "time"

const (
	RoleClient = "client"
	RoleBarber = "barber"
	RoleAdmin  = "admin"
)

type User struct {
	ID string `gorm:"primaryKey;size:32" json:"user_id"`

	Email   string `gorm:"size:100;index;not null" json:"email"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Picture string `gorm:"type:text" json:"picture,omitempty"`

	Role  string `gorm:"size:20;default:'client'" json:"role"`
	Phone string `gorm:"size:20" json:"phone,omitempty"`

	BarbershopID string `gorm:"size:32;index" json:"barbershop_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func IsValidRole(role string) bool {
	switch role {
	case RoleClient, RoleBarber, RoleAdmin:
		return true
	}
	return false
}
