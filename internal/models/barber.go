package models

import "time"

const (
	BarberAvailable   = "available"
	BarberBusy        = "busy"
	BarberUnavailable = "unavailable"
)

type Barber struct {
	ID string `gorm:"primaryKey;size:32" json:"barber_id"`

	ShopID string `gorm:"size:32;index;not null" json:"shop_id"`
	UserID string `gorm:"size:32;index;not null" json:"user_id"`

	Bio         string     `gorm:"size:255" json:"bio,omitempty"`
	Specialties StringList `gorm:"serializer:json" json:"specialties"`
	Portfolio   StringList `gorm:"serializer:json" json:"portfolio"`

	Availability Availability `gorm:"serializer:json" json:"availability"`

	Status       string  `gorm:"size:20;default:'available'" json:"status"`
	Rating       float64 `gorm:"default:0" json:"rating"`
	TotalReviews int     `gorm:"default:0" json:"total_reviews"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func IsValidBarberStatus(status string) bool {
	switch status {
	case BarberAvailable, BarberBusy, BarberUnavailable:
		return true
	}
	return false
}
