package models

import "time"

type Barbershop struct {
	ID string `gorm:"primaryKey;size:32" json:"shop_id"`

	OwnerUserID string `gorm:"size:32;index;not null" json:"owner_user_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Address     string `gorm:"size:255" json:"address"`
	Phone       string `gorm:"size:20" json:"phone"`
	Description string `gorm:"size:255" json:"description,omitempty"`

	Photos       StringList   `gorm:"serializer:json" json:"photos"`
	WorkingHours WorkingHours `gorm:"serializer:json" json:"working_hours"`
	Location     *Location    `gorm:"serializer:json" json:"location,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
