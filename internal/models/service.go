package models

import "time"

// Service is immutable after creation.
type Service struct {
	ID string `gorm:"primaryKey;size:32" json:"service_id"`

	ShopID string `gorm:"size:32;index;not null" json:"shop_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description,omitempty"`

	Price       float64 `json:"price"`
	DurationMin int     `gorm:"column:duration" json:"duration"`

	Image string `gorm:"type:text" json:"image,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
