package models

import "time"

type Appointment struct {
	ID string `gorm:"primaryKey;size:32" json:"appointment_id"`

	ShopID       string `gorm:"size:32;index;not null" json:"shop_id"`
	BarberID     string `gorm:"size:32;index;not null" json:"barber_id"`
	ClientUserID string `gorm:"size:32;index;not null" json:"client_user_id"`
	ServiceID    string `gorm:"size:32;not null" json:"service_id"`

	ScheduledTime time.Time `gorm:"index" json:"scheduled_time"`
	// EndTime is scheduled_time + service duration, denormalized so the
	// overlap query stays a plain range comparison.
	EndTime time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	Notes        string `gorm:"size:255" json:"notes,omitempty"`
	ReminderSent bool   `gorm:"default:false" json:"reminder_sent"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
