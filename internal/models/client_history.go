package models

import "time"

// ClientHistory records what was done on a visit. It references the
// appointment by id only; deleting the appointment leaves the record
// behind (accepted dangling-reference risk, no cascade either way).
type ClientHistory struct {
	ID string `gorm:"primaryKey;size:32" json:"history_id"`

	ClientUserID  string `gorm:"size:32;index;not null" json:"client_user_id"`
	BarberID      string `gorm:"size:32;not null" json:"barber_id"`
	AppointmentID string `gorm:"size:32;not null" json:"appointment_id"`

	Photos      StringList `gorm:"serializer:json" json:"photos"`
	Preferences JSONMap    `gorm:"serializer:json" json:"preferences"`
	Notes       string     `gorm:"size:255" json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
