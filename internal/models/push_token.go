package models

import "time"

const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
)

type PushToken struct {
	ID string `gorm:"primaryKey;size:32" json:"token_id"`

	UserID string `gorm:"size:32;not null;uniqueIndex:idx_user_token" json:"user_id"`
	Token  string `gorm:"size:255;not null;uniqueIndex:idx_user_token" json:"token"`

	Platform   string  `gorm:"size:10" json:"platform"`
	DeviceInfo JSONMap `gorm:"serializer:json" json:"device_info,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func IsValidPlatform(platform string) bool {
	switch platform {
	case PlatformIOS, PlatformAndroid, PlatformWeb:
		return true
	}
	return false
}
