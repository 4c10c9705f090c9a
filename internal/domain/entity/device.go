package entity

import (
	"time"

	"github.com/google/uuid"
)

// Platform is the mobile OS of a registered device.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
)

// UserDevice is a push target registered by a signed-in user.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FCMToken  string    `json:"-"`
	DeviceID  string    `json:"device_id"`
	Platform  Platform  `json:"platform"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
