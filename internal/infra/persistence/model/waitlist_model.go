package model

import (
	"time"

	"github.com/google/uuid"
)

// WaitlistModel mirrors the 'waitlist' table.
type WaitlistModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(100)"`
	Role      string    `gorm:"type:varchar(32)"`
	County    string    `gorm:"type:varchar(32)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WaitlistModel) TableName() string {
	return "waitlist"
}
