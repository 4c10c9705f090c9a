package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProfileModel mirrors the 'profiles' table. ID is the owning user's id.
//
// Booleans carry no column default: GORM skips zero values on insert when a
// default is declared, which would turn an explicit false into true.
type ProfileModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key"`
	Name         string         `gorm:"type:varchar(100)"`
	FarmName     string         `gorm:"type:varchar(150)"`
	AvatarURL    string         `gorm:"type:text"`
	Bio          string         `gorm:"type:text"`
	Role         string         `gorm:"type:varchar(32);not null;index"`
	County       string         `gorm:"type:varchar(32);index"`
	City         string         `gorm:"type:varchar(100)"`
	ExactAddress string         `gorm:"type:text"`
	Phone        string         `gorm:"type:varchar(32)"`
	Email        string         `gorm:"type:varchar(255)"`
	GrowTags     pq.StringArray `gorm:"type:text[]"`

	ShowPhone           bool `gorm:"not null"`
	ShowEmail           bool `gorm:"not null"`
	ShowPlatformMessage bool `gorm:"not null"`
	ShowInMarketplace   bool `gorm:"not null"`
	AllowReviews        bool `gorm:"not null"`
	IncludeInSearch     bool `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time

	User *UserModel `gorm:"foreignKey:ID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
