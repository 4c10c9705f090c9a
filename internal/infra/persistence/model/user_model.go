package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SignupMetadataJSON is the jsonb payload stored with an account and used to
// create its profile on first read.
type SignupMetadataJSON struct {
	Name     string `json:"name,omitempty"`
	FarmName string `json:"farm_name,omitempty"`
	Role     string `json:"role,omitempty"`
	County   string `json:"county,omitempty"`
	City     string `json:"city,omitempty"`
	Avatar   string `json:"avatar_url,omitempty"`
}

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID        uuid.UUID                              `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email     string                                 `gorm:"type:varchar(255);uniqueIndex:idx_users_email_lower,expression:lower(email);not null"`
	Metadata  datatypes.JSONType[SignupMetadataJSON] `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Authentications []AuthenticationModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
