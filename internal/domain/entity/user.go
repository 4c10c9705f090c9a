// Package entity contains the core business objects of the marketplace.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account record behind a profile. Its ID is shared with the profile.
type User struct {
	ID        uuid.UUID      // The Global Unique Identifier (GUID) for the user.
	Email     string         // Login identifier and default contact email.
	Metadata  SignupMetadata // Attributes captured at signup, used to create the profile lazily.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SignupMetadata is the profile payload supplied with sign-up or by an OAuth provider.
type SignupMetadata struct {
	Name     string `json:"name,omitempty"`
	FarmName string `json:"farm_name,omitempty"`
	Role     Role   `json:"role,omitempty"`
	County   string `json:"county,omitempty"`
	City     string `json:"city,omitempty"`
	Avatar   string `json:"avatar_url,omitempty"`
}
