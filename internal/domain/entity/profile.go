package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the public-facing person record of the marketplace.
type Profile struct {
	ID           uuid.UUID
	Name         string
	FarmName     string
	AvatarURL    string
	Bio          string
	Role         Role
	County       string
	City         string
	ExactAddress string // Never exposed through a public projection.
	Phone        string
	Email        string
	GrowTags     []string

	ShowPhone           bool
	ShowEmail           bool
	ShowPlatformMessage bool

	ShowInMarketplace bool
	AllowReviews      bool
	IncludeInSearch   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName is the farm name when present, otherwise the person's name.
func (p *Profile) DisplayName() string {
	if p == nil {
		return ""
	}
	if p.FarmName != "" {
		return p.FarmName
	}

	return p.Name
}

// IsFarmer reports whether the profile's role is one of the farmer roles.
func (p *Profile) IsFarmer() bool {
	return p != nil && p.Role.IsFarmer()
}

// NewProfileFromMetadata builds a profile with marketplace defaults from signup metadata.
func NewProfileFromMetadata(userID uuid.UUID, email string, meta SignupMetadata) *Profile {
	return &Profile{
		ID:                  userID,
		Name:                meta.Name,
		FarmName:            meta.FarmName,
		AvatarURL:           meta.Avatar,
		Role:                ParseRole(string(meta.Role)),
		County:              meta.County,
		City:                meta.City,
		Email:               email,
		ShowPlatformMessage: true,
		ShowInMarketplace:   true,
		AllowReviews:        true,
		IncludeInSearch:     true,
	}
}

// PublicProfile is the projection of a profile that other viewers may see.
// It carries no exact address; phone and email are present only when shared.
type PublicProfile struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	FarmName        string    `json:"farm_name,omitempty"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	Role            Role      `json:"role"`
	County          string    `json:"county,omitempty"`
	City            string    `json:"city,omitempty"`
	GrowTags        []string  `json:"grow_tags,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Email           string    `json:"email,omitempty"`
	AcceptsMessages bool      `json:"accepts_messages"`
	AllowReviews    bool      `json:"allow_reviews"`
	MemberSince     time.Time `json:"member_since"`
}

// Public returns the public projection of the profile.
func (p *Profile) Public() *PublicProfile {
	if p == nil {
		return nil
	}

	pub := &PublicProfile{
		ID:              p.ID,
		Name:            p.Name,
		FarmName:        p.FarmName,
		AvatarURL:       p.AvatarURL,
		Bio:             p.Bio,
		Role:            p.Role,
		County:          p.County,
		City:            p.City,
		GrowTags:        p.GrowTags,
		AcceptsMessages: p.ShowPlatformMessage,
		AllowReviews:    p.AllowReviews,
		MemberSince:     p.CreatedAt,
	}
	if p.ShowPhone {
		pub.Phone = p.Phone
	}
	if p.ShowEmail {
		pub.Email = p.Email
	}

	return pub
}
