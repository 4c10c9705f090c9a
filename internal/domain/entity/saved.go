package entity

import (
	"time"

	"github.com/google/uuid"
)

// SavedPost is a viewer's bookmark on a listing.
type SavedPost struct {
	UserID    uuid.UUID
	PostID    uuid.UUID
	CreatedAt time.Time
}

// WaitlistEntry is a pre-launch signup. Email is unique.
type WaitlistEntry struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Role      Role
	County    string
	CreatedAt time.Time
}
