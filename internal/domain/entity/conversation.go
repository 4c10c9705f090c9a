package entity

import (
	"bytes"
	"time"

	"github.com/google/uuid"
)

// Conversation is an unordered pair of participants with a rolling summary.
// The pair is stored canonically so the same two users always map to one row.
type Conversation struct {
	ID              uuid.UUID
	ParticipantLow  uuid.UUID
	ParticipantHigh uuid.UUID
	LastMessage     string
	LastMessageAt   *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CanonicalPair orders two user ids so that the result does not depend on argument order.
func CanonicalPair(a, b uuid.UUID) (low, high uuid.UUID) {
	if bytes.Compare(a[:], b[:]) <= 0 {
		return a, b
	}

	return b, a
}

// HasParticipant reports whether userID is one of the two participants.
func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	return c.ParticipantLow == userID || c.ParticipantHigh == userID
}

// Counterpart returns the participant that is not userID.
func (c *Conversation) Counterpart(userID uuid.UUID) uuid.UUID {
	if c.ParticipantLow == userID {
		return c.ParticipantHigh
	}

	return c.ParticipantLow
}

// ConversationParticipant carries the per-participant unread counter.
type ConversationParticipant struct {
	ConversationID uuid.UUID
	UserID         uuid.UUID
	UnreadCount    int
	LastReadAt     *time.Time
}

// ConversationSummary is a conversation as seen from one participant's inbox.
type ConversationSummary struct {
	Conversation *Conversation
	Counterpart  *Profile
	UnreadCount  int
}

// Message belongs to exactly one conversation and is ordered by creation time.
type Message struct {
	ID             uuid.UUID  `json:"id"`
	ConversationID uuid.UUID  `json:"conversation_id"`
	SenderID       uuid.UUID  `json:"sender_id"`
	Content        string     `json:"content"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
