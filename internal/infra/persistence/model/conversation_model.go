package model

import (
	"time"

	"github.com/google/uuid"
)

// ConversationModel mirrors the 'conversations' table. The unordered pair is
// stored canonically (low < high) so the unique index enforces one
// conversation per pair.
type ConversationModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ParticipantLow  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_conversations_pair,priority:1"`
	ParticipantHigh uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_conversations_pair,priority:2"`
	LastMessage     string     `gorm:"type:text"`
	LastMessageAt   *time.Time `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConversationModel) TableName() string {
	return "conversations"
}

// ParticipantModel mirrors the 'conversation_participants' table.
type ParticipantModel struct {
	ConversationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	UnreadCount    int       `gorm:"not null;default:0"`
	LastReadAt     *time.Time

	Conversation *ConversationModel `gorm:"foreignKey:ConversationID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ParticipantModel) TableName() string {
	return "conversation_participants"
}

// MessageModel mirrors the 'messages' table.
type MessageModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_conversation_created,priority:1"`
	SenderID       uuid.UUID `gorm:"type:uuid;not null"`
	Content        string    `gorm:"type:text;not null"`
	ReadAt         *time.Time
	CreatedAt      time.Time `gorm:"index:idx_messages_conversation_created,priority:2"`

	Conversation *ConversationModel `gorm:"foreignKey:ConversationID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
