package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ContactInput starts a conversation with a seller or a profile owner.
// When ListingID is set the counterparty is the listing owner.
type ContactInput struct {
	ViewerID       *uuid.UUID
	CounterpartyID uuid.UUID
	ListingID      *uuid.UUID
}

// ContactResult tells the client where to navigate next.
type ContactResult struct {
	RequiresLogin  bool       `json:"requires_login"`
	RedirectTo     string     `json:"redirect_to"`
	ConversationID *uuid.UUID `json:"conversation_id,omitempty"`
}

// ContactUsecase bootstraps buyer to seller conversations.
type ContactUsecase interface {
	Contact(ctx context.Context, input *ContactInput) (*ContactResult, error)
}
