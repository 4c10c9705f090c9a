package usecase

import (
	"context"
)

// JoinWaitlistInput is a pre-launch signup.
type JoinWaitlistInput struct {
	Email  string
	Name   string
	Role   string
	County string
}

// WaitlistUsecase records pre-launch interest.
type WaitlistUsecase interface {
	// Join is idempotent on email. created is false when the email was already listed.
	Join(ctx context.Context, input *JoinWaitlistInput) (created bool, err error)
}
