package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "heyfarmer/internal/delivery/context"
	"heyfarmer/internal/domain/entity"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/domain/repository"
	"heyfarmer/internal/usecase"

	"github.com/pkg/errors"
)

type waitlistService struct {
	waitlistRepo repository.WaitlistRepository
	logger       *slog.Logger
}

// NewWaitlistService creates a new waitlist service instance
func NewWaitlistService(waitlistRepo repository.WaitlistRepository, logger *slog.Logger) usecase.WaitlistUsecase {
	return &waitlistService{
		waitlistRepo: waitlistRepo,
		logger:       logger,
	}
}

// Join records a pre-launch signup. Joining twice with the same email is not an error.
func (srv *waitlistService) Join(ctx context.Context, input *usecase.JoinWaitlistInput) (bool, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return false, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}
	if err := validateCounty(input.County); err != nil {
		return false, err
	}

	entry := &entity.WaitlistEntry{
		Email:  email,
		Name:   strings.TrimSpace(input.Name),
		Role:   entity.ParseRole(input.Role),
		County: input.County,
	}

	created, err := srv.waitlistRepo.Join(ctx, entry)
	if err != nil {
		if errors.Is(err, repository.ErrFeatureUnavailable) {
			return false, domainerrors.ErrNotFound.WithDetails("waitlist is closed")
		}

		return false, errors.Wrap(err, "failed to join waitlist")
	}
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Waitlist signup", slog.Bool("created", created))

	return created, nil
}
