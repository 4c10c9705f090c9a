package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"heyfarmer/internal/domain/entity"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/domain/repository"
	mockRepo "heyfarmer/internal/mocks/repository"
	"heyfarmer/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWaitlistService_Join(t *testing.T) {
	tests := []struct {
		name       string
		input      *usecase.JoinWaitlistInput
		repoResult bool
		repoErr    error
		callsRepo  bool
		want       bool
		wantErr    error
	}{
		{
			name:       "new signup",
			input:      &usecase.JoinWaitlistInput{Email: " Lee@Example.com ", Name: "Lee", Role: "market_gardener", County: "clark"},
			repoResult: true,
			callsRepo:  true,
			want:       true,
		},
		{
			name:      "repeat signup",
			input:     &usecase.JoinWaitlistInput{Email: "lee@example.com"},
			callsRepo: true,
		},
		{
			name:    "missing email",
			input:   &usecase.JoinWaitlistInput{Email: "  "},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown county",
			input:   &usecase.JoinWaitlistInput{Email: "lee@example.com", County: "gondor"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:      "closed",
			input:     &usecase.JoinWaitlistInput{Email: "lee@example.com"},
			repoErr:   repository.ErrFeatureUnavailable,
			callsRepo: true,
			wantErr:   domainerrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockWaitlistRepository(t)
			service := NewWaitlistService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
			ctx := context.Background()

			if tt.callsRepo {
				repo.EXPECT().
					Join(ctx, mock.MatchedBy(func(entry *entity.WaitlistEntry) bool {
						return entry.Email == "lee@example.com"
					})).
					Return(tt.repoResult, tt.repoErr)
			}

			created, err := service.Join(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, created)
		})
	}
}
