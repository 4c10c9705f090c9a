package marketplace

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"heyfarmer/internal/domain/entity"
	"heyfarmer/internal/domain/repository"
	mockRepo "heyfarmer/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestResolver(t *testing.T) (*VisibilityResolver, *mockRepo.MockProfileRepository) {
	profiles := mockRepo.NewMockProfileRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewVisibilityResolver(profiles, logger), profiles
}

func TestVisibilityResolver_Guest(t *testing.T) {
	resolver, _ := newTestResolver(t)

	scope := resolver.Resolve(context.Background(), nil)

	assert.False(t, scope.IncludeFarmersOnly)
	assert.Equal(t, []entity.Visibility{entity.VisibilityPublic}, scope.Visibilities())
}

func TestVisibilityResolver_Roles(t *testing.T) {
	tests := []struct {
		role        entity.Role
		farmersOnly bool
	}{
		{entity.RoleConsumer, false},
		{entity.RoleBackyardGrower, true},
		{entity.RoleMarketGardener, true},
		{entity.RoleProductionFarmer, true},
		{entity.Role("admin"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			resolver, profiles := newTestResolver(t)
			ctx := context.Background()
			viewer := uuid.New()

			profiles.EXPECT().FindRole(ctx, viewer).Return(tt.role, nil)

			scope := resolver.Resolve(ctx, &viewer)

			assert.Equal(t, tt.farmersOnly, scope.IncludeFarmersOnly)
			assert.Equal(t, tt.farmersOnly, scope.Allows(entity.VisibilityFarmersOnly))
			assert.True(t, scope.Allows(entity.VisibilityPublic))
		})
	}
}

func TestVisibilityResolver_LookupFailureFailsClosed(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"missing profile", repository.ErrProfileNotFound},
		{"database error", errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver, profiles := newTestResolver(t)
			ctx := context.Background()
			viewer := uuid.New()

			profiles.EXPECT().FindRole(ctx, viewer).Return(entity.Role(""), tt.err)

			scope := resolver.Resolve(ctx, &viewer)

			assert.Equal(t, PublicScope(), scope)
			assert.NotContains(t, scope.Visibilities(), entity.VisibilityFarmersOnly)
		})
	}
}

func TestScope_Allows(t *testing.T) {
	farmer := Scope{IncludeFarmersOnly: true}

	assert.ElementsMatch(t,
		[]entity.Visibility{entity.VisibilityPublic, entity.VisibilityFarmersOnly},
		farmer.Visibilities(),
	)
	assert.False(t, farmer.Allows(entity.Visibility("private")))
	assert.False(t, PublicScope().Allows(entity.VisibilityFarmersOnly))
}
