// Package marketplace holds the listing rules shared by the feed, the
// listing page and the saved list: who may see what, and how a fetched
// listing set is narrowed by search and filters.
package marketplace

import (
	"context"
	"log/slog"

	"heyfarmer/internal/domain/entity"
	"heyfarmer/internal/domain/repository"

	"github.com/google/uuid"
)

// Scope is the visibility gate applied to a listing fetch.
type Scope struct {
	IncludeFarmersOnly bool
}

// PublicScope is the scope of guests, consumers and failed role lookups.
func PublicScope() Scope {
	return Scope{}
}

// Visibilities returns the closed set of visibilities the scope admits.
func (s Scope) Visibilities() []entity.Visibility {
	if s.IncludeFarmersOnly {
		return []entity.Visibility{entity.VisibilityPublic, entity.VisibilityFarmersOnly}
	}

	return []entity.Visibility{entity.VisibilityPublic}
}

// Allows reports whether a listing with visibility v is inside the scope.
func (s Scope) Allows(v entity.Visibility) bool {
	switch v {
	case entity.VisibilityPublic:
		return true
	case entity.VisibilityFarmersOnly:
		return s.IncludeFarmersOnly
	default:
		return false
	}
}

// VisibilityResolver derives the scope of a viewer from their profile role.
type VisibilityResolver struct {
	profiles repository.ProfileRepository
	logger   *slog.Logger
}

// NewVisibilityResolver is the constructor for VisibilityResolver.
func NewVisibilityResolver(profiles repository.ProfileRepository, logger *slog.Logger) *VisibilityResolver {
	return &VisibilityResolver{
		profiles: profiles,
		logger:   logger,
	}
}

// Resolve returns the scope of viewer. A nil viewer is a guest. Any failure
// to read the role narrows the scope to public listings.
func (r *VisibilityResolver) Resolve(ctx context.Context, viewer *uuid.UUID) Scope {
	if viewer == nil {
		return PublicScope()
	}

	role, err := r.profiles.FindRole(ctx, *viewer)
	if err != nil {
		r.logger.WarnContext(ctx, "Role lookup failed, using public scope",
			slog.String("viewer_id", viewer.String()),
			slog.Any("error", err),
		)

		return PublicScope()
	}

	return Scope{IncludeFarmersOnly: role.IsFarmer()}
}
