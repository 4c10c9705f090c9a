// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"log/slog"
	"strings"

	"heyfarmer/internal/domain/county"
	domainerrors "heyfarmer/internal/domain/errors"

	"github.com/pkg/errors"
)

const recoveryTokenBytes = 32

// hashToken is the at-rest form of refresh and recovery tokens.
func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}

// newOpaqueToken returns a URL-safe random token.
func newOpaqueToken() (string, error) {
	buf := make([]byte, recoveryTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateCounty accepts an empty county or a directory id.
func validateCounty(id string) error {
	if id == "" || county.IsValid(county.ID(id)) {
		return nil
	}

	return domainerrors.ErrValidationFailed.WithDetails("unknown county: " + id)
}

// logBestEffort records a failure that is not surfaced to the caller.
func logBestEffort(ctx context.Context, logger *slog.Logger, msg string, err error, attrs ...slog.Attr) {
	args := make([]any, 0, len(attrs)+1)
	for _, attr := range attrs {
		args = append(args, attr)
	}
	args = append(args, slog.Any("error", err))
	logger.WarnContext(ctx, msg, args...)
}
