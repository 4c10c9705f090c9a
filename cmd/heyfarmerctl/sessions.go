package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"heyfarmer/internal/domain/repository"
	"heyfarmer/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newSessionsCmd() *cobra.Command {
	sessions := &cobra.Command{
		Use:   "sessions",
		Short: "Maintain signed-in sessions",
	}
	sessions.AddCommand(&cobra.Command{
		Use:   "prune",
		Short: "Delete expired refresh tokens",
		Long: `Deletes refresh tokens past their expiry. Expired tokens are already
rejected at refresh time, so pruning only reclaims space and keeps the
active session count query cheap.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabase(func(db *gorm.DB, _ *slog.Logger) error {
				return pruneSessions(cmd.Context(), postgres.NewRefreshTokenRepository(db), cmd.OutOrStdout())
			})
		},
	})

	return sessions
}

func pruneSessions(ctx context.Context, tokens repository.RefreshTokenRepository, out io.Writer) error {
	removed, err := tokens.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to prune sessions")
	}

	_, err = fmt.Fprintf(out, "removed %d expired sessions\n", removed)

	return errors.WithStack(err)
}
