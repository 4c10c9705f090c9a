package main

import (
	"bytes"
	"context"
	"testing"

	mockRepo "heyfarmer/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPruneSessions(t *testing.T) {
	tokens := mockRepo.NewMockRefreshTokenRepository(t)
	ctx := context.Background()
	tokens.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(3, nil)

	var out bytes.Buffer
	require.NoError(t, pruneSessions(ctx, tokens, &out))

	assert.Equal(t, "removed 3 expired sessions\n", out.String())
}

func TestPruneSessions_Failure(t *testing.T) {
	tokens := mockRepo.NewMockRefreshTokenRepository(t)
	ctx := context.Background()
	tokens.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(0, errors.New("connection refused"))

	var out bytes.Buffer
	err := pruneSessions(ctx, tokens, &out)

	assert.ErrorContains(t, err, "failed to prune sessions")
	assert.Empty(t, out.String())
}
