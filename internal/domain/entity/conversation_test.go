package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalPair_OrderIndependent(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	low1, high1 := CanonicalPair(a, b)
	low2, high2 := CanonicalPair(b, a)

	assert.Equal(t, low1, low2)
	assert.Equal(t, high1, high2)
	assert.NotEqual(t, low1, high1)
}

func TestConversation_Counterpart(t *testing.T) {
	low, high := CanonicalPair(uuid.New(), uuid.New())
	conv := &Conversation{ParticipantLow: low, ParticipantHigh: high}

	assert.Equal(t, high, conv.Counterpart(low))
	assert.Equal(t, low, conv.Counterpart(high))
	assert.True(t, conv.HasParticipant(low))
	assert.False(t, conv.HasParticipant(uuid.New()))
}
