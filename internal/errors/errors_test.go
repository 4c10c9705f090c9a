package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errMissing = New("missing")
	errGone    = New("gone")
)

func TestIsAny(t *testing.T) {
	wrapped := Wrap(errGone, "find conversation")

	assert.True(t, IsAny(wrapped, errMissing, errGone))
	assert.False(t, IsAny(wrapped, errMissing))
	assert.False(t, IsAny(nil, errMissing))
	assert.False(t, IsAny(wrapped))
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrapf(errMissing, "load county %s", "king")

	assert.True(t, Is(err, errMissing))
	assert.Equal(t, "load county king: missing", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", WithStack(errMissing)), "TestWrapKeepsCause")
	assert.NoError(t, Wrap(nil, "noop"))
}
