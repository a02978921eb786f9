package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinatorID(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseCoordinatorID("")
		require.Error(t, err)
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseCoordinatorID("not-a-uuid")
		require.Error(t, err)
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		raw := uuid.New()
		id, err := ParseCoordinatorID(raw.String())
		require.NoError(t, err)
		assert.Equal(t, raw.String(), id.String())
		assert.False(t, id.IsNil())
	})

	t.Run("nil UUID parses but reads as nil", func(t *testing.T) {
		id, err := ParseCoordinatorID(uuid.Nil.String())
		require.NoError(t, err)
		assert.True(t, id.IsNil())
	})
}

func TestParseWalkID(t *testing.T) {
	raw := uuid.New()
	id, err := ParseWalkID(raw.String())
	require.NoError(t, err)
	assert.Equal(t, raw.String(), id.String())

	_, err = ParseWalkID(strings.ToUpper("zz" + raw.String()))
	require.Error(t, err)
}

func TestNewIDsAreDistinct(t *testing.T) {
	assert.NotEqual(t, NewCoordinatorID(), NewCoordinatorID())
	assert.NotEqual(t, NewWalkID(), NewWalkID())
}

func TestEventIDString(t *testing.T) {
	assert.Equal(t, "42", EventID(42).String())
	assert.Equal(t, "1", EventID(1).String())
}
