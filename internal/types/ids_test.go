package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunIDIsValidUUID(t *testing.T) {
	id := NewRunID()

	require.False(t, id.IsZero())
	parsed, err := ParseRunID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseRunIDRejectsGarbage(t *testing.T) {
	_, err := ParseRunID("")
	assert.Error(t, err)

	_, err = ParseRunID("not-a-uuid")
	assert.Error(t, err)
}

func TestRunIDShort(t *testing.T) {
	id := RunID("0f5b3c1a-9a1e-4f3c-8f62-0a9cbb1f2d41")
	assert.Equal(t, "0f5b3c1a", id.Short())

	assert.Equal(t, "ab", RunID("ab").Short())
}
