package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolkitErrorFormat(t *testing.T) {
	err := NewError(PATH_PARSE_FAILED, "empty segment")
	assert.Equal(t, "[PATH_PARSE_FAILED] empty segment", err.Error())

	wrapped := WrapError(CONFIG_LOAD_FAILED, "cannot read config", errors.New("permission denied"))
	assert.Equal(t, "[CONFIG_LOAD_FAILED] cannot read config: permission denied", wrapped.Error())
}

func TestToolkitErrorUnwrap(t *testing.T) {
	cause := errors.New("file missing")
	err := WrapError(RECIPE_LOAD_FAILED, "loading recipes", cause)

	require.ErrorIs(t, err, cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestToolkitErrorIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewError(RECIPE_NOT_FOUND, "no such recipe"))

	assert.ErrorIs(t, err, NewError(RECIPE_NOT_FOUND, "different message"))
	assert.NotErrorIs(t, err, NewError(RECIPE_DUPLICATE, "no such recipe"))
}

func TestNewErrorf(t *testing.T) {
	err := NewErrorf(SINK_WRITE_FAILED, "row %d rejected", 7)
	assert.Equal(t, "[SINK_WRITE_FAILED] row 7 rejected", err.Error())
}
