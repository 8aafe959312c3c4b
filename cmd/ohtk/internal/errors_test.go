package internal

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/eLbARROS13/OH-Toolkit/internal/types"
)

func testCmd() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{Use: "test"}
	var errOut bytes.Buffer
	cmd.SetErr(&errOut)
	return cmd, &errOut
}

func TestHandleErrorNil(t *testing.T) {
	cmd, errOut := testCmd()
	assert.Equal(t, ExitSuccess, HandleError(cmd, nil))
	assert.Empty(t, errOut.String())
}

func TestHandleErrorCancelled(t *testing.T) {
	cmd, errOut := testCmd()
	assert.Equal(t, ExitCancelled, HandleError(cmd, context.Canceled))
	assert.Contains(t, errOut.String(), "cancelled")
}

func TestHandleErrorCLIError(t *testing.T) {
	cmd, errOut := testCmd()
	err := NewCLIError(ExitConfigError, "no data directory configured")

	assert.Equal(t, ExitConfigError, HandleError(cmd, err))
	assert.Contains(t, errOut.String(), "no data directory configured")
}

func TestHandleErrorToolkitErrorMapping(t *testing.T) {
	tests := []struct {
		code types.ErrorCode
		want int
	}{
		{types.CONFIG_LOAD_FAILED, ExitConfigError},
		{types.RECIPE_NOT_FOUND, ExitConfigError},
		{types.PROFILE_DIR_UNREADABLE, ExitDataError},
		{types.SINK_WRITE_FAILED, ExitSinkError},
		{types.EXTRACT_BAD_REQUEST, ExitError},
	}

	for _, tt := range tests {
		cmd, _ := testCmd()
		got := HandleError(cmd, types.NewError(tt.code, "boom"))
		assert.Equal(t, tt.want, got, "code %s", tt.code)
	}
}

func TestHandleErrorGeneric(t *testing.T) {
	cmd, errOut := testCmd()
	assert.Equal(t, ExitError, HandleError(cmd, errors.New("plain failure")))
	assert.Contains(t, errOut.String(), "plain failure")
}

func TestCLIErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := WrapCLIError(ExitSinkError, "writing output", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "writing output")
	assert.Contains(t, err.Error(), "root cause")
}
