package internal

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eLbARROS13/OH-Toolkit/internal/types"
)

// Exit code constants for the CLI
const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitError indicates a general error
	ExitError = 1
	// ExitCancelled indicates the operation was cancelled
	ExitCancelled = 4
	// ExitConfigError indicates a configuration or recipes error
	ExitConfigError = 10
	// ExitDataError indicates the profile directory could not be read
	ExitDataError = 11
	// ExitSinkError indicates output could not be written
	ExitSinkError = 12
)

// CLIError represents a CLI-specific error with an exit code
type CLIError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface
func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// NewCLIError creates a new CLIError with the given code and message
func NewCLIError(code int, message string) *CLIError {
	return &CLIError{
		Code:    code,
		Message: message,
	}
}

// WrapCLIError creates a new CLIError wrapping an existing error
func WrapCLIError(code int, message string, err error) *CLIError {
	return &CLIError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// HandleError handles an error and returns the appropriate exit code.
// It also prints the error message to the command's error output.
func HandleError(cmd *cobra.Command, err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, context.Canceled) {
		cmd.PrintErrln("Operation cancelled")
		return ExitCancelled
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		cmd.PrintErrln("Error:", cliErr.Message)
		if cliErr.Cause != nil {
			if verboseFlag := cmd.Flag("verbose"); verboseFlag != nil && verboseFlag.Changed {
				cmd.PrintErrln("Cause:", cliErr.Cause)
			}
		}
		return cliErr.Code
	}

	var tkErr *types.ToolkitError
	if errors.As(err, &tkErr) {
		cmd.PrintErrln("Error:", tkErr.Error())
		return mapToolkitErrorToExitCode(tkErr)
	}

	cmd.PrintErrln("Error:", err.Error())
	return ExitError
}

func mapToolkitErrorToExitCode(err *types.ToolkitError) int {
	switch err.Code {
	case types.CONFIG_LOAD_FAILED, types.CONFIG_PARSE_FAILED, types.CONFIG_VALIDATION_FAILED,
		types.RECIPE_LOAD_FAILED, types.RECIPE_PARSE_FAILED, types.RECIPE_VALIDATION_FAILED,
		types.RECIPE_NOT_FOUND, types.RECIPE_DUPLICATE:
		return ExitConfigError
	case types.PROFILE_DIR_UNREADABLE:
		return ExitDataError
	case types.SINK_OPEN_FAILED, types.SINK_WRITE_FAILED:
		return ExitSinkError
	default:
		return ExitError
	}
}
