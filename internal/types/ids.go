package types

import (
	"fmt"

	"github.com/google/uuid"
)

// RunID identifies a single extraction run. It wraps a UUID string and is
// attached to log records and trace spans so that the rows produced by one
// invocation can be correlated with its diagnostics.
type RunID string

// NewRunID generates a new UUID v4 and returns it as a RunID.
// It will never return an error as uuid.New() uses crypto/rand
// which panics on system-level failures (extremely rare).
func NewRunID() RunID {
	return RunID(uuid.New().String())
}

// ParseRunID parses and validates a string as a UUID, returning a RunID.
func ParseRunID(s string) (RunID, error) {
	if s == "" {
		return "", fmt.Errorf("run ID cannot be empty")
	}

	parsed, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid UUID format: %w", err)
	}

	return RunID(parsed.String()), nil
}

// String returns the string representation of the RunID.
func (id RunID) String() string {
	return string(id)
}

// Short returns the first UUID group of the RunID, enough to eyeball
// log lines without the full 36 characters.
func (id RunID) Short() string {
	if len(id) < 8 {
		return string(id)
	}
	return string(id[:8])
}

// IsZero checks if the RunID is empty.
func (id RunID) IsZero() bool {
	return id == ""
}
