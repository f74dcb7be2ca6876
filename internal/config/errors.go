package config

import (
	"errors"
	"fmt"
)

// ErrConfigParseFailed is returned when settings cannot be decoded into Config.
var ErrConfigParseFailed = errors.New("failed to parse configuration")

// ValidationError represents an error in configuration validation
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: field %q with value %v: %s", e.Field, e.Value, e.Reason)
}
