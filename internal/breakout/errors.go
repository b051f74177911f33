package breakout

import (
	"errors"
	"fmt"
)

var (
	// ErrArenaTooSmall reports an arena that cannot hold the paddle, the
	// ball spawn point and the brick field without overlap.
	ErrArenaTooSmall = errors.New("arena too small")

	// ErrInvalidSettings reports a non-positive count or size in Settings.
	ErrInvalidSettings = errors.New("invalid settings")
)

// ConfigError describes why a session could not be constructed.
type ConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("breakout: %s: %s: %s", e.Field, e.Reason, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func tooSmall(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...), Err: ErrArenaTooSmall}
}

func invalid(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...), Err: ErrInvalidSettings}
}
