package platform

import (
	"errors"
	"fmt"
)

// ErrUnknownBackend is returned when a front end name is not registered.
var ErrUnknownBackend = errors.New("platform: unknown backend")

// InitError reports a failure to bring up a subsystem (window, renderer,
// font, assets, configuration). It is fatal: the process reports it and
// exits with status 1.
type InitError struct {
	Stage string // e.g. "window", "renderer", "font"
	Err   error
}

// NewInitError wraps err as a failure of the given stage.
func NewInitError(stage string, err error) *InitError {
	return &InitError{Stage: stage, Err: err}
}

func (e *InitError) Error() string {
	return fmt.Sprintf("unable to initialise %s: %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
