package app

import (
	"errors"
	"fmt"
)

// ErrReleased is returned when a handle or App is used after its release.
var ErrReleased = errors.New("app: already released")

// Init stages, in the order they run.
const (
	StageVideo  = "video"
	StageWindow = "window"
	StageCanvas = "canvas"
)

// InitError reports a failed initialization stage. Err is the platform error.
type InitError struct {
	Stage string
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("app: %s initialization failed: %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
