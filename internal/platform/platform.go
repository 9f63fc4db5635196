// Package platform describes the windowing capabilities the app needs from a
// graphics backend. Backends live in subpackages and register themselves in
// init() so the entry point can pick one by name.
package platform

import "fmt"

// WindowFlags controls how a window is opened.
type WindowFlags struct {
	Centered bool
	HighDPI  bool
}

// CanvasFlags controls how a drawing surface is created.
type CanvasFlags struct {
	Accelerated bool
	VSync       bool
}

// Platform initializes the video subsystem.
// The subsystem must outlive every window created from it.
type Platform interface {
	// Name returns the backend name used by the registry (e.g., "sdl").
	Name() string

	// InitVideo starts the video subsystem.
	InitVideo() (Video, error)
}

// Video is an initialized video subsystem.
type Video interface {
	// Driver returns the name of the active video driver.
	Driver() string

	// CreateWindow opens a window of the given size.
	CreateWindow(title string, width, height uint32, flags WindowFlags) (Window, error)

	// Close shuts the subsystem down. All windows must be closed first.
	Close() error
}

// Window is an open on-screen window.
type Window interface {
	ID() uint32

	// CreateCanvas derives a drawing surface bound to this window.
	// The canvas must be closed before the window.
	CreateCanvas(flags CanvasFlags) (Canvas, error)

	Close() error
}

// Canvas is a drawing surface bound to a window.
type Canvas interface {
	SetDrawColor(r, g, b, a uint8) error
	Clear() error
	Present()
	Close() error
}

// Error is returned by backends when the underlying library reports a failure.
type Error struct {
	Op  string // e.g. "init video", "create window"
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("platform: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
