// Package headless provides an in-memory platform backend.
// Nothing is drawn; windows and canvases are plain records, which makes the
// backend usable on machines without a display and in tests.
package headless

import (
	"errors"
	"sync"

	"github.com/vovakirdan/snake/internal/platform"
)

// Name is the registry name of this backend.
const Name = "headless"

func init() {
	platform.Register(Name, func() platform.Platform { return New() })
}

// ErrClosed is returned when a closed handle is used or closed again.
var ErrClosed = errors.New("headless: handle already closed")

// Backend is an in-memory platform. Set the Fail* fields to make the
// corresponding stage report a platform error.
type Backend struct {
	FailVideo  error
	FailWindow error
	FailCanvas error

	mu      sync.Mutex
	nextID  uint32
	open    int
	closed  []string
	windows []*Window
}

// New creates a new headless backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the registry name.
func (b *Backend) Name() string {
	return Name
}

// InitVideo starts the in-memory video subsystem.
func (b *Backend) InitVideo() (platform.Video, error) {
	if b.FailVideo != nil {
		return nil, &platform.Error{Op: "init video", Err: b.FailVideo}
	}

	b.mu.Lock()
	b.open++
	b.mu.Unlock()

	return &Video{backend: b}, nil
}

// Open returns the number of handles that have been created and not closed.
func (b *Backend) Open() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.open
}

// Closed returns the kinds of closed handles in close order
// ("canvas", "window", "video").
func (b *Backend) Closed() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	result := make([]string, len(b.closed))
	copy(result, b.closed)
	return result
}

// Windows returns every window created by this backend.
func (b *Backend) Windows() []*Window {
	b.mu.Lock()
	defer b.mu.Unlock()

	result := make([]*Window, len(b.windows))
	copy(result, b.windows)
	return result
}

func (b *Backend) release(kind string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.open--
	b.closed = append(b.closed, kind)
}

// Video is the headless video subsystem.
type Video struct {
	backend *Backend
	closed  bool
}

// Driver returns "headless".
func (v *Video) Driver() string {
	return Name
}

// CreateWindow records a new window.
func (v *Video) CreateWindow(title string, width, height uint32, flags platform.WindowFlags) (platform.Window, error) {
	if v.closed {
		return nil, &platform.Error{Op: "create window", Err: ErrClosed}
	}
	if v.backend.FailWindow != nil {
		return nil, &platform.Error{Op: "create window", Err: v.backend.FailWindow}
	}

	b := v.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.open++
	w := &Window{
		backend: b,
		id:      b.nextID,
		Title:   title,
		Width:   width,
		Height:  height,
		Flags:   flags,
	}
	b.windows = append(b.windows, w)

	return w, nil
}

// Close shuts the subsystem down.
func (v *Video) Close() error {
	if v.closed {
		return ErrClosed
	}
	for _, w := range v.backend.Windows() {
		if !w.closed {
			return errors.New("headless: video closed with open windows")
		}
	}
	v.closed = true
	v.backend.release("video")
	return nil
}

// Window is a recorded window.
type Window struct {
	Title  string
	Width  uint32
	Height uint32
	Flags  platform.WindowFlags
	Canvas *Canvas

	backend *Backend
	id      uint32
	closed  bool
}

// ID returns the window id.
func (w *Window) ID() uint32 {
	return w.id
}

// CreateCanvas records a new canvas bound to the window.
func (w *Window) CreateCanvas(flags platform.CanvasFlags) (platform.Canvas, error) {
	if w.closed {
		return nil, &platform.Error{Op: "create canvas", Err: ErrClosed}
	}
	if w.backend.FailCanvas != nil {
		return nil, &platform.Error{Op: "create canvas", Err: w.backend.FailCanvas}
	}

	w.backend.mu.Lock()
	w.backend.open++
	w.backend.mu.Unlock()

	w.Canvas = &Canvas{window: w, Flags: flags}
	return w.Canvas, nil
}

// Close closes the window.
func (w *Window) Close() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true
	w.backend.release("window")
	return nil
}

// Closed reports whether the window has been closed.
func (w *Window) Closed() bool {
	return w.closed
}

// Canvas is a recorded drawing surface.
type Canvas struct {
	Flags    platform.CanvasFlags
	Color    [4]uint8
	Clears   int
	Presents int

	window *Window
	closed bool
}

// SetDrawColor stores the draw color.
func (c *Canvas) SetDrawColor(r, g, b, a uint8) error {
	if c.closed {
		return ErrClosed
	}
	c.Color = [4]uint8{r, g, b, a}
	return nil
}

// Clear counts a clear.
func (c *Canvas) Clear() error {
	if c.closed {
		return ErrClosed
	}
	c.Clears++
	return nil
}

// Present counts a present.
func (c *Canvas) Present() {
	if !c.closed {
		c.Presents++
	}
}

// Close closes the canvas.
func (c *Canvas) Close() error {
	if c.closed {
		return ErrClosed
	}
	if c.window.closed {
		return errors.New("headless: canvas outlived its window")
	}
	c.closed = true
	c.window.backend.release("canvas")
	return nil
}

// Closed reports whether the canvas has been closed.
func (c *Canvas) Closed() bool {
	return c.closed
}
