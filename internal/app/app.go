// Package app owns the window handle chain (video subsystem, window, canvas)
// and the display settings of the snake application.
//
// Handles are shared between clones of an App and reference counted; the last
// Release closes them canvas first, then window, then video. Title and size
// are per-clone values.
package app

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake/internal/config"
	"github.com/vovakirdan/snake/internal/platform"
)

// MinDimension is the smallest accepted width or height, in pixels.
const MinDimension = 50

// PlaceholderTitle replaces an empty title.
const PlaceholderTitle = "title"

// Size is a window size in pixels.
type Size struct {
	Width  uint32
	Height uint32
}

// canvasGuard serializes access to the drawing surface.
type canvasGuard struct {
	mu     sync.Mutex
	canvas platform.Canvas
}

// App bundles the shared platform handles with the display settings.
type App struct {
	video  *Shared[platform.Video]
	window *Shared[platform.Window]
	canvas *Shared[*canvasGuard]

	title string
	size  Size

	logger   *log.Logger
	released bool
}

// Option configures New.
type Option func(*options)

type options struct {
	window config.Window
	logger *log.Logger
}

// WithConfig sets the window configuration used to open the window.
func WithConfig(cfg config.Window) Option {
	return func(o *options) {
		o.window = cfg
	}
}

// WithLogger sets the logger that receives validation warnings.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Initialize opens the default window: "Snake <version>", 800x600, centered,
// high-DPI, with an accelerated vsync canvas.
func Initialize(p platform.Platform) (*App, error) {
	return New(p)
}

// New builds the handle chain video -> window -> canvas on p.
// Config values go through SetTitle and SetSize before the window is opened.
// On failure the returned error is an *InitError and every handle created so
// far has been closed.
func New(p platform.Platform, opts ...Option) (*App, error) {
	o := options{window: config.DefaultWindow()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "snake"})
	}

	defaults := config.DefaultWindow()
	a := &App{
		title:  defaults.Title,
		size:   Size{Width: defaults.Width, Height: defaults.Height},
		logger: o.logger,
	}
	a.SetTitle(o.window.Title)
	a.SetSize(Size{Width: o.window.Width, Height: o.window.Height})

	v, err := p.InitVideo()
	if err != nil {
		return nil, &InitError{Stage: StageVideo, Err: err}
	}
	video := NewShared(v, func(v platform.Video) error {
		return v.Close()
	})

	w, err := v.CreateWindow(a.title, a.size.Width, a.size.Height, platform.WindowFlags{
		Centered: o.window.Centered,
		HighDPI:  o.window.HighDPI,
	})
	if err != nil {
		video.Release()
		return nil, &InitError{Stage: StageWindow, Err: err}
	}
	video.Retain()
	window := NewShared(w, func(w platform.Window) error {
		return errors.Join(w.Close(), video.Release())
	})

	c, err := w.CreateCanvas(platform.CanvasFlags{
		Accelerated: o.window.Accelerated,
		VSync:       o.window.VSync,
	})
	if err != nil {
		window.Release()
		video.Release()
		return nil, &InitError{Stage: StageCanvas, Err: err}
	}
	window.Retain()
	canvas := NewShared(&canvasGuard{canvas: c}, func(g *canvasGuard) error {
		g.mu.Lock()
		defer g.mu.Unlock()
		return errors.Join(g.canvas.Close(), window.Release())
	})

	a.video = video
	a.window = window
	a.canvas = canvas

	a.logger.Debug("window opened", "driver", v.Driver(), "id", w.ID(), "title", a.title,
		"width", a.size.Width, "height", a.size.Height)

	return a, nil
}

// Title returns the current title.
func (a *App) Title() string {
	return a.title
}

// SetTitle replaces the title. An empty title is replaced by
// PlaceholderTitle and a warning is logged.
func (a *App) SetTitle(title string) {
	if title == "" {
		a.logger.Warn("title shouldn't be empty", "fallback", PlaceholderTitle)
		a.title = PlaceholderTitle
		return
	}

	a.title = title
}

// Size returns the current size.
func (a *App) Size() Size {
	return a.size
}

// SetSize replaces the size. Dimensions under MinDimension are clamped with
// a warning. A clamped height returns early, leaving the stored width as it
// was (or clamped, if the width was also too small).
func (a *App) SetSize(size Size) {
	if size.Width < MinDimension {
		a.logger.Warn("width shouldn't be under minimum", "width", size.Width, "min", MinDimension)
		a.size.Width = MinDimension
		size.Width = MinDimension
	}

	if size.Height < MinDimension {
		a.logger.Warn("height shouldn't be under minimum", "height", size.Height, "min", MinDimension)
		a.size.Height = MinDimension
		return
	}

	a.size = size
}

// Driver returns the name of the active video driver.
func (a *App) Driver() string {
	return a.video.Get().Driver()
}

// Clone returns a new App sharing the same handles. The clone starts with
// the current title and size; later changes on either side stay local.
// Must not be called after Release.
func (a *App) Clone() *App {
	return &App{
		video:  a.video.Retain(),
		window: a.window.Retain(),
		canvas: a.canvas.Retain(),
		title:  a.title,
		size:   a.size,
		logger: a.logger,
	}
}

// WithCanvas runs fn while holding the canvas lock.
func (a *App) WithCanvas(fn func(platform.Canvas) error) error {
	if a.released {
		return ErrReleased
	}

	g := a.canvas.Get()
	g.mu.Lock()
	defer g.mu.Unlock()

	return fn(g.canvas)
}

// Release drops this App's references. When the last clone is released the
// canvas, window and video subsystem are closed in that order.
func (a *App) Release() error {
	if a.released {
		return ErrReleased
	}
	a.released = true

	return errors.Join(
		a.canvas.Release(),
		a.window.Release(),
		a.video.Release(),
	)
}

// String returns the terse form: App "<title>" (<width>x<height>).
func (a *App) String() string {
	return fmt.Sprintf("App \"%s\" (%dx%d)", a.title, a.size.Width, a.size.Height)
}

// GoString returns the verbose form used by %#v. Handles are redacted.
func (a *App) GoString() string {
	return fmt.Sprintf("App {\n  [...],\n\n  title: %q,\n  size: (%d, %d)\n}",
		a.title, a.size.Width, a.size.Height)
}
