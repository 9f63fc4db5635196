// Package sdl2 provides the SDL2 backend for the platform package.
//
// SDL must be driven from the main OS thread; callers lock it with
// runtime.LockOSThread in main's init before creating anything here.
package sdl2

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/vovakirdan/snake/internal/platform"
)

// Name is the registry name of this backend.
const Name = "sdl"

func init() {
	platform.Register(Name, func() platform.Platform { return New() })
}

// Backend initializes SDL2's video subsystem.
type Backend struct{}

// New creates a new SDL2 backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the registry name.
func (b *Backend) Name() string {
	return Name
}

// InitVideo initializes SDL and its video subsystem.
func (b *Backend) InitVideo() (platform.Video, error) {
	if err := sdl.Init(0); err != nil {
		return nil, &platform.Error{Op: "init sdl", Err: err}
	}
	if err := sdl.InitSubSystem(sdl.INIT_VIDEO); err != nil {
		sdl.Quit()
		return nil, &platform.Error{Op: "init video", Err: err}
	}

	driver, _ := sdl.GetCurrentVideoDriver()
	return &video{driver: driver}, nil
}

type video struct {
	driver string
}

func (v *video) Driver() string {
	return v.driver
}

func (v *video) CreateWindow(title string, width, height uint32, flags platform.WindowFlags) (platform.Window, error) {
	posX, posY := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)
	if flags.Centered {
		posX, posY = int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)
	}

	windowFlags := uint32(sdl.WINDOW_SHOWN)
	if flags.HighDPI {
		windowFlags |= uint32(sdl.WINDOW_ALLOW_HIGHDPI)
	}

	handle, err := sdl.CreateWindow(title, posX, posY, int32(width), int32(height), windowFlags)
	if err != nil {
		return nil, &platform.Error{Op: "create window", Err: err}
	}

	id, err := handle.GetID()
	if err != nil {
		handle.Destroy()
		return nil, &platform.Error{Op: "window id", Err: err}
	}

	return &window{handle: handle, id: id}, nil
}

func (v *video) Close() error {
	sdl.QuitSubSystem(sdl.INIT_VIDEO)
	sdl.Quit()
	return nil
}

type window struct {
	handle *sdl.Window
	id     uint32
}

func (w *window) ID() uint32 {
	return w.id
}

func (w *window) CreateCanvas(flags platform.CanvasFlags) (platform.Canvas, error) {
	var rendererFlags uint32
	if flags.Accelerated {
		rendererFlags |= uint32(sdl.RENDERER_ACCELERATED)
	}
	if flags.VSync {
		rendererFlags |= uint32(sdl.RENDERER_PRESENTVSYNC)
	}

	renderer, err := sdl.CreateRenderer(w.handle, -1, rendererFlags)
	if err != nil {
		return nil, &platform.Error{Op: "create canvas", Err: err}
	}

	return &canvas{renderer: renderer}, nil
}

func (w *window) Close() error {
	if err := w.handle.Destroy(); err != nil {
		return &platform.Error{Op: "destroy window", Err: err}
	}
	return nil
}

type canvas struct {
	renderer *sdl.Renderer
}

func (c *canvas) SetDrawColor(r, g, b, a uint8) error {
	return c.renderer.SetDrawColor(r, g, b, a)
}

func (c *canvas) Clear() error {
	return c.renderer.Clear()
}

func (c *canvas) Present() {
	c.renderer.Present()
}

func (c *canvas) Close() error {
	if err := c.renderer.Destroy(); err != nil {
		return &platform.Error{Op: "destroy canvas", Err: err}
	}
	return nil
}
