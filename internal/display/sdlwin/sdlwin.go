//go:build sdl

// Package sdlwin implements core.Display using veandco/go-sdl2, an
// alternative to the default pixelgl backend.
package sdlwin

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/chippy-core/chippy/internal/core"
)

const (
	width  = 64
	height = 32
)

// Window is a core.Display backed by an SDL2 window and renderer.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	scale    int32
	pixels   [width * height]bool
}

var _ core.Display = (*Window)(nil)

// New creates an SDL2 window scaled by the given factor per CHIP-8 pixel.
func New(title string, scale int32) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, &core.InitError{Component: "sdl2", Err: fmt.Errorf("init: %w", err)}
	}

	win, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		width*scale, height*scale,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return nil, &core.InitError{Component: "sdl2 window", Err: err}
	}

	renderer, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		win.Destroy()
		return nil, &core.InitError{Component: "sdl2 renderer", Err: err}
	}

	return &Window{window: win, renderer: renderer, scale: scale}, nil
}

// Close releases the SDL2 window, renderer, and subsystem.
func (w *Window) Close() {
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.window != nil {
		w.window.Destroy()
	}
	sdl.Quit()
}

// Clear implements core.Display.
func (w *Window) Clear() { w.pixels = [width * height]bool{} }

// SetPixel implements core.Display.
func (w *Window) SetPixel(x, y int, on bool) { w.pixels[y*width+x] = on }

// GetPixel implements core.Display.
func (w *Window) GetPixel(x, y int) bool { return w.pixels[y*width+x] }

// Present implements core.Display, drawing one scaled rectangle per lit
// pixel.
func (w *Window) Present() {
	w.renderer.SetDrawColor(0, 0, 0, 255)
	w.renderer.Clear()
	w.renderer.SetDrawColor(0, 255, 0, 255)

	for y := int32(0); y < height; y++ {
		for x := int32(0); x < width; x++ {
			if !w.pixels[y*width+x] {
				continue
			}
			rect := sdl.Rect{X: x * w.scale, Y: y * w.scale, W: w.scale, H: w.scale}
			w.renderer.FillRect(&rect)
		}
	}
	w.renderer.Present()
}
