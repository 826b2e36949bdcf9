// Package pixelwin renders the CHIP-8 framebuffer in a GL window using
// faiface/pixel. It is the default display backend.
package pixelwin

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/chippy-core/chippy/internal/core"
)

var _ core.Display = (*Window)(nil)

const (
	gridWidth    float64 = 64
	gridHeight   float64 = 32
	windowWidth  float64 = 1024
	windowHeight float64 = 768
)

// Window is a core.Display backed by a pixelgl window. It must be
// constructed on the goroutine pixelgl.Run was called from.
type Window struct {
	win    *pixelgl.Window
	pixels [64 * 32]bool
	keyMap map[byte]pixelgl.Button
}

// New creates a pixelgl window sized for a 64x32 grid scaled up for
// visibility, and wires the conventional 4x4 hex keypad layout.
func New() (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  "chippy",
		Bounds: pixel.R(0, 0, windowWidth, windowHeight),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, &core.InitError{Component: "pixelgl window", Err: fmt.Errorf("creating window: %w", err)}
	}
	return &Window{
		win: w,
		keyMap: map[byte]pixelgl.Button{
			0x1: pixelgl.Key1, 0x2: pixelgl.Key2, 0x3: pixelgl.Key3, 0xC: pixelgl.Key4,
			0x4: pixelgl.KeyQ, 0x5: pixelgl.KeyW, 0x6: pixelgl.KeyE, 0xD: pixelgl.KeyR,
			0x7: pixelgl.KeyA, 0x8: pixelgl.KeyS, 0x9: pixelgl.KeyD, 0xE: pixelgl.KeyF,
			0xA: pixelgl.KeyZ, 0x0: pixelgl.KeyX, 0xB: pixelgl.KeyC, 0xF: pixelgl.KeyV,
		},
	}, nil
}

// Clear implements core.Display.
func (w *Window) Clear() { w.pixels = [64 * 32]bool{} }

// SetPixel implements core.Display.
func (w *Window) SetPixel(x, y int, on bool) { w.pixels[y*64+x] = on }

// GetPixel implements core.Display.
func (w *Window) GetPixel(x, y int) bool { return w.pixels[y*64+x] }

// Present implements core.Display, redrawing the whole grid with an
// immediate-mode rectangle batch.
func (w *Window) Present() {
	w.win.Clear(colornames.Black)
	draw := imdraw.New(nil)
	draw.Color = pixel.RGB(1, 1, 1)
	cellW, cellH := windowWidth/gridWidth, windowHeight/gridHeight

	for i := 0; i < 64; i++ {
		for j := 0; j < 32; j++ {
			if !w.pixels[(31-j)*64+i] {
				continue
			}
			draw.Push(pixel.V(cellW*float64(i), cellH*float64(j)))
			draw.Push(pixel.V(cellW*float64(i)+cellW, cellH*float64(j)+cellH))
			draw.Rectangle(0)
		}
	}
	draw.Draw(w.win)
	w.win.Update()
}

// Closed reports whether the user has closed the window.
func (w *Window) Closed() bool { return w.win.Closed() }

// KeyMap exposes the hex-key -> pixelgl.Button mapping for the paired
// Keyboard adapter in internal/input/pixelkeys.
func (w *Window) KeyMap() map[byte]pixelgl.Button { return w.keyMap }

// PixelglWindow exposes the underlying window for the keyboard adapter,
// which needs to query JustPressed/JustReleased directly.
func (w *Window) PixelglWindow() *pixelgl.Window { return w.win }
