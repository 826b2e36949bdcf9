//go:build termbox

// Package termbox implements a text-mode core.Display using nsf/termbox-go,
// for headful-but-GL-less environments (CI runners, SSH sessions).
package termbox

import (
	"github.com/nsf/termbox-go"

	"github.com/chippy-core/chippy/internal/core"
)

const (
	width  = 64
	height = 32
)

// Screen is a core.Display that draws the CHIP-8 grid as block characters
// in a terminal using termbox-go.
type Screen struct {
	pixels [width * height]bool
}

var _ core.Display = (*Screen)(nil)

// Open initializes the termbox terminal. Callers must call Close when
// done.
func Open() (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, &core.InitError{Component: "termbox", Err: err}
	}
	return &Screen{}, nil
}

// Close tears down the termbox terminal.
func (s *Screen) Close() { termbox.Close() }

// Clear implements core.Display.
func (s *Screen) Clear() { s.pixels = [width * height]bool{} }

// SetPixel implements core.Display.
func (s *Screen) SetPixel(x, y int, on bool) { s.pixels[y*width+x] = on }

// GetPixel implements core.Display.
func (s *Screen) GetPixel(x, y int) bool { return s.pixels[y*width+x] }

// Present implements core.Display, redrawing the whole grid as termbox
// cells: a lit pixel is a solid block, an unlit pixel is blank.
func (s *Screen) Present() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ch := ' '
			if s.pixels[y*width+x] {
				ch = '█'
			}
			termbox.SetCell(x, y, ch, termbox.ColorWhite, termbox.ColorDefault)
		}
	}
	termbox.Flush()
}
