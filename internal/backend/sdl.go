//go:build sdl

package backend

import (
	"github.com/chippy-core/chippy/internal/display/sdlwin"
	"github.com/chippy-core/chippy/internal/input/sdlkeys"
)

func init() {
	Register("sdl", func(scale int) (*Handle, error) {
		win, err := sdlwin.New("chippy", int32(scale))
		if err != nil {
			return nil, err
		}
		keys := sdlkeys.New()
		return &Handle{Display: win, Keyboard: keys, Close: win.Close}, nil
	})
}
