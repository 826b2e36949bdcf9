package backend

import (
	"github.com/chippy-core/chippy/internal/display/pixelwin"
	"github.com/chippy-core/chippy/internal/input/pixelkeys"
)

func init() {
	Register("pixelgl", func(scale int) (*Handle, error) {
		win, err := pixelwin.New()
		if err != nil {
			return nil, err
		}
		keys := pixelkeys.New(win)
		return &Handle{Display: win, Keyboard: keys, Close: func() {}}, nil
	})
}
