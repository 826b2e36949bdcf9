//go:build termbox

package backend

import (
	"github.com/chippy-core/chippy/internal/display/termbox"
	"github.com/chippy-core/chippy/internal/input/termkeys"
)

func init() {
	Register("termbox", func(scale int) (*Handle, error) {
		screen, err := termbox.Open()
		if err != nil {
			return nil, err
		}
		keys := termkeys.New()
		return &Handle{Display: screen, Keyboard: keys, Close: screen.Close}, nil
	})
}
