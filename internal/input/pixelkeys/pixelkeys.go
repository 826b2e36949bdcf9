// Package pixelkeys implements core.Keyboard against a pixelgl window. A
// key is recorded as down from its press event until its release event,
// so a held key keeps reporting "pressed" between poll cycles.
package pixelkeys

import (
	"errors"
	"time"

	"github.com/faiface/pixel/pixelgl"

	"github.com/chippy-core/chippy/internal/core"
	"github.com/chippy-core/chippy/internal/display/pixelwin"
)

const keyRepeatDur = time.Second / 5

var errExitDuringWait = errors.New("window closed while blocking for a key")

// Keypad adapts a pixelwin.Window's key events to core.Keyboard.
type Keypad struct {
	win      *pixelwin.Window
	keyMap   map[byte]pixelgl.Button
	down     [16]bool
	tickers  [16]*time.Ticker
	justDown [16]bool
}

var _ core.Keyboard = (*Keypad)(nil)

// New builds a Keypad bound to win's key map.
func New(win *pixelwin.Window) *Keypad {
	return &Keypad{win: win, keyMap: win.KeyMap()}
}

// Poll drains the pixelgl window's input events into the keypad's
// internal press/release state. Must be called once per cycle from the
// same goroutine the window was created on.
func (k *Keypad) Poll() {
	w := k.win.PixelglWindow()
	w.UpdateInput()

	for i := byte(0); i < 16; i++ {
		btn, ok := k.keyMap[i]
		if !ok {
			continue
		}
		switch {
		case w.JustPressed(btn):
			k.down[i] = true
			k.justDown[i] = true
			k.tickers[i] = time.NewTicker(keyRepeatDur)
		case w.JustReleased(btn):
			k.down[i] = false
			if k.tickers[i] != nil {
				k.tickers[i].Stop()
				k.tickers[i] = nil
			}
		}
	}
}

// IsPressed implements core.Keyboard.
func (k *Keypad) IsPressed(key byte) bool {
	if key >= 16 {
		return false
	}
	return k.down[key]
}

// IsExitRequested implements core.Keyboard.
func (k *Keypad) IsExitRequested() bool {
	return k.win.PixelglWindow().Closed()
}

// BlockForKey implements core.Keyboard, suspending until a key transitions
// from released to pressed.
func (k *Keypad) BlockForKey() (byte, error) {
	for {
		k.Poll()
		for i := byte(0); i < 16; i++ {
			if k.justDown[i] {
				k.justDown[i] = false
				return i, nil
			}
		}
		if k.IsExitRequested() {
			return 0, &core.InitError{Component: "keyboard", Err: errExitDuringWait}
		}
		time.Sleep(10 * time.Millisecond)
	}
}
