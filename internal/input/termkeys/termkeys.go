//go:build termbox

// Package termkeys implements core.Keyboard against nsf/termbox-go key
// events. Each key press is reported for one poll cycle only.
package termkeys

import (
	"errors"

	"github.com/nsf/termbox-go"

	"github.com/chippy-core/chippy/internal/core"
)

var keyMap = map[rune]byte{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

var errQuit = errors.New("quit key pressed")

// Keypad adapts a stream of termbox key events into core.Keyboard. Because
// termbox only reports presses (not holds or releases), a key is
// considered "pressed" only for the single Poll() call following its
// event.
type Keypad struct {
	events chan termbox.Event
	down   [16]bool
	quit   bool
}

var _ core.Keyboard = (*Keypad)(nil)

// New starts the termbox event pump in the background.
func New() *Keypad {
	k := &Keypad{events: make(chan termbox.Event, 16)}
	go k.pump()
	return k
}

func (k *Keypad) pump() {
	for {
		k.events <- termbox.PollEvent()
	}
}

// Poll drains any pending termbox events into press state. Non-blocking.
func (k *Keypad) Poll() {
	k.down = [16]bool{}
	for {
		select {
		case ev := <-k.events:
			if ev.Ch == 'Q' {
				k.quit = true
				continue
			}
			if key, ok := keyMap[ev.Ch]; ok {
				k.down[key] = true
			}
		default:
			return
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
func (k *Keypad) IsExitRequested() bool { return k.quit }

// BlockForKey implements core.Keyboard, blocking on the raw termbox event
// channel until a mapped key arrives.
func (k *Keypad) BlockForKey() (byte, error) {
	for ev := range k.events {
		if ev.Ch == 'Q' {
			return 0, &core.InitError{Component: "keyboard", Err: errQuit}
		}
		if key, ok := keyMap[ev.Ch]; ok {
			return key, nil
		}
	}
	return 0, errQuit
}
