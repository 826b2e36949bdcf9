//go:build sdl

// Package sdlkeys implements core.Keyboard against veandco/go-sdl2 events,
// pumping SDL's event queue itself rather than relying on a caller to
// forward events.
package sdlkeys

import (
	"errors"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/chippy-core/chippy/internal/core"
)

// keyMap mirrors the conventional 4x4 hex keypad layout (1234/qwer/asdf/zxcv).
var keyMap = map[sdl.Keycode]byte{
	sdl.K_1: 0x1, sdl.K_2: 0x2, sdl.K_3: 0x3, sdl.K_4: 0xC,
	sdl.K_q: 0x4, sdl.K_w: 0x5, sdl.K_e: 0x6, sdl.K_r: 0xD,
	sdl.K_a: 0x7, sdl.K_s: 0x8, sdl.K_d: 0x9, sdl.K_f: 0xE,
	sdl.K_z: 0xA, sdl.K_x: 0x0, sdl.K_c: 0xB, sdl.K_v: 0xF,
}

var errQuitEvent = errors.New("sdl quit event received while blocking for a key")

// Keyboard adapts SDL2's event queue to core.Keyboard.
type Keyboard struct {
	keys [16]bool
	quit bool
}

var _ core.Keyboard = (*Keyboard)(nil)

// New returns an unopened Keyboard; Poll must be called to pump events.
func New() *Keyboard { return &Keyboard{} }

// Poll drains all pending SDL events into press/release state.
func (k *Keyboard) Poll() {
	for {
		ev := sdl.PollEvent()
		if ev == nil {
			return
		}
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			k.quit = true
		case *sdl.KeyboardEvent:
			chip8Key, ok := keyMap[e.Keysym.Sym]
			if !ok {
				continue
			}
			k.keys[chip8Key] = e.Type == sdl.KEYDOWN
		}
	}
}

// IsPressed implements core.Keyboard.
func (k *Keyboard) IsPressed(key byte) bool {
	if key >= 16 {
		return false
	}
	return k.keys[key]
}

// IsExitRequested implements core.Keyboard.
func (k *Keyboard) IsExitRequested() bool { return k.quit }

// BlockForKey implements core.Keyboard, waiting on SDL's event queue until
// a key-down event for a mapped key arrives.
func (k *Keyboard) BlockForKey() (byte, error) {
	for {
		ev := sdl.WaitEvent()
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			return 0, &core.InitError{Component: "keyboard", Err: errQuitEvent}
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			if chip8Key, ok := keyMap[e.Keysym.Sym]; ok {
				k.keys[chip8Key] = true
				return chip8Key, nil
			}
		}
	}
}
