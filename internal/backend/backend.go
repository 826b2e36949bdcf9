// Package backend registers the concrete Display/Keyboard pairs a chippy
// binary can drive the VM with. Alternate backends (termbox, sdl) are
// compiled in only under their matching build tag; the default build
// carries only the pixelgl backend.
package backend

import (
	"fmt"

	"github.com/chippy-core/chippy/internal/core"
)

// Handle bundles a running backend's ports with the teardown function
// needed to release its resources.
type Handle struct {
	Display  core.Display
	Keyboard core.Keyboard
	Close    func()
}

// Factory constructs a Handle for a backend, given a pixel/cell scale
// factor (ignored by backends that don't scale, such as termbox).
type Factory func(scale int) (*Handle, error)

var registry = map[string]Factory{}

// Register adds a named backend factory. Called from each backend's
// build-tag-guarded registration file at package init time.
func Register(name string, f Factory) {
	registry[name] = f
}

// Open constructs the named backend, failing if it was not compiled in.
func Open(name string, scale int) (*Handle, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("backend %q is not available in this build (available: %v)", name, Names())
	}
	return f(scale)
}

// Names lists the backends compiled into this binary.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
