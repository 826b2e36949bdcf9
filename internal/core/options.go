package core

// Options configures the quirk toggles and host ports a VM is constructed
// with. The zero value disables every quirk (copy-then-shift, I-advance on
// FX55/FX65, VF set on FX1E overflow); use DefaultOptions for the
// recommended defaults (in-place shift, I untouched, VF untouched).
type Options struct {
	// ShiftQuirk, when true (the default), makes 8XY6/8XYE shift Vx in
	// place. When false, Vy is copied into Vx before shifting (the
	// original COSMAC VIP behavior).
	ShiftQuirk bool

	// LoadStoreQuirk, when true (the default), leaves I unmodified by
	// FX55/FX65. When false, I is left at I+x+1 after the operation.
	LoadStoreQuirk bool

	// OverflowVF, when true (the default), leaves VF untouched by FX1E.
	// When false, VF is set to 1 when I+Vx overflows past 0xFFF.
	OverflowVF bool

	Display  Display
	Keyboard Keyboard
	Random   Random
	Sound    SoundPort
}

// DefaultOptions returns the recommended quirk defaults with no host
// ports attached. Callers running headless (tests, golden-ROM checks)
// can use this as-is; a live VM needs Display/Keyboard/Random supplied.
func DefaultOptions() Options {
	return Options{
		ShiftQuirk:     true,
		LoadStoreQuirk: true,
		OverflowVF:     true,
	}
}
