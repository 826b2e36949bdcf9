// Package core implements the CHIP-8 fetch/decode/execute engine: main
// memory, the monochrome framebuffer, the register file and call stack,
// the instruction decoder and executor, and the cycle driver that ties
// them together. Everything outside this package — windowing, keyboard
// polling, ROM file I/O, sound playback, pacing — is a thin adapter
// talking to the ports declared in ports.go and the Display port declared
// in framebuffer.go.
package core

import "fmt"

// State is the cycle driver's coarse run state.
type State int

const (
	// StateIdle is the state before Load has been called.
	StateIdle State = iota
	// StateReady is the state after a successful Load, before Run/Step.
	StateReady
	// StateRunning is the state while the run loop is actively stepping.
	StateRunning
	// StateWaiting is entered while an FX0A key-wait instruction blocks.
	StateWaiting
	// StateStopped is a terminal state reached via Stop() or an exit
	// request from the keyboard port.
	StateStopped
	// StateFaulted is a terminal state reached when any step fails.
	StateFaulted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateReady:
		return "Ready"
	case StateRunning:
		return "Running"
	case StateWaiting:
		return "Waiting"
	case StateStopped:
		return "Stopped"
	case StateFaulted:
		return "Faulted"
	default:
		return "Unknown"
	}
}

// VM is the CHIP-8 virtual machine: memory, registers, stack, and
// framebuffer, driven one cycle at a time by Step/Run. It holds the host
// ports it was constructed with by owned reference; it never reaches back
// into them except through the Display/Keyboard/Random/SoundPort
// interfaces.
type VM struct {
	mem   memory
	regs  registers
	stack stack
	fb    framebuffer

	opts Options

	state State
	err   error

	// needsPresent is set by a handler that mutated the framebuffer; Step
	// resets it before each instruction executes and signals the display
	// port when it is set afterwards.
	needsPresent bool
}

// NewVM constructs a VM with the font set installed and quirks configured
// from opts. It does not load a ROM; call Load before Step/Run.
func NewVM(opts Options) *VM {
	vm := &VM{opts: opts, state: StateIdle}
	vm.mem.loadFontSet()
	vm.regs.pc = ProgramStart
	return vm
}

// Load installs rom into memory starting at ProgramStart, rejecting ROMs
// that are empty or too large to fit before the top of memory.
func (vm *VM) Load(rom []byte) error {
	if len(rom) == 0 {
		return &IOError{Op: "load", Path: "<rom>", Err: fmt.Errorf("empty ROM")}
	}
	if len(rom) > maxROMSize {
		return &IOError{Op: "load", Path: "<rom>", Err: fmt.Errorf("rom too large: %d bytes (max %d)", len(rom), maxROMSize)}
	}
	if err := vm.mem.load(ProgramStart, rom); err != nil {
		return &IOError{Op: "load", Path: "<rom>", Err: err}
	}
	vm.state = StateReady
	return nil
}

// State returns the driver's current coarse run state.
func (vm *VM) State() State { return vm.state }

// Err returns the error that faulted the VM, if any.
func (vm *VM) Err() error { return vm.err }

// PC, I, DT, ST, SP expose read-only views of VM state for tests and
// debugging adapters.
func (vm *VM) PC() uint16 { return vm.regs.pc }
func (vm *VM) I() uint16  { return vm.regs.i }
func (vm *VM) DT() byte   { return vm.regs.dt }
func (vm *VM) ST() byte   { return vm.regs.st }
func (vm *VM) SP() int    { return vm.stack.sp }
func (vm *VM) V(idx int) byte { return vm.regs.V(idx) }

// Keyboard returns the Keyboard port the VM was constructed with, or nil
// if none was supplied (e.g. a headless VM driven only by Step()).
func (vm *VM) Keyboard() Keyboard { return vm.opts.Keyboard }

// GetPixel reports the framebuffer's internal notion of a pixel, for tests
// that want to assert on VM state without a Display port attached.
func (vm *VM) GetPixel(x, y int) bool { return vm.fb.get(x, y) }

// fault transitions the VM to Faulted and records err, returning it
// unchanged so callers can `return vm.fault(err)`.
func (vm *VM) fault(err error) error {
	vm.state = StateFaulted
	vm.err = err
	return err
}
