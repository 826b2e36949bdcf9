package core

// Step runs exactly one cycle: decrement DT/ST if nonzero, fetch the
// opcode at PC, advance PC by 2, decode, execute, and — if the executed
// instruction touched the framebuffer — present it. A fetch with PC at
// the last addressable byte (no second byte available) fails with
// BoundsError. Any failure transitions the VM to Faulted.
func (vm *VM) Step() error {
	if vm.state == StateFaulted || vm.state == StateStopped {
		return vm.err
	}

	if vm.regs.dt > 0 {
		vm.regs.dt--
	}
	if vm.regs.st > 0 {
		vm.regs.st--
	}

	hi, err := vm.mem.read(vm.regs.pc)
	if err != nil {
		return vm.fault(err)
	}
	lo, err := vm.mem.read(vm.regs.pc + 1)
	if err != nil {
		return vm.fault(err)
	}
	opcode := uint16(hi)<<8 | uint16(lo)
	fetchedAt := vm.regs.pc
	vm.regs.pc += 2

	instr, err := Decode(opcode, fetchedAt)
	if err != nil {
		return vm.fault(err)
	}

	vm.needsPresent = false
	if err := instr.exec(vm); err != nil {
		return vm.fault(err)
	}

	if vm.needsPresent {
		vm.fb.present(vm.opts.Display)
	}

	if vm.state != StateWaiting {
		vm.state = StateRunning
	}

	return nil
}

// Run loops Step until the VM stops, faults, or the keyboard port reports
// an exit request. It returns the terminal error, or nil on a clean Stop.
func (vm *VM) Run() error {
	vm.state = StateRunning
	for {
		if vm.state == StateStopped {
			return nil
		}

		if vm.opts.Keyboard != nil {
			vm.opts.Keyboard.Poll()
			if vm.opts.Keyboard.IsExitRequested() {
				vm.state = StateStopped
				return nil
			}
		}

		if err := vm.Step(); err != nil {
			return err
		}

		if vm.state == StateStopped {
			return nil
		}
	}
}

// Stop requests that Run exit before its next fetch. Any in-progress
// instruction always completes first.
func (vm *VM) Stop() {
	if vm.state != StateFaulted {
		vm.state = StateStopped
	}
}
