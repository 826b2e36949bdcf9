package core

import "testing"

type stubRandom struct{ next byte }

func (r stubRandom) NextByte() byte { return r.next }

type stubKeyboard struct {
	pressed     map[byte]bool
	exit        bool
	blockResult byte
	blockErr    error
}

func (k *stubKeyboard) IsPressed(key byte) bool  { return k.pressed[key] }
func (k *stubKeyboard) IsExitRequested() bool    { return k.exit }
func (k *stubKeyboard) Poll()                    {}
func (k *stubKeyboard) BlockForKey() (byte, error) { return k.blockResult, k.blockErr }

type stubSound struct{ beeps int }

func (s *stubSound) NotifyBeep() { s.beeps++ }

func TestRnd_masksAgainstPort(t *testing.T) {
	opts := DefaultOptions()
	opts.Random = stubRandom{next: 0xFF}
	vm := NewVM(opts)
	vm.mem.write(0x200, 0xC0)
	vm.mem.write(0x201, 0x0F)

	if err := vm.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vm.V(0) != 0x0F {
		t.Errorf("V0 => 0x%02X; want 0x0F", vm.V(0))
	}
}

func TestSkp_skipsWhenPressed(t *testing.T) {
	opts := DefaultOptions()
	opts.Keyboard = &stubKeyboard{pressed: map[byte]bool{5: true}}
	vm := NewVM(opts)
	vm.regs.setV(0, 5)
	vm.mem.write(0x200, 0xE0)
	vm.mem.write(0x201, 0x9E)

	if err := vm.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vm.PC() != 0x204 {
		t.Errorf("PC => 0x%03X; want 0x204 (skip taken)", vm.PC())
	}
}

func TestSknp_skipsWhenNotPressed(t *testing.T) {
	opts := DefaultOptions()
	opts.Keyboard = &stubKeyboard{pressed: map[byte]bool{}}
	vm := NewVM(opts)
	vm.regs.setV(0, 5)
	vm.mem.write(0x200, 0xE0)
	vm.mem.write(0x201, 0xA1)

	if err := vm.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vm.PC() != 0x204 {
		t.Errorf("PC => 0x%03X; want 0x204 (skip taken)", vm.PC())
	}
}

func TestLdVxK_blocksAndReportsKey(t *testing.T) {
	opts := DefaultOptions()
	opts.Keyboard = &stubKeyboard{blockResult: 0xB}
	vm := NewVM(opts)
	vm.mem.write(0x200, 0xF0)
	vm.mem.write(0x201, 0x0A)

	if err := vm.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vm.V(0) != 0xB {
		t.Errorf("V0 => 0x%X; want 0xB", vm.V(0))
	}
	if vm.State() != StateRunning {
		t.Errorf("state => %v; want Running after key arrives", vm.State())
	}
}

func TestLdSTVx_notifiesSoundPort(t *testing.T) {
	opts := DefaultOptions()
	sound := &stubSound{}
	opts.Sound = sound
	vm := NewVM(opts)
	vm.regs.setV(0, 5)
	vm.mem.write(0x200, 0xF0)
	vm.mem.write(0x201, 0x18)

	if err := vm.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sound.beeps != 1 {
		t.Errorf("beeps => %d; want 1", sound.beeps)
	}
}

// 8XY6/8XYE with ShiftQuirk disabled copy Vy into Vx before shifting.
func TestShr_copiesVyWhenQuirkDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.ShiftQuirk = false
	vm := NewVM(opts)
	vm.regs.setV(1, 0b0000_0011) // Vy
	vm.regs.setV(0, 0xFF)        // Vx, should be overwritten by Vy before shift
	vm.mem.write(0x200, 0x80)
	vm.mem.write(0x201, 0x16)

	if err := vm.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vm.V(0) != 0b0000_0001 {
		t.Errorf("V0 => %b; want 1 (3>>1)", vm.V(0))
	}
	if vm.V(flagRegister) != 1 {
		t.Errorf("VF => %d; want 1 (lsb of 3)", vm.V(flagRegister))
	}
}

func TestShr_inPlaceByDefault(t *testing.T) {
	vm := NewVM(DefaultOptions())
	vm.regs.setV(0, 0b0000_0011)
	vm.regs.setV(1, 0xFF) // Vy should be ignored
	vm.mem.write(0x200, 0x80)
	vm.mem.write(0x201, 0x16)

	if err := vm.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vm.V(0) != 0b0000_0001 {
		t.Errorf("V0 => %b; want 1", vm.V(0))
	}
}

// FX55/FX65 with LoadStoreQuirk disabled advance I by x+1.
func TestLdIVx_advancesIWhenQuirkDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.LoadStoreQuirk = false
	vm := NewVM(opts)
	vm.regs.i = 0x400
	vm.mem.write(0x200, 0xF3)
	vm.mem.write(0x201, 0x55)

	if err := vm.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vm.I() != 0x404 {
		t.Errorf("I => 0x%03X; want 0x404 (0x400 + 3 + 1)", vm.I())
	}
}

// FX1E with OverflowVF disabled sets VF on index overflow past 0xFFF.
func TestAddIVx_setsVFOnOverflowWhenQuirkDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.OverflowVF = false
	vm := NewVM(opts)
	vm.regs.i = 0xFFE
	vm.regs.setV(0, 2)
	vm.mem.write(0x200, 0xF0)
	vm.mem.write(0x201, 0x1E)

	if err := vm.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vm.V(flagRegister) != 1 {
		t.Errorf("VF => %d; want 1", vm.V(flagRegister))
	}
}

func TestAddIVx_leavesVFByDefault(t *testing.T) {
	vm := NewVM(DefaultOptions())
	vm.regs.i = 0xFFE
	vm.regs.setV(0, 2)
	vm.regs.setV(flagRegister, 7)
	vm.mem.write(0x200, 0xF0)
	vm.mem.write(0x201, 0x1E)

	if err := vm.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vm.V(flagRegister) != 7 {
		t.Errorf("VF => %d; want 7 (untouched)", vm.V(flagRegister))
	}
}

func TestLdFVx_pointsAtGlyphStride(t *testing.T) {
	vm := NewVM(DefaultOptions())
	vm.regs.setV(0, 0xA)
	vm.mem.write(0x200, 0xF0)
	vm.mem.write(0x201, 0x29)

	if err := vm.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vm.I() != fontBase+0xA*5 {
		t.Errorf("I => 0x%03X; want 0x%03X", vm.I(), fontBase+0xA*5)
	}
}

func TestDraw_clipsAtScreenEdgeWithoutWrapping(t *testing.T) {
	vm := NewVM(DefaultOptions())
	vm.regs.i = 0x400
	vm.mem.write(0x400, 0xFF) // full row of 8 set bits
	vm.regs.setV(0, 60)       // x: only 4 columns fit before the edge
	vm.regs.setV(1, 0)
	vm.mem.write(0x200, 0xD0)
	vm.mem.write(0x201, 0x11)

	if err := vm.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for x := 60; x < 64; x++ {
		if !vm.GetPixel(x, 0) {
			t.Errorf("pixel (%d,0) not set", x)
		}
	}
	// Nothing should have wrapped onto column 0.
	if vm.GetPixel(0, 0) {
		t.Error("sprite wrapped onto column 0 instead of clipping")
	}
}
