package core

// memSize is the total addressable span of CHIP-8 memory: 4 KiB.
const memSize = 4096

// ProgramStart is the conventional load address for CHIP-8 ROMs. Addresses
// below this are reserved for interpreter use (the font table lives at
// fontBase).
const ProgramStart = 0x200

// fontBase is where the built-in hex glyph set is installed at boot.
const fontBase = 0x050

// maxROMSize is the largest ROM that fits between ProgramStart and the top
// of memory.
const maxROMSize = memSize - ProgramStart

// memory is a bounds-checked 4 KiB byte-addressable store.
type memory struct {
	bytes [memSize]byte
}

// read returns the byte at addr, failing with a BoundsError if addr is out
// of range.
func (m *memory) read(addr uint16) (byte, error) {
	if int(addr) >= memSize {
		return 0, &BoundsError{Op: "read", Addr: int(addr)}
	}
	return m.bytes[addr], nil
}

// write stores a byte at addr, failing with a BoundsError if addr is out of
// range.
func (m *memory) write(addr uint16, v byte) error {
	if int(addr) >= memSize {
		return &BoundsError{Op: "write", Addr: int(addr)}
	}
	m.bytes[addr] = v
	return nil
}

// load writes data sequentially starting at addr, failing with a
// BoundsError if the data would overflow memory. No bytes are written on
// failure.
func (m *memory) load(addr uint16, data []byte) error {
	if int(addr)+len(data) > memSize {
		return &BoundsError{Op: "load", Addr: int(addr) + len(data)}
	}
	copy(m.bytes[addr:], data)
	return nil
}

// fontSet is the built-in 80-byte hex glyph table (0-F), 5 bytes per
// glyph, 4 pixels wide in the high nibble of each byte.
var fontSet = [80]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// loadFontSet installs the hex glyph table at fontBase.
func (m *memory) loadFontSet() {
	copy(m.bytes[fontBase:], fontSet[:])
}
