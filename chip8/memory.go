package chip8

const (
	/// MemorySize is the full CHIP-8 address space (4K).
	///
	MemorySize = 0x1000

	/// ProgramStart is where every loaded program begins. The first
	/// 512 bytes are reserved for the interpreter and its font.
	///
	ProgramStart = 0x200

	/// FontSpriteSize is the height (in bytes) of one hex digit sprite.
	///
	FontSpriteSize = 5
)

/// fontSprites are the sixteen 5-byte hex digit glyphs seeded at
/// address 0 of every new Memory.
///
var fontSprites = [...]byte{
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

/// Memory is the flat, byte-addressable store for a CHIP-8 session.
/// It holds the font sprites below #200 and the program image above.
///
type Memory struct {
	bytes [MemorySize]byte
}

/// NewMemory returns zeroed memory with the font sprites installed.
///
func NewMemory() *Memory {
	m := &Memory{}
	m.Reset()

	return m
}

/// Reset zeroes memory and re-seeds the font sprites. The program
/// image is gone afterwards and must be loaded again.
///
func (m *Memory) Reset() {
	m.bytes = [MemorySize]byte{}

	copy(m.bytes[:], fontSprites[:])
}

/// ReadByte returns the byte at addr.
///
func (m *Memory) ReadByte(addr uint16) (byte, error) {
	if addr >= MemorySize {
		return 0, &MemoryFaultError{Addr: addr}
	}

	return m.bytes[addr], nil
}

/// WriteByte stores b at addr.
///
func (m *Memory) WriteByte(addr uint16, b byte) error {
	if addr >= MemorySize {
		return &MemoryFaultError{Addr: addr}
	}

	m.bytes[addr] = b

	return nil
}

/// Load copies a byte sequence into memory starting at offset. It is
/// used once to install the font and once to install a program.
///
func (m *Memory) Load(offset uint16, p []byte) error {
	if int(offset)+len(p) > MemorySize {
		return &MemoryFaultError{Addr: uint16(int(offset) + len(p) - 1)}
	}

	copy(m.bytes[offset:], p)

	return nil
}

/// FontAddress returns the memory address of the sprite for a hex digit.
///
func FontAddress(digit byte) uint16 {
	return uint16(digit) * FontSpriteSize
}
