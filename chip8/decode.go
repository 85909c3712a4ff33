package chip8

/// Op identifies one of the ~35 CHIP-8 operation families.
///
type Op int

const (
	OpUnknown Op = iota
	OpClear       // 00E0
	OpReturn      // 00EE
	OpJump        // 1NNN
	OpCall        // 2NNN
	OpSkipEq      // 3XNN
	OpSkipNe      // 4XNN
	OpSkipEqXY    // 5XY0
	OpLoad        // 6XNN
	OpAdd         // 7XNN
	OpLoadXY      // 8XY0
	OpOr          // 8XY1
	OpAnd         // 8XY2
	OpXor         // 8XY3
	OpAddXY       // 8XY4
	OpSubXY       // 8XY5
	OpShiftRight  // 8XY6
	OpSubYX       // 8XY7
	OpShiftLeft   // 8XYE
	OpSkipNeXY    // 9XY0
	OpLoadI       // ANNN
	OpJumpV0      // BNNN
	OpRandom      // CXNN
	OpDraw        // DXYN
	OpSkipKey     // EX9E
	OpSkipNoKey   // EXA1
	OpLoadDelay   // FX07
	OpWaitKey     // FX0A
	OpSetDelay    // FX15
	OpSetSound    // FX18
	OpAddI        // FX1E
	OpLoadFont    // FX29
	OpStoreBCD    // FX33
	OpStoreRegs   // FX55
	OpLoadRegs    // FX65
)

/// Instruction is one decoded opcode: the operation plus every
/// operand field, extracted up front so execution never touches the
/// raw bits again.
///
type Instruction struct {
	Op  Op
	X   byte   // second nibble, a register index
	Y   byte   // third nibble, a register index
	N   byte   // low nibble
	NN  byte   // low byte
	NNN uint16 // low 12 bits, an address
}

/// Decode a 16-bit opcode into an Instruction. Unrecognized patterns
/// decode to OpUnknown; the interpreter treats those as no-ops.
///
func Decode(opcode uint16) Instruction {
	return Instruction{
		Op:  decodeOp(opcode),
		X:   byte(opcode>>8) & 0xF,
		Y:   byte(opcode>>4) & 0xF,
		N:   byte(opcode) & 0xF,
		NN:  byte(opcode),
		NNN: opcode & 0xFFF,
	}
}

/// decodeOp dispatches on the leading nibble, then on the trailing
/// nibble or byte for the 0/8/E/F groups.
///
func decodeOp(opcode uint16) Op {
	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode {
		case 0x00E0:
			return OpClear
		case 0x00EE:
			return OpReturn
		}
	case 0x1000:
		return OpJump
	case 0x2000:
		return OpCall
	case 0x3000:
		return OpSkipEq
	case 0x4000:
		return OpSkipNe
	case 0x5000:
		if opcode&0xF == 0 {
			return OpSkipEqXY
		}
	case 0x6000:
		return OpLoad
	case 0x7000:
		return OpAdd
	case 0x8000:
		switch opcode & 0xF {
		case 0x0:
			return OpLoadXY
		case 0x1:
			return OpOr
		case 0x2:
			return OpAnd
		case 0x3:
			return OpXor
		case 0x4:
			return OpAddXY
		case 0x5:
			return OpSubXY
		case 0x6:
			return OpShiftRight
		case 0x7:
			return OpSubYX
		case 0xE:
			return OpShiftLeft
		}
	case 0x9000:
		if opcode&0xF == 0 {
			return OpSkipNeXY
		}
	case 0xA000:
		return OpLoadI
	case 0xB000:
		return OpJumpV0
	case 0xC000:
		return OpRandom
	case 0xD000:
		return OpDraw
	case 0xE000:
		switch opcode & 0xFF {
		case 0x9E:
			return OpSkipKey
		case 0xA1:
			return OpSkipNoKey
		}
	case 0xF000:
		switch opcode & 0xFF {
		case 0x07:
			return OpLoadDelay
		case 0x0A:
			return OpWaitKey
		case 0x15:
			return OpSetDelay
		case 0x18:
			return OpSetSound
		case 0x1E:
			return OpAddI
		case 0x29:
			return OpLoadFont
		case 0x33:
			return OpStoreBCD
		case 0x55:
			return OpStoreRegs
		case 0x65:
			return OpLoadRegs
		}
	}

	return OpUnknown
}
