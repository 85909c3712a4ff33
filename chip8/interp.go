package chip8

import (
	"math/rand"
	"time"
)

/// Interpreter runs the fetch-decode-execute cycle against machine
/// state it does not own. Beyond "normal" its only state is "awaiting
/// a key" for the FX0A instruction, held here so a Step can refuse to
/// advance the program counter until a key shows up.
///
type Interpreter struct {
	rand *rand.Rand

	// FX0A busy-wait state
	waiting bool
	waitReg byte
}

/// NewInterpreter returns an interpreter with a seeded RNG for CXNN.
///
func NewInterpreter() *Interpreter {
	return &Interpreter{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

/// Reset clears the awaiting-key state.
///
func (in *Interpreter) Reset() {
	in.waiting = false
}

/// Waiting reports whether the interpreter is blocked on FX0A.
///
func (in *Interpreter) Waiting() bool {
	return in.waiting
}

/// Step executes a single instruction: fetch two bytes at PC as a
/// big-endian opcode, decode, apply. Every instruction either sets PC
/// itself or leaves it advanced by 2 (skips add another 2).
///
/// Memory and stack faults are fatal. An unknown opcode is reported
/// as an UnknownOpcodeError after PC has already moved past it, so
/// the caller can log it and keep stepping.
///
func (in *Interpreter) Step(m *Memory, r *RegisterFile, d *DisplayBuffer, k *KeypadState) error {
	if in.waiting {
		key, ok := k.FirstPressed()
		if !ok {
			return nil
		}

		r.V[in.waitReg] = key
		in.waiting = false

		// move past the FX0A now that it completed
		r.PC += 2

		return nil
	}

	pc := r.PC

	// fetch big-endian
	hi, err := m.ReadByte(pc)
	if err != nil {
		return err
	}

	lo, err := m.ReadByte(pc + 1)
	if err != nil {
		return err
	}

	opcode := uint16(hi)<<8 | uint16(lo)

	// advance past the instruction before executing, so jumps can
	// overwrite PC and skips can add to it
	r.PC = pc + 2

	return in.exec(Decode(opcode), opcode, pc, m, r, d, k)
}

/// exec applies one decoded instruction to the machine state.
///
func (in *Interpreter) exec(inst Instruction, opcode, pc uint16, m *Memory, r *RegisterFile, d *DisplayBuffer, k *KeypadState) error {
	switch inst.Op {
	case OpClear:
		d.Clear()

	case OpReturn:
		addr, err := r.Pop()
		if err != nil {
			return err
		}
		r.PC = addr

	case OpJump:
		r.PC = inst.NNN

	case OpCall:
		// push the address of the next instruction
		if err := r.Push(r.PC); err != nil {
			return err
		}
		r.PC = inst.NNN

	case OpSkipEq:
		if r.V[inst.X] == inst.NN {
			r.PC += 2
		}

	case OpSkipNe:
		if r.V[inst.X] != inst.NN {
			r.PC += 2
		}

	case OpSkipEqXY:
		if r.V[inst.X] == r.V[inst.Y] {
			r.PC += 2
		}

	case OpSkipNeXY:
		if r.V[inst.X] != r.V[inst.Y] {
			r.PC += 2
		}

	case OpLoad:
		r.V[inst.X] = inst.NN

	case OpAdd:
		// wrapping add, flag untouched
		r.V[inst.X] += inst.NN

	case OpLoadXY:
		r.V[inst.X] = r.V[inst.Y]

	case OpOr:
		r.V[inst.X] |= r.V[inst.Y]

	case OpAnd:
		r.V[inst.X] &= r.V[inst.Y]

	case OpXor:
		r.V[inst.X] ^= r.V[inst.Y]

	case OpAddXY:
		sum := uint16(r.V[inst.X]) + uint16(r.V[inst.Y])
		r.V[inst.X] = byte(sum)

		// flag is written last, so it survives X == F
		if sum > 0xFF {
			r.V[0xF] = 1
		} else {
			r.V[0xF] = 0
		}

	case OpSubXY:
		noBorrow := r.V[inst.X] > r.V[inst.Y]
		r.V[inst.X] -= r.V[inst.Y]

		if noBorrow {
			r.V[0xF] = 1
		} else {
			r.V[0xF] = 0
		}

	case OpShiftRight:
		lsb := r.V[inst.X] & 1
		r.V[inst.X] >>= 1
		r.V[0xF] = lsb

	case OpSubYX:
		// canonical target is VX; some drafts wrote the result to VY
		noBorrow := r.V[inst.Y] > r.V[inst.X]
		r.V[inst.X] = r.V[inst.Y] - r.V[inst.X]

		if noBorrow {
			r.V[0xF] = 1
		} else {
			r.V[0xF] = 0
		}

	case OpShiftLeft:
		msb := r.V[inst.X] >> 7
		r.V[inst.X] <<= 1
		r.V[0xF] = msb

	case OpLoadI:
		r.I = inst.NNN

	case OpJumpV0:
		r.PC = inst.NNN + uint16(r.V[0])

	case OpRandom:
		r.V[inst.X] = byte(in.rand.Intn(256)) & inst.NN

	case OpDraw:
		return in.draw(inst, m, r, d)

	case OpSkipKey:
		if k.Pressed(r.V[inst.X]) {
			r.PC += 2
		}

	case OpSkipNoKey:
		if !k.Pressed(r.V[inst.X]) {
			r.PC += 2
		}

	case OpLoadDelay:
		r.V[inst.X] = r.DT

	case OpWaitKey:
		if key, ok := k.FirstPressed(); ok {
			r.V[inst.X] = key
		} else {
			// block: hold PC on this instruction until a key arrives
			in.waiting = true
			in.waitReg = inst.X
			r.PC = pc
		}

	case OpSetDelay:
		r.DT = r.V[inst.X]

	case OpSetSound:
		r.ST = r.V[inst.X]

	case OpAddI:
		// no overflow flag defined for this one
		r.I += uint16(r.V[inst.X])

	case OpLoadFont:
		r.I = FontAddress(r.V[inst.X])

	case OpStoreBCD:
		return in.storeBCD(inst, m, r)

	case OpStoreRegs:
		for i := byte(0); i <= inst.X; i++ {
			if err := m.WriteByte(r.I+uint16(i), r.V[i]); err != nil {
				return err
			}
		}

	case OpLoadRegs:
		for i := byte(0); i <= inst.X; i++ {
			b, err := m.ReadByte(r.I + uint16(i))
			if err != nil {
				return err
			}
			r.V[i] = b
		}

	default:
		return &UnknownOpcodeError{Opcode: opcode, Addr: pc}
	}

	return nil
}

/// draw XORs an 8xN sprite read from memory at I onto the display at
/// (VX, VY), wrapping pixels around both screen edges. VF reports
/// whether any pixel that was on got turned off.
///
func (in *Interpreter) draw(inst Instruction, m *Memory, r *RegisterFile, d *DisplayBuffer) error {
	x := int(r.V[inst.X])
	y := int(r.V[inst.Y])

	r.V[0xF] = 0

	for row := 0; row < int(inst.N); row++ {
		sprite, err := m.ReadByte(r.I + uint16(row))
		if err != nil {
			return err
		}

		for bit := 0; bit < 8; bit++ {
			if sprite&(0x80>>bit) == 0 {
				continue
			}

			// an on pixel toggled off is a collision
			if d.TogglePixel(x+bit, y+row) {
				r.V[0xF] = 1
			}
		}
	}

	return nil
}

/// storeBCD writes the decimal digits of VX to memory at I, I+1, I+2.
///
func (in *Interpreter) storeBCD(inst Instruction, m *Memory, r *RegisterFile) error {
	v := r.V[inst.X]

	digits := [3]byte{v / 100, v / 10 % 10, v % 10}

	for i, b := range digits {
		if err := m.WriteByte(r.I+uint16(i), b); err != nil {
			return err
		}
	}

	return nil
}
