package chip8

/// StackDepth is the maximum number of nested subroutine calls.
///
const StackDepth = 16

/// RegisterFile holds every register of the machine: the sixteen
/// virtual registers (VF doubles as the carry/borrow/collision flag),
/// the address register I, the program counter, the call stack, and
/// the two countdown timers.
///
/// The timers are plain counters. The run loop decrements them toward
/// zero on its 60 Hz cadence, decoupled from the instruction rate.
///
type RegisterFile struct {
	V     [16]byte
	I     uint16
	PC    uint16
	SP    byte
	Stack [StackDepth]uint16
	DT    byte
	ST    byte
}

/// NewRegisterFile returns registers in the boot state.
///
func NewRegisterFile() *RegisterFile {
	r := &RegisterFile{}
	r.Reset()

	return r
}

/// Reset zeroes every register and puts the program counter back at
/// the program start address.
///
func (r *RegisterFile) Reset() {
	*r = RegisterFile{PC: ProgramStart}
}

/// Push a 16-bit return address onto the call stack. Addresses are
/// never truncated to a byte.
///
func (r *RegisterFile) Push(addr uint16) error {
	if r.SP >= StackDepth {
		return &StackFaultError{Overflow: true}
	}

	r.Stack[r.SP] = addr
	r.SP += 1

	return nil
}

/// Pop the most recent return address off the call stack.
///
func (r *RegisterFile) Pop() (uint16, error) {
	if r.SP == 0 {
		return 0, &StackFaultError{}
	}

	// pre-decrement
	r.SP -= 1

	return r.Stack[r.SP], nil
}

/// TickTimers counts the delay and sound timers down one step. They
/// hold at zero.
///
func (r *RegisterFile) TickTimers() {
	if r.DT > 0 {
		r.DT -= 1
	}

	if r.ST > 0 {
		r.ST -= 1
	}
}
