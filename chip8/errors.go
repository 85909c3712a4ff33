package chip8

import "fmt"

/// MemoryFaultError is an access outside the 4K address space. The
/// reference machine has no fault recovery, so it ends the session.
///
type MemoryFaultError struct {
	Addr uint16
}

func (e *MemoryFaultError) Error() string {
	return fmt.Sprintf("memory fault at #%04X", e.Addr)
}

/// StackFaultError is a call past 16 nested subroutines or a return
/// with nothing on the stack. Fatal, like a memory fault.
///
type StackFaultError struct {
	Overflow bool
}

func (e *StackFaultError) Error() string {
	if e.Overflow {
		return "stack overflow"
	}

	return "stack underflow"
}

/// UnknownOpcodeError reports an instruction that decoded to nothing.
/// It is a diagnostic, not a fault: the opcode executes as a no-op and
/// the program counter has already moved past it.
///
type UnknownOpcodeError struct {
	Opcode uint16
	Addr   uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode #%04X at #%04X", e.Opcode, e.Addr)
}
