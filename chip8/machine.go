/// Package chip8 implements the CHIP-8 virtual machine: 4K of memory,
/// sixteen 8-bit registers, a 64x32 XOR display, a 16-key pad, and an
/// interpreter for the ~35 instruction families. The package has no
/// opinion about how the display is shown, where key state comes
/// from, or how the sound timer makes noise; those collaborators talk
/// to it through snapshots and the KeypadState.
///
package chip8

/// Machine bundles one session's worth of state with an interpreter.
/// Each substructure is separately owned and usable on its own; the
/// Machine just wires them together the way the run loop wants.
///
type Machine struct {
	Memory    *Memory
	Registers *RegisterFile
	Display   *DisplayBuffer
	Keys      *KeypadState
	Interp    *Interpreter

	// rom is the pristine program image, kept so Reset can reinstall it
	rom []byte
}

/// NewMachine returns a booted machine with no program loaded.
///
func NewMachine() *Machine {
	return &Machine{
		Memory:    NewMemory(),
		Registers: NewRegisterFile(),
		Display:   &DisplayBuffer{},
		Keys:      &KeypadState{},
		Interp:    NewInterpreter(),
	}
}

/// LoadROM copies a program image into memory at the program start
/// address. It fails if the image cannot fit.
///
func (vm *Machine) LoadROM(program []byte) error {
	if err := vm.Memory.Load(ProgramStart, program); err != nil {
		return err
	}

	vm.rom = append([]byte(nil), program...)

	return nil
}

/// Reset puts the machine back in its boot state and reinstalls the
/// loaded program, if any.
///
func (vm *Machine) Reset() {
	vm.Memory.Reset()
	vm.Registers.Reset()
	vm.Display.Clear()
	vm.Keys.Reset()
	vm.Interp.Reset()

	if vm.rom != nil {
		// the image fit once, it fits again
		_ = vm.Memory.Load(ProgramStart, vm.rom)
	}
}

/// Step executes a single instruction.
///
func (vm *Machine) Step() error {
	return vm.Interp.Step(vm.Memory, vm.Registers, vm.Display, vm.Keys)
}
