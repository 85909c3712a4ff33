package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNewMachineBootState(t *testing.T) {
	vm := NewMachine()

	assert.Equal(t, uint16(ProgramStart), vm.Registers.PC)
	assert.Equal(t, byte(0), vm.Registers.SP)
	assert.False(t, vm.Interp.Waiting())

	// font seeded, program space empty
	b, err := vm.Memory.ReadByte(0)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xF0), b)

	b, err = vm.Memory.ReadByte(ProgramStart)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), b)
}

func TestLoadROM(t *testing.T) {
	vm := NewMachine()

	assert.NoError(t, vm.LoadROM([]byte{0x6A, 0x12}))
	assert.NoError(t, vm.Step())
	assert.Equal(t, byte(0x12), vm.Registers.V[0xA])
}

func TestLoadROMTooLarge(t *testing.T) {
	vm := NewMachine()

	program := make([]byte, MemorySize-ProgramStart+1)
	err := vm.LoadROM(program)

	var fault *MemoryFaultError
	assert.True(t, errors.As(err, &fault))
}

func TestMachineReset(t *testing.T) {
	vm := loadProgram(t, 0x6A12, 0xA300)

	assert.NoError(t, vm.Step())
	assert.NoError(t, vm.Step())

	vm.Display.TogglePixel(0, 0)
	vm.Keys.SetPressed(5, true)

	vm.Reset()

	assert.Equal(t, uint16(ProgramStart), vm.Registers.PC)
	assert.Equal(t, byte(0), vm.Registers.V[0xA])
	assert.Equal(t, uint16(0), vm.Registers.I)
	assert.False(t, vm.Display.Pixel(0, 0))
	assert.False(t, vm.Keys.Pressed(5))

	// the program image survives a reset
	assert.NoError(t, vm.Step())
	assert.Equal(t, byte(0x12), vm.Registers.V[0xA])
}

func TestMachineResetClearsWait(t *testing.T) {
	vm := loadProgram(t, 0xFA0A)

	assert.NoError(t, vm.Step())
	assert.True(t, vm.Interp.Waiting())

	vm.Reset()
	assert.False(t, vm.Interp.Waiting())
}
