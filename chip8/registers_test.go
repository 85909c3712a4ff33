package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestRegisterFileReset(t *testing.T) {
	r := NewRegisterFile()

	r.V[5] = 42
	r.I = 0x123
	r.PC = 0x456
	r.DT = 9
	assert.NoError(t, r.Push(0x234))

	r.Reset()

	assert.Equal(t, uint16(ProgramStart), r.PC)
	assert.Equal(t, byte(0), r.V[5])
	assert.Equal(t, uint16(0), r.I)
	assert.Equal(t, byte(0), r.SP)
	assert.Equal(t, byte(0), r.DT)
}

func TestStackRoundTrip(t *testing.T) {
	r := NewRegisterFile()

	// return addresses are full 16-bit values, never truncated
	assert.NoError(t, r.Push(0x0202))
	assert.NoError(t, r.Push(0x0FFE))

	addr, err := r.Pop()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0FFE), addr)

	addr, err = r.Pop()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0202), addr)
}

func TestStackOverflow(t *testing.T) {
	r := NewRegisterFile()

	for i := 0; i < StackDepth; i++ {
		assert.NoError(t, r.Push(uint16(0x200+i)))
	}

	err := r.Push(0x300)

	var fault *StackFaultError
	assert.True(t, errors.As(err, &fault))
	assert.True(t, fault.Overflow)
}

func TestStackUnderflow(t *testing.T) {
	r := NewRegisterFile()

	_, err := r.Pop()

	var fault *StackFaultError
	assert.True(t, errors.As(err, &fault))
	assert.False(t, fault.Overflow)
}

func TestTickTimers(t *testing.T) {
	r := NewRegisterFile()

	r.DT = 2
	r.ST = 1

	r.TickTimers()
	assert.Equal(t, byte(1), r.DT)
	assert.Equal(t, byte(0), r.ST)

	// timers hold at zero
	r.TickTimers()
	assert.Equal(t, byte(0), r.DT)
	assert.Equal(t, byte(0), r.ST)
}
