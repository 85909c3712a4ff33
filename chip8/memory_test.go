package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNewMemorySeedsFont(t *testing.T) {
	m := NewMemory()

	// the zero glyph starts at address 0
	b, err := m.ReadByte(0)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xF0), b)

	// the F glyph sits at 15*5
	addr := FontAddress(0xF)
	assert.Equal(t, uint16(75), addr)

	glyph := []byte{0xF0, 0x80, 0xF0, 0x80, 0x80}
	for i, want := range glyph {
		b, err := m.ReadByte(addr + uint16(i))
		assert.NoError(t, err)
		assert.Equal(t, want, b)
	}
}

func TestMemoryReadWrite(t *testing.T) {
	m := NewMemory()

	assert.NoError(t, m.WriteByte(0x200, 0xAB))

	b, err := m.ReadByte(0x200)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xAB), b)
}

func TestMemoryBounds(t *testing.T) {
	m := NewMemory()

	tests := []struct {
		name string
		addr uint16
	}{
		{"first out of range", MemorySize},
		{"far out of range", 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.ReadByte(tt.addr)

			var fault *MemoryFaultError
			assert.True(t, errors.As(err, &fault))
			assert.Equal(t, tt.addr, fault.Addr)

			err = m.WriteByte(tt.addr, 1)
			assert.True(t, errors.As(err, &fault))
		})
	}
}

func TestMemoryLoad(t *testing.T) {
	m := NewMemory()

	assert.NoError(t, m.Load(ProgramStart, []byte{1, 2, 3}))

	b, err := m.ReadByte(ProgramStart + 2)
	assert.NoError(t, err)
	assert.Equal(t, byte(3), b)

	// a sequence reaching past the end of memory is rejected
	big := make([]byte, MemorySize-ProgramStart+1)
	err = m.Load(ProgramStart, big)

	var fault *MemoryFaultError
	assert.True(t, errors.As(err, &fault))
}

func TestMemoryResetKeepsFont(t *testing.T) {
	m := NewMemory()

	assert.NoError(t, m.WriteByte(0x300, 0xFF))
	m.Reset()

	b, err := m.ReadByte(0x300)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), b)

	b, err = m.ReadByte(0)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xF0), b)
}
