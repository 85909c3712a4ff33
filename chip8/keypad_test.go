package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeypad(t *testing.T) {
	k := &KeypadState{}

	assert.False(t, k.Pressed(0xA))

	k.SetPressed(0xA, true)
	assert.True(t, k.Pressed(0xA))

	k.SetPressed(0xA, false)
	assert.False(t, k.Pressed(0xA))

	// keys outside the pad are ignored
	k.SetPressed(16, true)
	assert.False(t, k.Pressed(16))
}

func TestFirstPressed(t *testing.T) {
	k := &KeypadState{}

	_, ok := k.FirstPressed()
	assert.False(t, ok)

	k.SetPressed(0xC, true)
	k.SetPressed(0x4, true)

	key, ok := k.FirstPressed()
	assert.True(t, ok)
	assert.Equal(t, byte(0x4), key)
}

func TestKeypadReset(t *testing.T) {
	k := &KeypadState{}

	k.SetPressed(0, true)
	k.SetPressed(0xF, true)
	k.Reset()

	_, ok := k.FirstPressed()
	assert.False(t, ok)
}
