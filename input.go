package main

import (
	"github.com/veandco/go-sdl2/sdl"

	"chip8emu/chip8"
)

var (
	/// Mapping of modern keyboard to CHIP-8 keys.
	///
	KeyMap = map[sdl.Scancode]byte{
		sdl.SCANCODE_X: 0x0,
		sdl.SCANCODE_1: 0x1,
		sdl.SCANCODE_2: 0x2,
		sdl.SCANCODE_3: 0x3,
		sdl.SCANCODE_Q: 0x4,
		sdl.SCANCODE_W: 0x5,
		sdl.SCANCODE_E: 0x6,
		sdl.SCANCODE_A: 0x7,
		sdl.SCANCODE_S: 0x8,
		sdl.SCANCODE_D: 0x9,
		sdl.SCANCODE_Z: 0xA,
		sdl.SCANCODE_C: 0xB,
		sdl.SCANCODE_4: 0xC,
		sdl.SCANCODE_R: 0xD,
		sdl.SCANCODE_F: 0xE,
		sdl.SCANCODE_V: 0xF,
	}
)

/// RefreshKeys polls the keyboard and rewrites the whole keypad. It
/// runs once per cadence tick, not per instruction.
///
func RefreshKeys(keys *chip8.KeypadState) {
	state := sdl.GetKeyboardState()

	for scancode, key := range KeyMap {
		keys.SetPressed(key, state[scancode] != 0)
	}
}

/// ProcessEvents drains the SDL event queue. It returns false once
/// the window closes or the user quits.
///
func ProcessEvents() bool {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN {
				break
			}

			switch ev.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				return false
			case sdl.SCANCODE_BACKSPACE:
				VM.Reset()
			}
		}
	}

	return true
}
