package main

import (
	"github.com/veandco/go-sdl2/sdl"

	"chip8emu/chip8"
)

var (
	Screen *sdl.Texture
)

/// InitScreen creates the render target for the CHIP-8 display.
///
func InitScreen() {
	var err error

	// create a render target for the display
	Screen, err = Renderer.CreateTexture(sdl.PIXELFORMAT_RGB888, sdl.TEXTUREACCESS_TARGET, chip8.DisplayWidth, chip8.DisplayHeight)
	if err != nil {
		panic(err)
	}
}

/// Present redraws the window from the current display snapshot.
///
func Present() {
	RefreshScreen()
	CopyScreen()

	// show the new frame
	Renderer.Present()
}

/// RefreshScreen with the CHIP-8 display buffer.
///
func RefreshScreen() {
	if err := Renderer.SetRenderTarget(Screen); err != nil {
		panic(err)
	}

	// the background color for the screen
	Renderer.SetDrawColor(143, 145, 133, 255)
	Renderer.Clear()

	// set the pixel color
	Renderer.SetDrawColor(17, 29, 43, 255)

	// draw all the on pixels
	pixels := VM.Display.Snapshot()

	for y := 0; y < chip8.DisplayHeight; y++ {
		for x := 0; x < chip8.DisplayWidth; x++ {
			if pixels[y][x] {
				Renderer.DrawPoint(int32(x), int32(y))
			}
		}
	}

	// restore the render target
	Renderer.SetRenderTarget(nil)
}

/// CopyScreen stretches the render target over the whole window.
///
func CopyScreen() {
	src := sdl.Rect{
		W: chip8.DisplayWidth,
		H: chip8.DisplayHeight,
	}

	dst := sdl.Rect{
		W: chip8.DisplayWidth * WindowScale,
		H: chip8.DisplayHeight * WindowScale,
	}

	Renderer.Copy(Screen, &src, &dst)
}
