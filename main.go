package main

import (
	"errors"
	"log"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/veandco/go-sdl2/sdl"

	"chip8emu/chip8"
)

const (
	/// One 60 Hz cadence tick (timers, keys, video, audio) fires
	/// every this many instruction steps.
	///
	StepsPerTick = 8

	/// Window pixels per CHIP-8 pixel.
	///
	WindowScale = 8
)

var (
	/// The CHIP-8 virtual machine.
	///
	VM *chip8.Machine

	/// The SDL Window and Renderer.
	///
	Window   *sdl.Window
	Renderer *sdl.Renderer
)

func init() {
	runtime.LockOSThread()
}

func main() {
	var err error

	log.SetFlags(0)

	// ROM path from the command line, file picker otherwise
	file := ""
	if len(os.Args) > 1 {
		file = os.Args[1]
	} else if file, err = PickROM(); err != nil {
		log.Fatalln(err)
	}

	program, err := LoadROMFile(file)
	if err != nil {
		log.Fatalln(err)
	}

	// create the virtual machine and install the program
	VM = chip8.NewMachine()

	if err = VM.LoadROM(program); err != nil {
		log.Fatalln(err)
	}

	// initialize SDL or panic
	if err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		panic(err)
	}
	defer sdl.Quit()

	// create the main window and renderer or panic
	flags := sdl.WINDOW_OPENGL | sdl.WINDOWPOS_CENTERED
	w := int32(chip8.DisplayWidth * WindowScale)
	h := int32(chip8.DisplayHeight * WindowScale)

	if Window, Renderer, err = sdl.CreateWindowAndRenderer(w, h, uint32(flags)); err != nil {
		panic(err)
	}

	// set the title
	Window.SetTitle("CHIP-8")

	// initialize subsystems
	InitScreen()
	InitAudio()

	// instruction steps since the last cadence tick
	steps := 0

	// loop until window closed or user quit
	for ProcessEvents() {
		if err := VM.Step(); err != nil {
			var unknown *chip8.UnknownOpcodeError

			if errors.As(err, &unknown) {
				// treated as a no-op, keep running
				log.Println(unknown)
			} else {
				// memory and stack faults end the session
				color.Red("fatal: %v", err)
				os.Exit(1)
			}
		}

		// every 8th step is a 60 Hz tick
		if steps += 1; steps >= StepsPerTick {
			steps = 0

			VM.Registers.TickTimers()
			GateAudio(VM.Registers.ST)
			RefreshKeys(VM.Keys)
			Present()
		}

		// ~2ms per instruction puts the tick near 60 Hz
		sdl.Delay(2)
	}
}
