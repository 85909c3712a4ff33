package main

import (
	"github.com/veandco/go-sdl2/sdl"
)

const (
	/// ToneFreq is the pitch of the beep in Hz.
	///
	ToneFreq = 440

	/// SampleRate of the audio device.
	///
	SampleRate = 48000

	/// TickSamples is one 60 Hz cadence tick worth of samples.
	///
	TickSamples = SampleRate / 60
)

var (
	/// The opened audio device.
	///
	Audio sdl.AudioDeviceID

	/// One cadence tick of square wave, queued while the sound
	/// timer is running.
	///
	Tone []byte
)

/// InitAudio opens an audio device and builds the tone buffer.
///
func InitAudio() {
	want := &sdl.AudioSpec{
		Freq:     SampleRate,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}

	var have sdl.AudioSpec

	// open the device or run silent
	id, err := sdl.OpenAudioDevice("", false, want, &have, 0)
	if err != nil {
		return
	}

	Audio = id

	// build one tick of square wave
	Tone = make([]byte, TickSamples)
	half := SampleRate / ToneFreq / 2

	for i := range Tone {
		if (i/half)%2 == 0 {
			Tone[i] = have.Silence + 0x20
		} else {
			Tone[i] = have.Silence - 0x20
		}
	}

	// unpause; silence plays until something is queued
	sdl.PauseAudioDevice(Audio, false)
}

/// GateAudio queues tone while the sound timer is nonzero and cuts
/// it off when the timer hits zero. Called once per cadence tick.
///
func GateAudio(st byte) {
	if Audio == 0 {
		return
	}

	if st == 0 {
		sdl.ClearQueuedAudio(Audio)
		return
	}

	// keep about two ticks of tone buffered
	if sdl.GetQueuedAudioSize(Audio) < TickSamples*2 {
		sdl.QueueAudio(Audio, Tone)
	}
}
