package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue durations
const (
	SnapSoundDuration   = 60 * time.Millisecond
	RejectSoundDuration = 150 * time.Millisecond
	SolvedSoundDuration = 900 * time.Millisecond
)

// Cue tones
const (
	SnapFrequency   = 660.0
	RejectFrequency = 120.0
)

// SolvedArpeggio is the note sequence of the solved chime in Hz
var SolvedArpeggio = []float64{523.25, 659.25, 783.99, 1046.50}
