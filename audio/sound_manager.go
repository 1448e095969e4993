// Package audio plays the short puzzle cues through a beep mixer
// Every operation is a no-op until Initialize succeeds, so the game runs without an audio device
package audio

import (
	"log/slog"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ring-tower/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	solved      *beep.Ctrl
	initialized bool
	muted       bool
	logger      *slog.Logger
}

// NewSoundManager creates a new sound manager
func NewSoundManager(logger *slog.Logger) *SoundManager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Info("audio initialized", "sample_rate", int(sampleRate))
	return nil
}

// Cleanup stops all sounds
// beep has no speaker Close, clearing the mixer silences the device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	if sm.solved != nil {
		sm.solved.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()
	sm.solved = nil
	sm.initialized = false
}

// Initialized reports whether cues reach a device
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetMuted silences cues without releasing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// PlaySnap plays the short click of a ring settling on a pole
func (sm *SoundManager) PlaySnap() {
	sm.play(beep.Take(sampleRate.N(parameter.SnapSoundDuration), NewToneGenerator(sampleRate, parameter.SnapFrequency)))
}

// PlayReject plays a low buzz for an illegal drop
func (sm *SoundManager) PlayReject() {
	sm.play(beep.Take(sampleRate.N(parameter.RejectSoundDuration), NewBuzzGenerator(sampleRate, parameter.RejectFrequency)))
}

// PlaySolved plays the rising chime, a running chime is not restarted
func (sm *SoundManager) PlaySolved() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	if sm.solved != nil && !sm.solved.Paused {
		return
	}

	gen := NewArpeggioGenerator(sampleRate, parameter.SolvedArpeggio, parameter.SolvedSoundDuration)
	ctrl := &beep.Ctrl{Streamer: beep.Seq(gen, beep.Callback(sm.solvedDone)), Paused: false}
	sm.solved = ctrl
	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// solvedDone runs on the speaker goroutine once the chime ends
func (sm *SoundManager) solvedDone() {
	go func() {
		sm.mu.Lock()
		sm.solved = nil
		sm.mu.Unlock()
	}()
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
