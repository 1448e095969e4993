package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Amplitudes stay well below clipping since cues can overlap in the mixer
const (
	toneAmplitude     = 0.25
	toneDecayRate     = 40.0
	buzzAmplitude     = 0.2
	buzzAttackSeconds = 0.02
	chimeAmplitude    = 0.18
	chimeDecayRate    = 6.0
)

// ToneGenerator generates a sine ping with exponential decay
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewToneGenerator creates a tone generator
func NewToneGenerator(sr beep.SampleRate, freq float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := toneAmplitude * math.Exp(-t*toneDecayRate) * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Odd-ish harmonics for a harsh edge
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/buzzAttackSeconds, 1.0)
		sample *= envelope * buzzAmplitude

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// ArpeggioGenerator plays notes in sequence, each with its own decay, then ends
type ArpeggioGenerator struct {
	sr      beep.SampleRate
	notes   []float64
	perNote int
	pos     int
}

// NewArpeggioGenerator spreads notes evenly over total
func NewArpeggioGenerator(sr beep.SampleRate, notes []float64, total time.Duration) *ArpeggioGenerator {
	perNote := 1
	if len(notes) > 0 {
		perNote = max(sr.N(total)/len(notes), 1)
	}
	return &ArpeggioGenerator{sr: sr, notes: notes, perNote: perNote}
}

// Len returns the total number of samples
func (g *ArpeggioGenerator) Len() int {
	return g.perNote * len(g.notes)
}

func (g *ArpeggioGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	total := g.Len()
	if g.pos >= total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= total {
			return i, true
		}
		note := g.notes[g.pos/g.perNote]
		t := float64(g.pos%g.perNote) / float64(g.sr)
		sample := chimeAmplitude * math.Exp(-t*chimeDecayRate) * math.Sin(2*math.Pi*note*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ArpeggioGenerator) Err() error {
	return nil
}
