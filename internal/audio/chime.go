// Package audio plays a short tone on each rotation tick.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	SampleRate = beep.SampleRate(44100)

	toneLength = 120 * time.Millisecond
	volume     = 0.25
)

// Notes of a pentatonic scale, one per palette slot; wraps for larger palettes.
var notes = []float64{523.25, 587.33, 659.25, 783.99, 880.00, 1046.50}

// Chime plays tones on the system speaker.
type Chime struct {
	rate beep.SampleRate
}

// NewChime initialises the speaker. It fails when no audio device is
// available.
func NewChime() (*Chime, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Chime{rate: SampleRate}, nil
}

// Play starts the note for palette slot idx and returns without waiting.
func (c *Chime) Play(idx int) {
	speaker.Play(Tone(c.rate, Note(idx), toneLength))
}

// Close stops anything still playing.
func (c *Chime) Close() {
	speaker.Clear()
}

// Note returns the frequency for palette slot idx.
func Note(idx int) float64 {
	n := len(notes)
	return notes[((idx%n)+n)%n]
}

// Tone returns a sine tone of length d that fades out linearly.
func Tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := rate.N(d)
	pos := 0
	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			env := 1 - float64(pos)/float64(total)
			if env < 0 {
				env = 0
			}
			v := volume * env * math.Sin(2*math.Pi*freq*float64(pos)/float64(rate))
			samples[i] = [2]float64{v, v}
			pos++
		}
		return len(samples), true
	}))
}
