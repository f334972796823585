package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Tempo of the background track.
const (
	BPM  = 140.0
	beat = 60 / BPM // Seconds per beat
)

type waveform int

const (
	waveSquare waveform = iota
	waveSaw
)

// at returns the waveform value for a phase in [0, 1).
func (w waveform) at(phase float64) float64 {
	switch w {
	case waveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case waveSaw:
		return 2*phase - 1
	}
	return 0
}

// voice is one repeating part of the track. A note starts every `every`
// seconds, cycling through steps; each step may sound several frequencies.
type voice struct {
	wave   waveform
	steps  [][]float64
	every  float64 // Seconds between note starts
	length float64 // Seconds each note sounds
	gain   float64 // Per frequency
	ramp   float64 // Linear fade in and out, seconds
}

func (v voice) sample(t float64) float64 {
	step := math.Floor(t / v.every)
	offset := t - step*v.every
	if offset >= v.length {
		return 0
	}

	env := math.Min(1, math.Min(offset/v.ramp, (v.length-offset)/v.ramp))
	if env <= 0 {
		return 0
	}

	freqs := v.steps[int(step)%len(v.steps)]
	var sum float64
	for _, f := range freqs {
		_, phase := math.Modf(f * offset)
		sum += v.wave.at(phase)
	}
	return sum * v.gain * env
}

var (
	bass = voice{
		wave:   waveSquare,
		steps:  [][]float64{{55}, {55}, {73.42}, {55}, {73.42}, {55}},
		every:  beat / 2,
		length: beat * 0.4,
		gain:   0.25,
		ramp:   0.01,
	}
	lead = voice{
		wave:   waveSquare,
		steps:  [][]float64{{220}, {261.63}, {293.66}, {329.63}, {349.23}, {392}, {440}, {493.88}},
		every:  beat / 4,
		length: beat / 4 * 0.8,
		gain:   0.2,
		ramp:   0.005,
	}
	chords = voice{
		wave: waveSaw,
		steps: [][]float64{
			{220, 261.63, 329.63},
			{246.94, 293.66, 369.99},
			{196, 246.94, 293.66},
			{220, 261.63, 329.63},
		},
		every:  beat * 2,
		length: beat * 2,
		gain:   0.12,
		ramp:   0.05,
	}
)

// Track is the endless procedural background music: a driving square bass,
// a fast square arpeggio and sawtooth chords.
type Track struct {
	sr  beep.SampleRate
	pos int
}

// NewTrack creates a track at sample rate sr, positioned at its start.
func NewTrack(sr beep.SampleRate) *Track {
	return &Track{sr: sr}
}

// Sample returns the mono value of the track t seconds from its start.
func Sample(t float64) float64 {
	return bass.sample(t) + lead.sample(t) + chords.sample(t)
}

func (tr *Track) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := Sample(float64(tr.pos) / float64(tr.sr))
		samples[i][0] = v
		samples[i][1] = v
		tr.pos++
	}
	return len(samples), true
}

func (tr *Track) Err() error {
	return nil
}
