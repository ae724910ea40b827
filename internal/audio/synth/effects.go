// Package synth generates every game sound procedurally on beep streamers.
// It does not touch the speaker, so it builds and tests without an audio device.
package synth

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	SampleRate = beep.SampleRate(44100)

	hitDuration  = 90 * time.Millisecond
	blipDuration = 60 * time.Millisecond
	noteDuration = 220 * time.Millisecond
	beatDuration = 500 * time.Millisecond // 120 BPM
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := waveValue(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func waveValue(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope creates a simplified attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// NewVolume scales a stream linearly. math.Log2(0) is -Inf, so 0 volume is handled as silence
func NewVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateHitSound — глухой шлепок мухобойки: шум плюс низкий тон.
func CreateHitSound(volume float64) beep.Streamer {
	noise := NewEnvelope(NewOscillator(0, hitDuration, WaveNoise, SampleRate), hitDuration, 2*time.Millisecond, 70*time.Millisecond, SampleRate)
	thump := NewEnvelope(NewOscillator(90, hitDuration, WaveSine, SampleRate), hitDuration, 2*time.Millisecond, 80*time.Millisecond, SampleRate)
	return NewVolume(beep.Mix(NewVolume(noise, 0.35), NewVolume(thump, 0.55)), volume)
}

// CreateBlipSound — короткий сигнал подбора опыта.
func CreateBlipSound(volume float64) beep.Streamer {
	osc := NewOscillator(1320, blipDuration, WaveSine, SampleRate)
	return NewVolume(NewEnvelope(osc, blipDuration, 5*time.Millisecond, 40*time.Millisecond, SampleRate), volume)
}

// CreateLevelUpSound — два восходящих тона.
func CreateLevelUpSound(volume float64) beep.Streamer {
	n1 := NewEnvelope(NewOscillator(659.25, blipDuration*2, WaveSquare, SampleRate), blipDuration*2, 5*time.Millisecond, 60*time.Millisecond, SampleRate)
	n2 := NewEnvelope(NewOscillator(987.77, blipDuration*3, WaveSquare, SampleRate), blipDuration*3, 5*time.Millisecond, 120*time.Millisecond, SampleRate)
	return NewVolume(beep.Seq(n1, n2), volume*0.5)
}

// CreateGameOverJingle — нисходящая фраза на поражение.
func CreateGameOverJingle(volume float64) beep.Streamer {
	notes := []float64{392.00, 329.63, 261.63, 196.00}
	parts := make([]beep.Streamer, 0, len(notes))
	for i, freq := range notes {
		d := noteDuration
		if i == len(notes)-1 {
			d = noteDuration * 3
		}
		osc := NewOscillator(freq, d, WaveSquare, SampleRate)
		parts = append(parts, NewEnvelope(osc, d, 10*time.Millisecond, d/2, SampleRate))
	}
	return NewVolume(beep.Seq(parts...), volume*0.5)
}

// MusicGenerator — бесконечный фоновый бит: бочка на каждую долю и басовое арпеджио.
type MusicGenerator struct {
	sr       beep.SampleRate
	pos      int
	beatLen  int
	kickLen  int
	bassline []float64
}

// NewMusicGenerator creates the in-game loop generator
func NewMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	return &MusicGenerator{
		sr:       sr,
		beatLen:  sr.N(beatDuration),
		kickLen:  sr.N(90 * time.Millisecond),
		bassline: []float64{110.00, 130.81, 146.83, 98.00},
	}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beat := g.pos / g.beatLen
		beatPos := g.pos % g.beatLen
		t := float64(beatPos) / float64(g.sr)

		kick := 0.0
		if beatPos < g.kickLen {
			env := 1.0 - float64(beatPos)/float64(g.kickLen)
			kick = 0.45 * env * math.Sin(2*math.Pi*60*(1+env)*t)
		}

		freq := g.bassline[(beat/2)%len(g.bassline)]
		bassEnv := math.Exp(-t * 3)
		bass := 0.18 * bassEnv * waveValue(WaveSaw, math.Mod(freq*t, 1))

		sample := kick + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}
