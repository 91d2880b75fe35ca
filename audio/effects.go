package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/alchemy/parameter"
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

// NewOscillator creates a finite wave generator of the given duration
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

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp and a release tail within duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
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
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear volume; log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// CreateErrorSound generates a short harsh buzz for a locked panel press
func CreateErrorSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(100.0, parameter.ErrorSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.ErrorSoundDuration, parameter.ErrorSoundAttack, parameter.ErrorSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundError))
}

// sineTone is a finite generator sine, the local oscillator above Nyquist where the generator refuses
func sineTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		return NewOscillator(freq, duration, WaveSine, rate)
	}
	return beep.Take(rate.N(duration), tone)
}

// bellTone is one struck note: fundamental plus an octave overtone
func bellTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	fund := sineTone(freq, duration, rate)
	fundShaped := NewEnvelope(fund, duration, parameter.BellSoundAttack, parameter.BellSoundFundamentalRelease, rate)

	over := sineTone(freq*2, duration, rate)
	overShaped := NewEnvelope(over, duration, parameter.BellSoundAttack, parameter.BellSoundOvertoneRelease, rate)

	return beep.Mix(newVolume(fundShaped, 0.7), newVolume(overShaped, 0.3))
}

// CreateBellSound generates a rising A-major arpeggio for a discovery
func CreateBellSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// A5, C#6, E6; the last note rings out
	short := parameter.BellSoundDuration / 3
	arpeggio := beep.Seq(
		beep.Take(rate.N(parameter.BellArpeggioStep), bellTone(880.0, short, rate)),
		beep.Take(rate.N(parameter.BellArpeggioStep), bellTone(1108.73, short, rate)),
		bellTone(1318.51, parameter.BellSoundDuration, rate),
	)

	return newVolume(arpeggio, effectVolume(cfg, SoundBell))
}

// CreateWhooshSound generates a quick noise sweep for a discard
func CreateWhooshSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.WhooshSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.WhooshSoundDuration, parameter.WhooshSoundAttack, parameter.WhooshSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundWhoosh))
}

// CreateCoinSound generates a two-note chime for a combination
func CreateCoinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5 then E6
	n1 := NewOscillator(987.77, parameter.CoinSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.CoinSoundNote1Duration, parameter.CoinSoundAttack, parameter.CoinSoundNote1Release, rate)

	n2 := NewOscillator(1318.51, parameter.CoinSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.CoinSoundNote2Duration, parameter.CoinSoundAttack, parameter.CoinSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), effectVolume(cfg, SoundCoin))
}

// GetSoundEffect returns the streamer for the given type, nil when unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundError:
		return CreateErrorSound(cfg)
	case SoundBell:
		return CreateBellSound(cfg)
	case SoundWhoosh:
		return CreateWhooshSound(cfg)
	case SoundCoin:
		return CreateCoinSound(cfg)
	default:
		return nil
	}
}
