package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// synthesized holds the built-in effects used when no WAV file exists.
var synthesized = map[string]func() beep.Streamer{
	"sfx_wing.wav":  wingSound,
	"sfx_hit.wav":   hitSound,
	"sfx_point.wav": pointSound,
}

// tone is a sine at freq lasting d, faded out linearly.
func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return fade(beep.Take(sampleRate.N(d), sine), sampleRate.N(d))
}

// fade scales s from full gain at the first sample to silence at total.
func fade(s beep.Streamer, total int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			g := 1 - float64(pos)/float64(total)
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}

// chirp sweeps a sine from f0 to f1 over d.
func chirp(f0, f1 float64, d time.Duration) beep.Streamer {
	total := sampleRate.N(d)
	pos := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			t := float64(pos) / float64(total)
			freq := f0 + (f1-f0)*t
			v := math.Sin(2*math.Pi*phase) * (1 - t)
			samples[i][0] = v
			samples[i][1] = v
			phase += freq / float64(sampleRate)
			phase -= math.Floor(phase)
			pos++
		}
		return len(samples), true
	})
}

func wingSound() beep.Streamer {
	return chirp(300, 700, 90*time.Millisecond)
}

func hitSound() beep.Streamer {
	return beep.Mix(
		chirp(220, 60, 180*time.Millisecond),
		tone(90, 120*time.Millisecond),
	)
}

func pointSound() beep.Streamer {
	return beep.Seq(
		tone(988, 70*time.Millisecond),
		tone(1319, 160*time.Millisecond),
	)
}
