// Package audio plays short sound effects through the system speaker.
// Sounds are decoded once into memory and mixed on demand, so any number
// of them can overlap.
package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const (
	sampleRate = beep.SampleRate(48000)
	bufferSize = 20 * time.Millisecond
)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Bank loads sounds from the audio/ directory of a file system and owns the
// speaker mixer they play on.
type Bank struct {
	fsys   fs.FS
	volume float64
	mute   bool

	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewBank creates a bank reading audio/<name> from fsys. Every loaded sound
// starts at volume, a linear gain where 1 is unchanged.
func NewBank(fsys fs.FS, volume float64) *Bank {
	return &Bank{
		fsys:   fsys,
		volume: volume,
		mixer:  &beep.Mixer{},
	}
}

// SetMute silences or re-enables every sound of the bank.
func (b *Bank) SetMute(mute bool) {
	b.mu.Lock()
	b.mute = mute
	b.mu.Unlock()
}

// Init opens the speaker. Until it succeeds Play is a no-op, so the game
// runs silently on machines without an audio device.
func (b *Bank) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferSize)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Close stops every playing sound.
func (b *Bank) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.initialized = false
}

// Load decodes audio/<name>. A WAV file in the bank's file system wins;
// without one the built-in effect of that name is synthesized.
func (b *Bank) Load(name string) (*Sound, error) {
	buf, err := b.decode(name)
	if errors.Is(err, fs.ErrNotExist) {
		synth, ok := synthesized[name]
		if !ok {
			return nil, fmt.Errorf("audio: %s: %w", name, err)
		}
		buf = beep.NewBuffer(format)
		buf.Append(synth())
	} else if err != nil {
		return nil, fmt.Errorf("audio: %s: %w", name, err)
	}

	return &Sound{
		bank:   b,
		name:   name,
		buf:    buf,
		volume: b.volume,
	}, nil
}

func (b *Bank) decode(name string) (*beep.Buffer, error) {
	f, err := b.fsys.Open(path.Join("audio", name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	streamer, fileFormat, err := wav.Decode(f)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	if fileFormat.SampleRate == sampleRate {
		buf.Append(streamer)
	} else {
		buf.Append(beep.Resample(4, fileFormat.SampleRate, sampleRate, streamer))
	}
	if err := streamer.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

func (b *Bank) play(s beep.Streamer) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized || b.mute {
		return false
	}
	speaker.Lock()
	b.mixer.Add(s)
	speaker.Unlock()
	return true
}

// Sound is a decoded effect that can be played repeatedly.
type Sound struct {
	bank   *Bank
	name   string
	buf    *beep.Buffer
	volume float64
}

// Name returns the name the sound was loaded under.
func (s *Sound) Name() string {
	return s.name
}

// Duration returns the length of the sound.
func (s *Sound) Duration() time.Duration {
	return sampleRate.D(s.buf.Len())
}

// Volume returns the linear gain of the sound.
func (s *Sound) Volume() float64 {
	return s.volume
}

// Play starts the sound from the beginning on top of whatever is playing.
func (s *Sound) Play() {
	s.bank.play(withVolume(s.buf.Streamer(0, s.buf.Len()), s.volume))
}

// withVolume wraps s with a linear gain. effects.Volume works in powers of
// Base, and log2(0) is -Inf, so zero maps to Silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
