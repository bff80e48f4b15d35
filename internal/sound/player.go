// Package sound plays the session-complete chime.
package sound

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/rs/zerolog"

	"focusflow/internal/models"
)

const defaultSampleRate beep.SampleRate = 44100

var ErrDisabled = errors.New("sound disabled")

type Options struct {
	Enabled bool
	// File is an optional WAV file played instead of the built-in chime.
	File string
	// Volume is passed to effects.Volume with base 2; 0 keeps the source
	// level, -1 halves it.
	Volume float64
}

// Player loads its sound on first use and degrades to silence when the
// audio device or the file is unavailable.
type Player struct {
	logger zerolog.Logger
	opts   Options

	once   sync.Once
	buffer *beep.Buffer
	err    error

	initSpeaker func(sr beep.SampleRate, bufferSize int) error
	play        func(s ...beep.Streamer)
}

func NewPlayer(logger zerolog.Logger, opts Options) *Player {
	return &Player{
		logger:      logger,
		opts:        opts,
		initSpeaker: speaker.Init,
		play:        speaker.Play,
	}
}

// SessionComplete plays the chime without blocking the caller.
func (p *Player) SessionComplete(models.CompletedSession) {
	go func() {
		if err := p.Chime(); err != nil && !errors.Is(err, ErrDisabled) {
			p.logger.Warn().
				Err(err).
				Msg("failed to play chime")
		}
	}()
}

// Chime queues the sound on the speaker.
func (p *Player) Chime() error {
	if !p.opts.Enabled {
		return ErrDisabled
	}
	p.once.Do(func() {
		p.buffer, p.err = p.load()
		if p.err != nil {
			return
		}
		format := p.buffer.Format()
		p.err = p.initSpeaker(format.SampleRate, format.SampleRate.N(time.Second/10))
	})
	if p.err != nil {
		return p.err
	}

	p.play(&effects.Volume{
		Streamer: p.buffer.Streamer(0, p.buffer.Len()),
		Base:     2,
		Volume:   p.opts.Volume,
		Silent:   false,
	})
	return nil
}

func (p *Player) load() (*beep.Buffer, error) {
	if p.opts.File == "" {
		format := beep.Format{SampleRate: defaultSampleRate, NumChannels: 2, Precision: 2}
		buffer := beep.NewBuffer(format)
		buffer.Append(chime(defaultSampleRate))
		return buffer, nil
	}

	f, err := os.Open(p.opts.File)
	if err != nil {
		return nil, fmt.Errorf("open sound file: %w", err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sound file: %w", err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	p.logger.Debug().
		Str("file", p.opts.File).
		Int("samples", buffer.Len()).
		Msg("loaded chime")
	return buffer, nil
}
