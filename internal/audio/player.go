// Package audio plays the game's sound cues through the system speaker.
package audio

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/monkey-arcade/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// SoundSource resolves a cue to a file on disk.
type SoundSource interface {
	SoundPath(cue core.Cue) (string, bool)
}

// Player is a core.AudioSink backed by beep. Cues without a decodable file
// fall back to a short synthesized tone. Playback never blocks the caller and
// failures are only logged.
type Player struct {
	mu          sync.Mutex
	buffers     map[core.Cue]*beep.Buffer
	mixer       *beep.Mixer
	logger      *log.Logger
	initialized bool
}

// NewPlayer creates a player. Call Load and Initialize before Play has any effect.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		buffers: make(map[core.Cue]*beep.Buffer),
		mixer:   &beep.Mixer{},
		logger:  logger.WithPrefix("audio"),
	}
}

// Load decodes the WAV file of every cue src knows about.
func (p *Player) Load(src SoundSource) {
	for _, cue := range []core.Cue{core.CueJump, core.CueCollision} {
		path, ok := src.SoundPath(cue)
		if !ok {
			continue
		}
		buf, err := decodeFile(path)
		if err != nil {
			p.logger.Debug("sound unavailable, using tone", "cue", cue, "error", err)
			continue
		}
		p.mu.Lock()
		p.buffers[cue] = buf
		p.mu.Unlock()
	}
}

func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: read %s: %w", path, err)
	}
	return buf, nil
}

// Initialize opens the speaker. Calling it again is a no-op.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play implements core.AudioSink.
func (p *Player) Play(cue core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := p.streamFor(cue)
	if err != nil {
		p.logger.Debug("cannot play cue", "cue", cue, "error", err)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// streamFor returns a fresh, finite streamer for cue. Callers hold p.mu.
func (p *Player) streamFor(cue core.Cue) (beep.Streamer, error) {
	if buf, ok := p.buffers[cue]; ok {
		return buf.Streamer(0, buf.Len()), nil
	}

	freq, dur := 660.0, 80*time.Millisecond
	if cue == core.CueCollision {
		freq, dur = 110.0, 250*time.Millisecond
	}
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(dur), &effects.Volume{Streamer: tone, Base: 2, Volume: -2}), nil
}
