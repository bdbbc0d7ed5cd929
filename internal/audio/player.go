// Package audio plays game sounds through gopxl/beep. Sample files are
// decoded once and cached; missing files fall back to synthesized effects.
package audio

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const sampleRate = beep.SampleRate(44100)

// BeepPlayer mixes sounds onto the system speaker.
type BeepPlayer struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	ready  bool
	cache  map[string]*beep.Buffer
	logger *log.Logger
}

// NewBeepPlayer creates a player. Call Init before Play.
func NewBeepPlayer(logger *log.Logger) *BeepPlayer {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &BeepPlayer{
		mixer:  &beep.Mixer{},
		cache:  make(map[string]*beep.Buffer),
		logger: logger,
	}
}

// Init opens the speaker. A failure leaves the player silent.
func (p *BeepPlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		p.logger.Warn("audio disabled", "err", err)
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Play queues a sound. It never blocks on playback.
func (p *BeepPlayer) Play(path string, volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	s := p.streamer(path, volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops every playing sound.
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.ready = false
}

// streamer returns the cached sample for path, or a synthesized effect when
// the file cannot be decoded.
func (p *BeepPlayer) streamer(path string, volume float64) beep.Streamer {
	buf, ok := p.cache[path]
	if !ok {
		var err error
		buf, err = loadBuffer(path)
		if err != nil {
			p.logger.Debug("using synthesized sound", "path", path, "err", err)
		}
		p.cache[path] = buf
	}
	if buf == nil {
		return Synthesize(EffectFor(path), volume, sampleRate)
	}
	return withVolume(buf.Streamer(0, buf.Len()), volume)
}

// loadBuffer decodes a wav file into memory at the player sample rate.
func loadBuffer(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer s.Close()

	var src beep.Streamer = s
	if format.SampleRate != sampleRate {
		src = beep.Resample(4, format.SampleRate, sampleRate, s)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	return buf, nil
}

// Play is one recorded call to RecordingPlayer.Play.
type Play struct {
	Path   string
	Volume float64
}

// RecordingPlayer records plays instead of making sound.
type RecordingPlayer struct {
	mu    sync.Mutex
	plays []Play
}

// Play records the call.
func (r *RecordingPlayer) Play(path string, volume float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plays = append(r.plays, Play{Path: path, Volume: volume})
}

// Plays returns a copy of the recorded calls.
func (r *RecordingPlayer) Plays() []Play {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Play(nil), r.plays...)
}

// Count returns how many times path was played.
func (r *RecordingPlayer) Count(path string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, p := range r.plays {
		if p.Path == path {
			n++
		}
	}
	return n
}
