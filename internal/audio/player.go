package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/arkanoo/internal/core"
)

// Player mixes sound cues onto the speaker. Until Init succeeds every call is
// a no-op, so the game runs the same with or without an audio device.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player at the given volume (0..1). logger may be nil.
func NewPlayer(volume float64, muted bool, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
		muted:  muted,
		logger: logger,
	}
}

// Init opens the audio device and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues every cue of one tick.
func (p *Player) Play(sounds []core.Sound) {
	if len(sounds) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, snd := range sounds {
		p.logger.Debug("sound cue", "sound", snd, "playing", p.initialized && !p.muted)
	}
	if !p.initialized || p.muted || p.volume <= 0 {
		return
	}

	speaker.Lock()
	for _, snd := range sounds {
		if s := Cue(snd, p.volume); s != nil {
			p.mixer.Add(s)
		}
	}
	speaker.Unlock()
}

// SetVolume changes the volume of cues played from now on.
func (p *Player) SetVolume(volume float64, muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = core.ClampF(volume, 0, 1)
	p.muted = muted
}

// Close silences everything that is still playing.
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
