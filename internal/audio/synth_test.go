package audio

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/arkanoo/internal/core"
)

// drain streams s to the end and returns the number of samples and the peak.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := range n {
			peak = max(peak, buf[i][0], -buf[i][0])
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

func TestOscillatorWaves(t *testing.T) {
	tests := []struct {
		name string
		wave Wave
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			osc := NewOscillator(440, 0, 10*time.Millisecond, tc.wave, sampleRate)
			n, peak := drain(t, osc)

			if want := sampleRate.N(10 * time.Millisecond); n != want {
				t.Errorf("Expected %d samples, got %d", want, n)
			}
			if peak > 1 {
				t.Errorf("Sample out of range: %f", peak)
			}
			if osc.Err() != nil {
				t.Errorf("Expected no error, got: %v", osc.Err())
			}
		})
	}
}

func TestOscillatorSquareValues(t *testing.T) {
	osc := NewOscillator(220, 0, 5*time.Millisecond, WaveSquare, sampleRate)
	buf := make([][2]float64, 100)
	n, _ := osc.Stream(buf)
	for i := range n {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("Square sample %d should be ±1, got %f", i, v)
		}
	}
}

func TestDecayFadesOut(t *testing.T) {
	s := NewDecay(NewOscillator(0, 0, 200*time.Millisecond, WaveSquare, sampleRate), 0, 20, sampleRate)
	buf := make([][2]float64, sampleRate.N(200*time.Millisecond))
	n, _ := s.Stream(buf)

	first, last := buf[0][0], buf[n-1][0]
	if first <= last {
		t.Errorf("Decay should fade: first=%f last=%f", first, last)
	}
	if last > 0.05 {
		t.Errorf("Tail should be nearly silent, got %f", last)
	}
}

func TestCueForEverySound(t *testing.T) {
	sounds := []core.Sound{
		core.SoundBounce,
		core.SoundLifeLost,
		core.SoundFire,
		core.SoundGlassBreak,
		core.SoundExplosion,
	}

	for _, snd := range sounds {
		t.Run(snd.String(), func(t *testing.T) {
			s := Cue(snd, 1)
			if s == nil {
				t.Fatal("Expected a streamer")
			}
			n, peak := drain(t, s)
			if n == 0 || peak == 0 {
				t.Errorf("Cue should be audible: %d samples, peak %f", n, peak)
			}
		})
	}

	if Cue(core.Sound(200), 1) != nil {
		t.Error("Unknown sound should have no cue")
	}
}

func TestCueSilentAtZeroVolume(t *testing.T) {
	_, peak := drain(t, Cue(core.SoundBounce, 0))
	if peak != 0 {
		t.Errorf("Zero volume should be silent, peak %f", peak)
	}
}

func TestPlayerWithoutDevice(t *testing.T) {
	p := NewPlayer(0.5, false, log.New(io.Discard))

	// Never initialized: all calls are no-ops
	p.Play([]core.Sound{core.SoundBounce, core.SoundExplosion})
	p.SetVolume(2, true)
	if p.volume != 1 || !p.muted {
		t.Errorf("SetVolume should clamp and store mute, got %f/%v", p.volume, p.muted)
	}
	p.Close()
	if p.mixer.Len() != 0 {
		t.Errorf("Nothing should be queued without a device, got %d", p.mixer.Len())
	}
}
