package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults drifted from DefaultConfig():\n%+v\n%+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPathLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("scoring:\n  block: 25\ngameplay:\n  terminal_level: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Scoring.Block != 25 || cfg.Gameplay.TerminalLevel != 3 {
		t.Errorf("overrides not applied: block=%d terminal=%d", cfg.Scoring.Block, cfg.Gameplay.TerminalLevel)
	}
	if cfg.Scoring.LifePenalty != DefaultConfig().Scoring.LifePenalty {
		t.Errorf("unset field should keep its default, got %d", cfg.Scoring.LifePenalty)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantInitial float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.wantEnabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.wantEnabled)
			}
			if tc.wantEnabled && cfg.Difficulty.InitialLevel != tc.wantInitial {
				t.Errorf("InitialLevel = %f, expected %f", cfg.Difficulty.InitialLevel, tc.wantInitial)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("empty preset should default to normal, got %q", p)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should be rejected")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(0, 1); got != 0 {
		t.Errorf("Level at level 1 = %f, expected 0", got)
	}
	if got := dm.Level(0, 100); got != 1 {
		t.Errorf("Level past max_at = %f, expected 1", got)
	}

	base := 4.0
	if got := dm.LaunchSpeed(base, 0, 1); got != base {
		t.Errorf("LaunchSpeed at level 1 = %f, expected %f", got, base)
	}
	if got := dm.LaunchSpeed(base, 0, 100); got != base*1.5 {
		t.Errorf("LaunchSpeed at peak = %f, expected %f", got, base*1.5)
	}
	if got := dm.DropChance(0.15, 0, 100); got >= 0.15 {
		t.Errorf("DropChance should shrink at peak, got %f", got)
	}

	cfg.Enabled = false
	cfg.InitialLevel = 0.7
	fixed := NewDifficultyManager(cfg)
	if got := fixed.Level(0, 50); got != 0.7 {
		t.Errorf("disabled manager should stay at initial level, got %f", got)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("missing file should yield defaults, got error %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("LoadSettings() on missing file = %+v", s)
	}

	s.GravityMode = true
	s.SfxVolume = 500
	if err := SaveSettings(path, s); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	loaded, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if !loaded.GravityMode {
		t.Error("gravity mode not persisted")
	}
	if loaded.SfxVolume != MaxVolume {
		t.Errorf("volume should be clamped to %d, got %d", MaxVolume, loaded.SfxVolume)
	}
}

func TestEffectiveSfxVolume(t *testing.T) {
	s := DefaultSettings()
	if got := s.EffectiveSfxVolume(); got != 0.5 {
		t.Errorf("EffectiveSfxVolume() = %f, expected 0.5", got)
	}
	s.SfxMuted = true
	if got := s.EffectiveSfxVolume(); got != 0 {
		t.Errorf("muted volume = %f, expected 0", got)
	}
}
