package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings are the player preferences persisted between runs. The simulation
// only reads GravityMode; the rest belongs to the host.
type Settings struct {
	WindowWidth  int  `yaml:"window_width"`
	WindowHeight int  `yaml:"window_height"`
	Fullscreen   bool `yaml:"fullscreen"`
	MusicVolume  int  `yaml:"music_volume"` // 0..128
	SfxVolume    int  `yaml:"sfx_volume"`   // 0..128
	MusicMuted   bool `yaml:"music_muted"`
	SfxMuted     bool `yaml:"sfx_muted"`
	GravityMode  bool `yaml:"gravity_mode"`
}

// MaxVolume is the upper bound of the volume settings.
const MaxVolume = 128

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		WindowWidth:  1280,
		WindowHeight: 720,
		MusicVolume:  64,
		SfxVolume:    64,
	}
}

// SettingsPath returns ~/.arkanoo/settings.yaml, or empty if home is unavailable.
func SettingsPath() string {
	return userPath("settings.yaml")
}

// LoadSettings reads settings from path. A missing file yields defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	s.normalize()
	return s, nil
}

// SaveSettings writes settings to path, creating the directory if needed.
func SaveSettings(path string, s Settings) error {
	if path == "" {
		return errors.New("settings path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	s.normalize()
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	return nil
}

// EffectiveSfxVolume returns the sound effect volume as 0..1, honoring mute.
func (s Settings) EffectiveSfxVolume() float64 {
	if s.SfxMuted {
		return 0
	}
	return float64(s.SfxVolume) / MaxVolume
}

func (s *Settings) normalize() {
	s.MusicVolume = clampVolume(s.MusicVolume)
	s.SfxVolume = clampVolume(s.SfxVolume)
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		d := DefaultSettings()
		s.WindowWidth, s.WindowHeight = d.WindowWidth, d.WindowHeight
	}
}

func clampVolume(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxVolume {
		return MaxVolume
	}
	return v
}
