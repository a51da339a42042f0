package config

import "math"

// DifficultyManager derives launch speed and drop chance from progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty (0.0 to 1.0) for a score and level number.
func (d *DifficultyManager) Level(score, level int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "level":
		progress = float64(level-1) / maxAt
	case "score":
		progress = float64(score) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// LaunchSpeed scales the base launch speed upward with difficulty.
func (d *DifficultyManager) LaunchSpeed(base float64, score, level int) float64 {
	return base * (1.0 + d.Level(score, level)*d.cfg.Scaling.LaunchSpeedMultiplier)
}

// DropChance lowers the power-up drop chance with difficulty.
func (d *DifficultyManager) DropChance(base float64, score, level int) float64 {
	chance := base * (1.0 - d.Level(score, level)*d.cfg.Scaling.DropChanceReduction)
	return clampF(chance, 0.0, 1.0)
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
