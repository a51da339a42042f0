package config

import (
	_ "embed"
)

//go:embed defaults/arkanoo.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration. It mirrors the embedded
// defaults/arkanoo.yaml and is used when that file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Physics: Physics{
			LaunchSpeed:        4.0,
			LaunchDelay:        30,
			PaddleAim:          0.1,
			MinBounceSpeed:     3.0,
			SpinTransfer:       0.3,
			OffsetSpin:         0.01,
			MinSpinPaddleSpeed: 3.0,
			BallBallDistance:   12.0,
			BallBallUpSpeed:    3.0,
			Gravity:            0.12,
			GravityMode:        false,
		},
		Scoring: Scoring{
			Block:       10,
			PaddleHit:   1,
			PowerUp:     5,
			LifePenalty: 20,
			PortalBonus: 500,
		},
		Gameplay: Gameplay{
			Lives:           3,
			MaxLives:        3,
			TerminalLevel:   9,
			IceHealth:       2,
			ExplosionRadius: 100.0,
			PaddleStep:      18.0,
		},
		PowerUps: PowerUps{
			DropChance:      0.15,
			Cooldown:        180,
			FallSpeed:       2.0,
			ProjectileSpeed: 8.0,
			LongDuration:    300,
			GhostDuration:   600,
			Weights: PowerUpWeight{
				ExtraBall:  35,
				LongPaddle: 30,
				GhostBall:  20,
				RocketAmmo: 15,
			},
		},
		Speed: Speed{
			TrailShort:      800,
			TrailLong:       1400,
			RecordBurstMin:  800,
			PortalThreshold: 1800,
		},
		Portal: Portal{
			OrbitRadius: 80,
			OrbitRate:   0.1,
			PullSpeed:   6,
			HoldEnd:     30,
			CollapseEnd: 150,
			FlashEnd:    180,
			FadeEnd:     270,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				LaunchSpeedMultiplier: 0.5,
				DropChanceReduction:   0.4,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
