// Package config provides YAML-based game configuration, difficulty presets
// and persisted player settings.
package config

// Config contains every tunable of the simulation.
type Config struct {
	Physics    Physics          `yaml:"physics"`
	Scoring    Scoring          `yaml:"scoring"`
	Gameplay   Gameplay         `yaml:"gameplay"`
	PowerUps   PowerUps         `yaml:"powerups"`
	Speed      Speed            `yaml:"speed"`
	Portal     Portal           `yaml:"portal"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Physics defines ball and paddle response parameters.
type Physics struct {
	LaunchSpeed        float64 `yaml:"launch_speed"`          // px/tick, both axes
	LaunchDelay        int     `yaml:"launch_delay"`          // ticks before an attached ball auto-launches
	PaddleAim          float64 `yaml:"paddle_aim"`            // vx gain per px of hit offset
	MinBounceSpeed     float64 `yaml:"min_bounce_speed"`      // minimum upward speed after a paddle hit
	SpinTransfer       float64 `yaml:"spin_transfer"`         // spin per px/tick of paddle velocity
	OffsetSpin         float64 `yaml:"offset_spin"`           // spin per px of offset when the paddle is still
	MinSpinPaddleSpeed float64 `yaml:"min_spin_paddle_speed"` // paddle speed needed for a full spin discharge
	BallBallDistance   float64 `yaml:"ball_ball_distance"`
	BallBallUpSpeed    float64 `yaml:"ball_ball_up_speed"`
	Gravity            float64 `yaml:"gravity"` // added to vy per tick in gravity mode
	GravityMode        bool    `yaml:"gravity_mode"`
}

// Scoring defines point values. Penalties saturate at zero.
type Scoring struct {
	Block       int `yaml:"block"`
	PaddleHit   int `yaml:"paddle_hit"`
	PowerUp     int `yaml:"powerup"`
	LifePenalty int `yaml:"life_penalty"`
	PortalBonus int `yaml:"portal_bonus"`
}

// Gameplay defines session rules.
type Gameplay struct {
	Lives           int     `yaml:"lives"`
	MaxLives        int     `yaml:"max_lives"`
	TerminalLevel   int     `yaml:"terminal_level"` // completing it wins the campaign
	IceHealth       int     `yaml:"ice_health"`
	ExplosionRadius float64 `yaml:"explosion_radius"`
	PaddleStep      float64 `yaml:"paddle_step"` // px per relative move
}

// PowerUps defines drop and effect parameters.
type PowerUps struct {
	DropChance      float64       `yaml:"drop_chance"`
	Cooldown        int           `yaml:"cooldown"` // ticks between drops
	FallSpeed       float64       `yaml:"fall_speed"`
	ProjectileSpeed float64       `yaml:"projectile_speed"`
	LongDuration    int           `yaml:"long_duration"`
	GhostDuration   int           `yaml:"ghost_duration"`
	Weights         PowerUpWeight `yaml:"weights"`
}

// PowerUpWeight sets the relative drop weight of each kind.
type PowerUpWeight struct {
	ExtraBall  int `yaml:"extra_ball"`
	LongPaddle int `yaml:"long_paddle"`
	GhostBall  int `yaml:"ghost_ball"`
	RocketAmmo int `yaml:"rocket_ammo"`
}

// Speed defines the px/s thresholds of the speed tracker.
type Speed struct {
	TrailShort      float64 `yaml:"trail_short"`
	TrailLong       float64 `yaml:"trail_long"`
	RecordBurstMin  float64 `yaml:"record_burst_min"`
	PortalThreshold float64 `yaml:"portal_threshold"`
}

// Portal defines the end-of-level portal sequence.
type Portal struct {
	OrbitRadius float64 `yaml:"orbit_radius"`
	OrbitRate   float64 `yaml:"orbit_rate"` // radians per tick
	PullSpeed   float64 `yaml:"pull_speed"`
	HoldEnd     int     `yaml:"hold_end"`
	CollapseEnd int     `yaml:"collapse_end"`
	FlashEnd    int     `yaml:"flash_end"`
	FadeEnd     int     `yaml:"fade_end"`
}

// DifficultyConfig defines how the game hardens as levels advance.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives difficulty upward.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score" or "none"
	MaxAt int    `yaml:"max_at"` // level or score at which difficulty peaks
}

// ScalingConfig defines how parameters change at full difficulty.
type ScalingConfig struct {
	LaunchSpeedMultiplier float64 `yaml:"launch_speed_multiplier"` // extra launch speed fraction
	DropChanceReduction   float64 `yaml:"drop_chance_reduction"`   // fraction of drop chance removed
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset converts a flag value to a preset, reporting unknown names.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return DifficultyNormal, true
	default:
		return DifficultyNormal, false
	}
}
