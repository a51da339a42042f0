package core

// Sound is a cue tag emitted by the simulation. The platform decides how (and
// whether) to play it.
type Sound uint8

const (
	SoundBounce Sound = iota
	SoundLifeLost
	SoundFire
	SoundGlassBreak
	SoundExplosion
)

// String returns the cue name.
func (s Sound) String() string {
	switch s {
	case SoundBounce:
		return "bounce"
	case SoundLifeLost:
		return "life_lost"
	case SoundFire:
		return "fire"
	case SoundGlassBreak:
		return "glass_break"
	case SoundExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}
