// Package config provides YAML-based game configuration loading and
// difficulty management for Happy Bunny.
package config

// Collision modes select how bomb hits are detected.
const (
	CollisionAABB    = "aabb"    // Bounding-box intersection each tick
	CollisionPhysics = "physics" // Contact callback from the physics space
)

// BunnyConfig contains all configuration for the Happy Bunny game.
type BunnyConfig struct {
	Player     BunnyPlayer      `yaml:"player"`
	Bombs      BunnyBombs       `yaml:"bombs"`
	Score      BunnyScore       `yaml:"score"`
	Explosion  BunnyExplosion   `yaml:"explosion"`
	Collision  string           `yaml:"collision"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BunnyPlayer defines the bunny sprite and how it moves.
type BunnyPlayer struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	YRatio       float64 `yaml:"y_ratio"`       // Distance of the bunny center from the bottom, as a fraction of height
	TiltStep     float64 `yaml:"tilt_step"`     // Cells moved per tilt key press
	AnimInterval float64 `yaml:"anim_interval"` // Seconds per animation frame
}

// BunnyBombs defines bomb waves.
type BunnyBombs struct {
	WaveSize     int     `yaml:"wave_size"`
	WaveInterval float64 `yaml:"wave_interval"`  // Seconds between waves
	MinFallSpeed float64 `yaml:"min_fall_speed"` // Screen heights per second
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Screen heights per second
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
}

// BunnyScore defines the passive score gain.
type BunnyScore struct {
	Interval float64 `yaml:"interval"` // Seconds between score ticks
	Points   int     `yaml:"points"`
}

// BunnyExplosion defines the burst shown when a bomb is tapped.
type BunnyExplosion struct {
	Duration float64 `yaml:"duration"` // Seconds
	Radius   int     `yaml:"radius"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to fall speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Seconds removed from the wave interval at max difficulty
	MinInterval       float64 `yaml:"min_interval"`       // Floor for the wave interval
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
