package config

import (
	_ "embed"
)

//go:embed defaults/bunny.yaml
var defaultBunnyYAML []byte

// DefaultBunnyConfig returns the default Happy Bunny configuration.
func DefaultBunnyConfig() BunnyConfig {
	return BunnyConfig{
		Player: BunnyPlayer{
			Width:        3,
			Height:       2,
			YRatio:       0.23,
			TiltStep:     2.0,
			AnimInterval: 0.2,
		},
		Bombs: BunnyBombs{
			WaveSize:     3,
			WaveInterval: 8.0,
			MinFallSpeed: 0.09,
			MaxFallSpeed: 0.18,
			Width:        1,
			Height:       1,
		},
		Score: BunnyScore{
			Interval: 3.0,
			Points:   10,
		},
		Explosion: BunnyExplosion{
			Duration: 0.5,
			Radius:   2,
		},
		Collision: CollisionAABB,
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressByScore,
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 4.0,
				MinInterval:       3.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "bunny", "bunny-physics":
		return defaultBunnyYAML
	default:
		return nil
	}
}
