package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBunny loads Happy Bunny configuration.
// Search order: customPath -> ~/.bunny/configs/bunny.yaml -> ./configs/bunny.yaml -> embedded default
func LoadBunny(customPath string) (BunnyConfig, error) {
	// Start from defaults so partial files only override what they set
	cfg := DefaultBunnyConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("bunny.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultBunnyConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "bunny.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultBunnyConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBunnyYAML, &cfg); err != nil {
		return DefaultBunnyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable game.
func (c BunnyConfig) Validate() error {
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("config: player size must be positive, got %dx%d", c.Player.Width, c.Player.Height)
	}
	if c.Player.YRatio <= 0 || c.Player.YRatio >= 1 {
		return fmt.Errorf("config: player y_ratio must be in (0, 1), got %f", c.Player.YRatio)
	}
	if c.Bombs.WaveSize < 0 {
		return fmt.Errorf("config: bombs wave_size must not be negative, got %d", c.Bombs.WaveSize)
	}
	if c.Bombs.WaveInterval <= 0 {
		return fmt.Errorf("config: bombs wave_interval must be positive, got %f", c.Bombs.WaveInterval)
	}
	if c.Bombs.MinFallSpeed <= 0 || c.Bombs.MaxFallSpeed < c.Bombs.MinFallSpeed {
		return fmt.Errorf("config: bombs fall speed range [%f, %f] is invalid",
			c.Bombs.MinFallSpeed, c.Bombs.MaxFallSpeed)
	}
	if c.Score.Interval <= 0 {
		return fmt.Errorf("config: score interval must be positive, got %f", c.Score.Interval)
	}
	switch c.Collision {
	case CollisionAABB, CollisionPhysics:
	default:
		return fmt.Errorf("config: unknown collision mode %q", c.Collision)
	}
	switch c.Difficulty.Progression.Type {
	case ProgressByScore, ProgressByTime, ProgressNone:
	default:
		return fmt.Errorf("config: unknown difficulty progression %q", c.Difficulty.Progression.Type)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bunny", "configs", filename)
}

// ApplyBunnyPreset modifies the config based on a difficulty preset.
func ApplyBunnyPreset(cfg *BunnyConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust waves based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Bombs.WaveSize = 2
	case DifficultyHard:
		cfg.Bombs.WaveSize = 4
		cfg.Bombs.MaxFallSpeed *= 1.25
	}
}
