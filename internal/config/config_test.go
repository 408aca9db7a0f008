package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML BunnyConfig
	if err := yaml.Unmarshal(GetDefaultYAML("bunny"), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	def := DefaultBunnyConfig()
	if fromYAML != def {
		t.Errorf("embedded defaults differ from DefaultBunnyConfig():\n yaml=%+v\n code=%+v", fromYAML, def)
	}
	if err := def.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadBunnyCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bunny.yaml")
	content := []byte("bombs:\n  wave_size: 5\ncollision: physics\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}

	cfg, err := LoadBunny(path)
	if err != nil {
		t.Fatalf("LoadBunny() failed: %v", err)
	}
	if cfg.Bombs.WaveSize != 5 {
		t.Errorf("WaveSize = %d, expected 5", cfg.Bombs.WaveSize)
	}
	if cfg.Collision != CollisionPhysics {
		t.Errorf("Collision = %q, expected %q", cfg.Collision, CollisionPhysics)
	}
	// Fields absent from the file keep their defaults
	if cfg.Bombs.WaveInterval != 8.0 {
		t.Errorf("WaveInterval = %f, expected default 8.0", cfg.Bombs.WaveInterval)
	}
}

func TestLoadBunnyErrors(t *testing.T) {
	if _, err := LoadBunny(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("collision: teleport\n"), 0o600); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}
	if _, err := LoadBunny(path); err == nil {
		t.Error("expected validation error for unknown collision mode")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BunnyConfig)
	}{
		{"zero player width", func(c *BunnyConfig) { c.Player.Width = 0 }},
		{"y ratio out of range", func(c *BunnyConfig) { c.Player.YRatio = 1.5 }},
		{"negative wave", func(c *BunnyConfig) { c.Bombs.WaveSize = -1 }},
		{"zero wave interval", func(c *BunnyConfig) { c.Bombs.WaveInterval = 0 }},
		{"inverted speed range", func(c *BunnyConfig) { c.Bombs.MaxFallSpeed = c.Bombs.MinFallSpeed / 2 }},
		{"zero score interval", func(c *BunnyConfig) { c.Score.Interval = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBunnyConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected Validate() to fail")
			}
		})
	}
}

func TestDefaultsKeepWavesFixed(t *testing.T) {
	cfg := DefaultBunnyConfig()
	if cfg.Difficulty.Enabled {
		t.Error("difficulty ramp must be opt-in")
	}
	if cfg.Bombs.WaveSize != 3 || cfg.Bombs.WaveInterval != 8.0 {
		t.Errorf("waves = %d every %fs, want 3 every 8s", cfg.Bombs.WaveSize, cfg.Bombs.WaveInterval)
	}

	d := NewDifficultyManager(cfg.Difficulty)
	if iv := d.Interval(cfg.Bombs.WaveInterval, 100_000, 100_000); iv != 8.0 {
		t.Errorf("default wave interval drifted to %f", iv)
	}
	if sp := d.Speed(0.1, 100_000, 100_000); sp != 0.1 {
		t.Errorf("default fall speed drifted to %f", sp)
	}
}

func TestApplyBunnyPreset(t *testing.T) {
	cfg := DefaultBunnyConfig()
	ApplyBunnyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultBunnyConfig()
	ApplyBunnyPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard InitialLevel = %f, expected 0.7", cfg.Difficulty.InitialLevel)
	}
	if cfg.Bombs.WaveSize != 4 {
		t.Errorf("hard WaveSize = %d, expected 4", cfg.Bombs.WaveSize)
	}

	cfg = DefaultBunnyConfig()
	ApplyBunnyPreset(&cfg, "")
	if cfg != DefaultBunnyConfig() {
		t.Error("empty preset should leave config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
	}{
		{"easy", DifficultyEasy},
		{"normal", DifficultyNormal},
		{"hard", DifficultyHard},
		{"fixed", DifficultyFixed},
		{"nightmare", ""},
		{"", ""},
	}
	for _, tc := range tests {
		if got := ParsePreset(tc.in); got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestDifficultyLevelAndInterval(t *testing.T) {
	cfg := DefaultBunnyConfig().Difficulty
	cfg.Enabled = true
	d := NewDifficultyManager(cfg)

	if lvl := d.Level(0, 0); lvl != 0 {
		t.Errorf("Level(0) = %f, expected 0", lvl)
	}
	if lvl := d.Level(250, 0); lvl != 0.5 {
		t.Errorf("Level(250) = %f, expected 0.5", lvl)
	}
	if lvl := d.Level(10_000, 0); lvl != 1 {
		t.Errorf("Level past max_at = %f, expected 1", lvl)
	}

	if iv := d.Interval(8.0, 0, 0); iv != 8.0 {
		t.Errorf("Interval at level 0 = %f, expected 8.0", iv)
	}
	if iv := d.Interval(8.0, 250, 0); iv != 6.0 {
		t.Errorf("Interval at level 0.5 = %f, expected 6.0", iv)
	}
	// 8 - 4 = 4, above the 3s floor
	if iv := d.Interval(8.0, 10_000, 0); iv != 4.0 {
		t.Errorf("Interval at max level = %f, expected 4.0", iv)
	}
	// Floor is applied when the reduction would go below it
	if iv := d.Interval(5.0, 10_000, 0); iv != 3.0 {
		t.Errorf("Interval with floor = %f, expected 3.0", iv)
	}

	if sp := d.Speed(0.1, 10_000, 0); sp != 0.2 {
		t.Errorf("Speed at max level = %f, expected 0.2", sp)
	}

	d.SetEnabled(false)
	if iv := d.Interval(8.0, 10_000, 0); iv != 8.0 {
		t.Errorf("disabled progression should keep base interval, got %f", iv)
	}
}

func TestDifficultyProgressionTypes(t *testing.T) {
	tests := []struct {
		name  string
		typ   string
		score int
		ticks int
		want  float64
	}{
		{"score ramp", ProgressByScore, 250, 0, 0.5},
		{"time ramp", ProgressByTime, 0, 125, 0.25},
		{"none stays put", ProgressNone, 10_000, 10_000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBunnyConfig().Difficulty
			cfg.Enabled = true
			cfg.Progression.Type = tt.typ
			if got := NewDifficultyManager(cfg).Level(tt.score, tt.ticks); got != tt.want {
				t.Errorf("Level(%d, %d) = %f, want %f", tt.score, tt.ticks, got, tt.want)
			}
		})
	}

	bad := DefaultBunnyConfig()
	bad.Difficulty.Progression.Type = "lunar"
	if err := bad.Validate(); err == nil {
		t.Error("Validate() should reject an unknown progression type")
	}
}
