package config

// Progression types.
const (
	ProgressByScore = "score"
	ProgressByTime  = "time"
	ProgressNone    = "none"
)

// defaultMinInterval bounds waves when the config sets no floor.
const defaultMinInterval = 1.0

// DifficultyManager turns a run's score and age into a level between the
// configured initial level and 1, and scales bomb speed and wave spacing
// by it.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a manager for the given settings.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = clamp01(cfg.InitialLevel)
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled turns progression on or off. A disabled manager stays at the
// initial level.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// progress reports how far along the ramp a run is, in [0, 1].
func (d *DifficultyManager) progress(score, ticks int) float64 {
	if !d.cfg.Enabled {
		return 0
	}

	var at int
	switch d.cfg.Progression.Type {
	case ProgressByScore:
		at = score
	case ProgressByTime:
		at = ticks
	default:
		return 0
	}

	if d.cfg.Progression.MaxAt <= 0 {
		return 1
	}
	return clamp01(float64(at) / float64(d.cfg.Progression.MaxAt))
}

// Level returns the current difficulty level.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	start := d.cfg.InitialLevel
	return start + d.progress(score, ticks)*(1-start)
}

// Speed scales a base fall speed, reaching base*(1+SpeedMultiplier) at
// level 1.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Interval shortens a base wave interval by up to IntervalReduction
// seconds. The result never drops below MinInterval, or below base when
// the floor is larger than base.
func (d *DifficultyManager) Interval(base float64, score, ticks int) float64 {
	floor := d.cfg.Scaling.MinInterval
	if floor <= 0 {
		floor = defaultMinInterval
	}
	floor = min(floor, base)

	return max(base-d.Level(score, ticks)*d.cfg.Scaling.IntervalReduction, floor)
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
