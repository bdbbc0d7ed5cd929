package config

// DifficultyManager calculates dynamic game parameters based on score/time.
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

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales a base speed from base up to base * (1 + speed_multiplier).
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) float64 {
	return baseSpeed * (1.0 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Cooldown shortens a base cooldown by up to cooldown_reduction of itself.
// The result never drops below a tenth of the base.
func (d *DifficultyManager) Cooldown(base float64, score int, ticks int) float64 {
	reduction := clampF(d.Level(score, ticks)*d.cfg.Scaling.CooldownReduction, 0.0, 0.9)
	return base * (1.0 - reduction)
}

func clampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
