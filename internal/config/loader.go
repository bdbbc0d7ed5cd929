package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by Validate failures.
var ErrInvalidConfig = errors.New("config: invalid")

// LoadShooter loads the shooter configuration.
// Search order: customPath -> ~/.arcade/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default
func LoadShooter(customPath string) (ShooterConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseShooter(data)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("shooter.yaml"), filepath.Join("configs", "shooter.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parseShooter(data); err == nil {
				return cfg, nil
			}
		}
	}

	cfg, err := parseShooter(defaultShooterYAML)
	if err != nil {
		return DefaultShooterConfig(), nil
	}
	return cfg, nil
}

// parseShooter decodes YAML on top of the hardcoded defaults, so a partial
// file only overrides the keys it names, and validates the result.
func parseShooter(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShooterConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ShooterConfig{}, err
	}
	return cfg, nil
}

// Validate rejects values the game loop cannot run with.
func (c ShooterConfig) Validate() error {
	switch {
	case c.Spawner.EnemyCooldown <= 0:
		return fmt.Errorf("%w: spawner.enemy_cooldown must be positive", ErrInvalidConfig)
	case c.Spawner.BulletCooldown <= 0:
		return fmt.Errorf("%w: spawner.bullet_cooldown must be positive", ErrInvalidConfig)
	case c.Spawner.BoundaryMax <= 0:
		return fmt.Errorf("%w: spawner.boundary_max must be positive", ErrInvalidConfig)
	case c.Spawner.EnemySpeed <= 0:
		return fmt.Errorf("%w: spawner.enemy_speed must be positive", ErrInvalidConfig)
	case c.Spawner.BulletStep <= 0:
		return fmt.Errorf("%w: spawner.bullet_step must be positive", ErrInvalidConfig)
	case c.Spawner.TimerMode != TimerFrames && c.Spawner.TimerMode != TimerSeconds:
		return fmt.Errorf("%w: spawner.timer_mode %q", ErrInvalidConfig, c.Spawner.TimerMode)
	case c.Game.MaxTime <= 0:
		return fmt.Errorf("%w: game.max_time must be positive", ErrInvalidConfig)
	case c.Game.ScoreScreenPause < 0:
		return fmt.Errorf("%w: game.score_screen_pause must not be negative", ErrInvalidConfig)
	case c.Ship.Damping < 0 || c.Ship.Damping > 1:
		return fmt.Errorf("%w: ship.damping must be within [0, 1]", ErrInvalidConfig)
	case c.Ship.Acceleration < 0:
		return fmt.Errorf("%w: ship.acceleration must not be negative", ErrInvalidConfig)
	case c.Ship.MaxSpeed < 0:
		return fmt.Errorf("%w: ship.max_speed must not be negative", ErrInvalidConfig)
	case c.Ship.Margin < 0:
		return fmt.Errorf("%w: ship.margin must not be negative", ErrInvalidConfig)
	case c.Game.KillPoints < 0:
		return fmt.Errorf("%w: game.kill_points must not be negative", ErrInvalidConfig)
	case c.Game.HitPenalty < 0:
		return fmt.Errorf("%w: game.hit_penalty must not be negative", ErrInvalidConfig)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Game.MaxTime = 90
		cfg.Game.HitPenalty = 0
	case DifficultyHard:
		cfg.Game.MaxTime = 45
		cfg.Game.HitPenalty = 2
	}
}
