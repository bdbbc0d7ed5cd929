package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parseShooter(DefaultYAML())
	if err != nil {
		t.Fatalf("parseShooter(embedded) failed: %v", err)
	}

	if cfg != DefaultShooterConfig() {
		t.Errorf("embedded YAML and DefaultShooterConfig() disagree:\n%+v\n%+v", cfg, DefaultShooterConfig())
	}
}

func TestLoadShooterCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shooter.yaml")
	data := []byte("spawner:\n  timer_mode: frames\n  enemy_cooldown: 30\ngame:\n  max_time: 10\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter() failed: %v", err)
	}

	if cfg.Spawner.TimerMode != TimerFrames {
		t.Errorf("TimerMode = %q, expected frames", cfg.Spawner.TimerMode)
	}
	if cfg.Spawner.EnemyCooldown != 30 {
		t.Errorf("EnemyCooldown = %v, expected 30", cfg.Spawner.EnemyCooldown)
	}
	if cfg.Game.MaxTime != 10 {
		t.Errorf("MaxTime = %v, expected 10", cfg.Game.MaxTime)
	}
	// Untouched keys keep their defaults
	if cfg.Spawner.BoundaryMax != 20 {
		t.Errorf("BoundaryMax = %v, expected default 20", cfg.Spawner.BoundaryMax)
	}
}

func TestLoadShooterErrors(t *testing.T) {
	if _, err := LoadShooter(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadShooter() with missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("spawner:\n  boundary_max: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadShooter(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadShooter() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShooterConfig)
	}{
		{"zero enemy cooldown", func(c *ShooterConfig) { c.Spawner.EnemyCooldown = 0 }},
		{"zero bullet cooldown", func(c *ShooterConfig) { c.Spawner.BulletCooldown = 0 }},
		{"unknown timer mode", func(c *ShooterConfig) { c.Spawner.TimerMode = "ticks" }},
		{"zero max time", func(c *ShooterConfig) { c.Game.MaxTime = 0 }},
		{"damping above one", func(c *ShooterConfig) { c.Ship.Damping = 1.5 }},
		{"zero enemy speed", func(c *ShooterConfig) { c.Spawner.EnemySpeed = 0 }},
		{"negative bullet step", func(c *ShooterConfig) { c.Spawner.BulletStep = -1 }},
		{"negative acceleration", func(c *ShooterConfig) { c.Ship.Acceleration = -0.1 }},
		{"negative max speed", func(c *ShooterConfig) { c.Ship.MaxSpeed = -1 }},
		{"negative margin", func(c *ShooterConfig) { c.Ship.Margin = -5 }},
		{"negative kill points", func(c *ShooterConfig) { c.Game.KillPoints = -1 }},
		{"negative hit penalty", func(c *ShooterConfig) { c.Game.HitPenalty = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultShooterConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}

	if err := DefaultShooterConfig().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestApplyShooterPreset(t *testing.T) {
	cfg := DefaultShooterConfig()
	ApplyShooterPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultShooterConfig()
	ApplyShooterPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("InitialLevel = %v, expected 0.7", cfg.Difficulty.InitialLevel)
	}
	if cfg.Game.MaxTime != 45 {
		t.Errorf("MaxTime = %v, expected 45", cfg.Game.MaxTime)
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("insane") != "" {
		t.Error("ParsePreset of unknown value should be empty")
	}
}
