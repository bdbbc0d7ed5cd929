package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the hardcoded shooter configuration. It mirrors
// defaults/shooter.yaml and is used when the embedded file cannot be parsed.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Engine: EngineConfig{
			RequiredVersion: [3]int{0, 2, 1},
		},
		Camera: CameraConfig{
			Position:  [3]float64{0, 5, -10},
			Direction: [3]float64{0, -0.2, 1},
			Follow:    true,
			CellScale: 1.0,
		},
		Physics: PhysicsConfig{
			Gravity:          -9.8,
			FloorFriction:    0.5,
			FloorRestitution: 0.3,
			BoxMass:          10.0,
			BoxStartHeight:   7.0,
			BoxRestitution:   0.2,
		},
		Spawner: SpawnerConfig{
			TimerMode:          TimerSeconds,
			EnemyCooldown:      1.0,
			BulletCooldown:     0.25,
			BoundaryMax:        20.0,
			EnemySpeed:         12.0,
			EnemyStartDepth:    80.0,
			EnemySize:          1.0,
			BulletStep:         1.0,
			BulletDepthOffset:  1.5,
			BulletSize:         0.25,
			DespawnDepth:       -5.0,
			BulletDespawnDepth: 90.0,
		},
		Ship: ShipConfig{
			Acceleration: 0.15,
			MaxSpeed:     0.8,
			Damping:      0.85,
			Margin:       5.0,
			Size:         1.0,
		},
		Game: GameplayConfig{
			MaxTime:          60.0,
			ScoreScreenPause: 2.0,
			KillPoints:       1,
			HitPenalty:       1,
		},
		Collision: CollisionConfig{
			SkipBulletHitWithPairContacts: true,
		},
		Particles: ParticleConfig{
			BurstCount: 24,
			Lifetime:   0.8,
			Speed:      6.0,
		},
		Audio: AudioConfig{
			Enabled:   true,
			Volume:    0.5,
			Explosion: "sounds/explosion.wav",
			Hit:       "sounds/hit.wav",
			Shoot:     "sounds/shoot.wav",
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				CooldownReduction: 0.6,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
