// Package config provides YAML-based configuration loading and difficulty
// management for the shooter builds.
package config

// ShooterConfig contains all tunables for the shooter builds.
type ShooterConfig struct {
	Engine     EngineConfig     `yaml:"engine"`
	Camera     CameraConfig     `yaml:"camera"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Ship       ShipConfig       `yaml:"ship"`
	Game       GameplayConfig   `yaml:"game"`
	Collision  CollisionConfig  `yaml:"collision"`
	Particles  ParticleConfig   `yaml:"particles"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// EngineConfig configures the host engine facade.
type EngineConfig struct {
	RequiredVersion [3]int `yaml:"required_version"`
	Debug           bool   `yaml:"debug"`
}

// CameraConfig positions the camera at startup.
type CameraConfig struct {
	Position  [3]float64 `yaml:"position"`
	Direction [3]float64 `yaml:"direction"`
	Follow    bool       `yaml:"follow"`     // Track the ship's horizontal movement
	CellScale float64    `yaml:"cell_scale"` // World units per screen column
}

// PhysicsConfig defines world and floor parameters.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	FloorFriction    float64 `yaml:"floor_friction"`
	FloorRestitution float64 `yaml:"floor_restitution"`
	BoxMass          float64 `yaml:"box_mass"`
	BoxStartHeight   float64 `yaml:"box_start_height"`
	BoxRestitution   float64 `yaml:"box_restitution"`
}

// Timer modes for cooldowns.
const (
	TimerFrames  = "frames"  // Count one unit per tick
	TimerSeconds = "seconds" // Accumulate elapsed time
)

// SpawnerConfig defines enemy and bullet spawning.
// Cooldowns are in frames or seconds depending on TimerMode. Enemies fly
// toward the camera and are removed once their depth drops below
// DespawnDepth; bullets fly away and are removed past BulletDespawnDepth.
type SpawnerConfig struct {
	TimerMode          string  `yaml:"timer_mode"`
	EnemyCooldown      float64 `yaml:"enemy_cooldown"`
	BulletCooldown     float64 `yaml:"bullet_cooldown"`
	BoundaryMax        float64 `yaml:"boundary_max"`
	EnemySpeed         float64 `yaml:"enemy_speed"`
	EnemyStartDepth    float64 `yaml:"enemy_start_depth"`
	EnemySize          float64 `yaml:"enemy_size"`
	BulletStep         float64 `yaml:"bullet_step"`
	BulletDepthOffset  float64 `yaml:"bullet_depth_offset"`
	BulletSize         float64 `yaml:"bullet_size"`
	DespawnDepth       float64 `yaml:"despawn_depth"`
	BulletDespawnDepth float64 `yaml:"bullet_despawn_depth"`
}

// ShipConfig defines ship handling.
type ShipConfig struct {
	Acceleration float64 `yaml:"acceleration"`
	MaxSpeed     float64 `yaml:"max_speed"`
	Damping      float64 `yaml:"damping"` // Velocity multiplier applied per tick
	Margin       float64 `yaml:"margin"`  // Extra travel allowed past boundary_max
	Depth        float64 `yaml:"depth"`
	Size         float64 `yaml:"size"`
}

// GameplayConfig defines the timer and scoring rules.
type GameplayConfig struct {
	MaxTime          float64 `yaml:"max_time"`           // Seconds per round
	ScoreScreenPause float64 `yaml:"score_screen_pause"` // Seconds before restart is accepted
	KillPoints       int     `yaml:"kill_points"`
	HitPenalty       int     `yaml:"hit_penalty"`
}

// CollisionConfig holds collision policy switches.
type CollisionConfig struct {
	// SkipBulletHitWithPairContacts ignores a bullet/enemy removed-contact
	// event when the pair still reports contact points.
	SkipBulletHitWithPairContacts bool `yaml:"skip_bullet_hit_with_pair_contacts"`
}

// ParticleConfig defines explosion bursts.
type ParticleConfig struct {
	BurstCount int     `yaml:"burst_count"`
	Lifetime   float64 `yaml:"lifetime"` // Seconds
	Speed      float64 `yaml:"speed"`
}

// AudioConfig defines sound playback.
type AudioConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Volume    float64 `yaml:"volume"`
	Explosion string  `yaml:"explosion"`
	Hit       string  `yaml:"hit"`
	Shoot     string  `yaml:"shoot"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Added to enemy speed at max difficulty
	CooldownReduction float64 `yaml:"cooldown_reduction"` // Fraction of enemy cooldown removed at max difficulty
}

// DifficultyPreset is a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	}
	return ""
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
