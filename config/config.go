package config

// PhysicsConfig holds the integration and collision constants shared by every
// body in the simulation.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	FrictionGround float64 `yaml:"friction_ground"`
	FrictionAir    float64 `yaml:"friction_air"`
	MaxVelocity    float64 `yaml:"max_velocity"`
	SubStepSize    float64 `yaml:"sub_step_size"`

	// Collision
	ResolveBuffer float64 `yaml:"resolve_buffer"` // Gap left between a resolved body and the platform
	GroundProbe   float64 `yaml:"ground_probe"`   // Max gap below a body that still counts as standing
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed    float64 `yaml:"move_speed"`
	JumpVelocity float64 `yaml:"jump_velocity"`

	// Combat
	MaxHealth           int     `yaml:"max_health"`
	InvulnFrames        int     `yaml:"invuln_frames"`
	PunchCooldown       int     `yaml:"punch_cooldown"`
	PunchDuration       int     `yaml:"punch_duration"`
	RangedCooldown      int     `yaml:"ranged_cooldown"`
	RangedDuration      int     `yaml:"ranged_duration"`
	LandingFrames       int     `yaml:"landing_frames"`
	MeleeRangeX         float64 `yaml:"melee_range_x"`
	MeleeRangeY         float64 `yaml:"melee_range_y"`
	MeleeDamage         int     `yaml:"melee_damage"`
	RespawnInvulnFrames int     `yaml:"respawn_invuln_frames"`

	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name           string  `yaml:"name"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Health         int     `yaml:"health"`
	Speed          float64 `yaml:"speed"`
	PatrolDistance float64 `yaml:"patrol_distance"`
	AttackRange    float64 `yaml:"attack_range"`
	AttackCooldown int     `yaml:"attack_cooldown"`
	Damage         int     `yaml:"damage"`
	DeathDuration  int     `yaml:"death_duration"`
	DeathBounce    float64 `yaml:"death_bounce"`

	// Edge detection probe, relative to the enemy's left edge and bottom.
	ProbeAhead float64 `yaml:"probe_ahead"`
	ProbeBelow float64 `yaml:"probe_below"`
}

// EnemyConfig contains enemy population settings and per-type tuning.
type EnemyConfig struct {
	MaxEnemies  int                        `yaml:"max_enemies"`
	DefaultType string                     `yaml:"default_type"`
	Types       map[string]EnemyTypeConfig `yaml:"types"`
}

// MagicBlastConfig contains configuration for the ranged projectile.
type MagicBlastConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	MaxDistance   float64 `yaml:"max_distance"`
	Damage        int     `yaml:"damage"`
	ParticleEvery int     `yaml:"particle_every"` // Ticks between particle emissions
}

// ParticleConfig tunes the decorative particles trailing magic blasts.
type ParticleConfig struct {
	Life     int     `yaml:"life"`
	MaxSpeed float64 `yaml:"max_speed"`
	MinSize  float64 `yaml:"min_size"`
	MaxSize  float64 `yaml:"max_size"`
	Gravity  float64 `yaml:"gravity"`
	Drag     float64 `yaml:"drag"`
	MaxCount int     `yaml:"max_count"`
}

// PlatformConfig holds defaults for platform kinds that carry behavior.
type PlatformConfig struct {
	MoveSpeed   float64 `yaml:"move_speed"`
	MoveRange   float64 `yaml:"move_range"`
	SpikeDamage int     `yaml:"spike_damage"`
}

// CameraConfig contains camera follow settings.
type CameraConfig struct {
	ViewWidth    float64 `yaml:"view_width"`
	ViewHeight   float64 `yaml:"view_height"`
	FollowSpeed  float64 `yaml:"follow_speed"` // 0..1, fraction of the gap closed per tick
	LeadDistance float64 `yaml:"lead_distance"`
	Smoothing    bool    `yaml:"smoothing"`
}

// ScreenShakeConfig contains screen shake defaults.
type ScreenShakeConfig struct {
	DefaultIntensity float64 `yaml:"default_intensity"`
	DefaultDuration  int     `yaml:"default_duration"`
	Decay            float64 `yaml:"decay"`
	DeathIntensity   float64 `yaml:"death_intensity"`
	DeathDuration    int     `yaml:"death_duration"`
}

// DeathZoneConfig contains death zone and respawn settings.
type DeathZoneConfig struct {
	Margin         float64 `yaml:"margin"` // Distance below the world bottom that kills
	RespawnFrames  int     `yaml:"respawn_frames"`
	OverlayFrames  int     `yaml:"overlay_frames"`
	OverlayOpacity float64 `yaml:"overlay_opacity"`
}

// Config holds the top-level game settings.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	TPS    int   `yaml:"tps"`
	Seed   int64 `yaml:"seed"`
}

var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var MagicBlast MagicBlastConfig
var Particle ParticleConfig
var Platform PlatformConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var DeathZone DeathZoneConfig

// Enemy type names.
const (
	EnemySlime = "slime"
)

func init() {
	Reset()
}

// Reset restores every tunable to its built-in default.
func Reset() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
		Seed:   1,
	}

	// Physics Config
	Physics = PhysicsConfig{
		Gravity:        0.8,
		FrictionGround: 0.85,
		FrictionAir:    0.98,
		MaxVelocity:    15.0,
		SubStepSize:    5.0,

		ResolveBuffer: 0.1,
		GroundProbe:   1.0,
	}

	// Player Config
	Player = PlayerConfig{
		MoveSpeed:    5.0,
		JumpVelocity: -15.0,

		MaxHealth:           3,
		InvulnFrames:        60,
		PunchCooldown:       30,
		PunchDuration:       15,
		RangedCooldown:      30,
		RangedDuration:      10,
		LandingFrames:       6,
		MeleeRangeX:         40,
		MeleeRangeY:         30,
		MeleeDamage:         1,
		RespawnInvulnFrames: 0,

		Width:  30,
		Height: 40,
	}

	// Enemy Config
	Enemy = EnemyConfig{
		MaxEnemies:  8,
		DefaultType: EnemySlime,
		Types: map[string]EnemyTypeConfig{
			EnemySlime: {
				Name:           EnemySlime,
				Width:          25,
				Height:         20,
				Health:         1,
				Speed:          0.8,
				PatrolDistance: 80,
				AttackRange:    35,
				AttackCooldown: 60,
				Damage:         1,
				DeathDuration:  30,
				DeathBounce:    -5,
				ProbeAhead:     30,
				ProbeBelow:     10,
			},
		},
	}

	// Magic Blast Config
	MagicBlast = MagicBlastConfig{
		Width:         20,
		Height:        12,
		Speed:         8.0,
		MaxDistance:   400,
		Damage:        1,
		ParticleEvery: 2,
	}

	Particle = ParticleConfig{
		Life:     30,
		MaxSpeed: 1.0,
		MinSize:  1,
		MaxSize:  4,
		Gravity:  0.05,
		Drag:     0.98,
		MaxCount: 256,
	}

	Platform = PlatformConfig{
		MoveSpeed:   1.0,
		MoveRange:   100,
		SpikeDamage: 1,
	}

	Camera = CameraConfig{
		ViewWidth:    800,
		ViewHeight:   600,
		FollowSpeed:  0.1,
		LeadDistance: 100,
		Smoothing:    true,
	}

	ScreenShake = ScreenShakeConfig{
		DefaultIntensity: 5,
		DefaultDuration:  10,
		Decay:            0.9,
		DeathIntensity:   10,
		DeathDuration:    20,
	}

	DeathZone = DeathZoneConfig{
		Margin:         50,
		RespawnFrames:  60,
		OverlayFrames:  30,
		OverlayOpacity: 0.6,
	}
}

// EnemyType returns the tuning for the named type, falling back to the
// default type for unknown names.
func EnemyType(name string) EnemyTypeConfig {
	if t, ok := Enemy.Types[name]; ok {
		return t
	}
	return Enemy.Types[Enemy.DefaultType]
}
