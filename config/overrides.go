package config

import (
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

type overrideFile struct {
	Game        *Config            `yaml:"game"`
	Physics     *PhysicsConfig     `yaml:"physics"`
	Player      *PlayerConfig      `yaml:"player"`
	Enemy       *enemyOverride     `yaml:"enemy"`
	MagicBlast  *MagicBlastConfig  `yaml:"magic_blast"`
	Particle    *ParticleConfig    `yaml:"particle"`
	Platform    *PlatformConfig    `yaml:"platform"`
	Camera      *CameraConfig      `yaml:"camera"`
	ScreenShake *ScreenShakeConfig `yaml:"screen_shake"`
	DeathZone   *DeathZoneConfig   `yaml:"death_zone"`
}

// Enemy types are decoded one by one so a partial entry only replaces the
// keys it names.
type enemyOverride struct {
	MaxEnemies  *int                 `yaml:"max_enemies"`
	DefaultType *string              `yaml:"default_type"`
	Types       map[string]yaml.Node `yaml:"types"`
}

// LoadOverrides applies a YAML tuning file on top of the current values.
// Nothing is changed if the file fails to parse or validate.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read overrides %s: %w", path, err)
	}
	if err := ApplyOverrides(data); err != nil {
		return fmt.Errorf("apply overrides %s: %w", path, err)
	}
	return nil
}

// ApplyOverrides decodes YAML tuning data on top of the current values.
func ApplyOverrides(data []byte) error {
	game := *C
	physics := Physics
	player := Player
	magicBlast := MagicBlast
	particle := Particle
	platform := Platform
	camera := Camera
	shake := ScreenShake
	deathZone := DeathZone

	f := overrideFile{
		Game:        &game,
		Physics:     &physics,
		Player:      &player,
		Enemy:       &enemyOverride{},
		MagicBlast:  &magicBlast,
		Particle:    &particle,
		Platform:    &platform,
		Camera:      &camera,
		ScreenShake: &shake,
		DeathZone:   &deathZone,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}

	enemy := Enemy
	enemy.Types = maps.Clone(Enemy.Types)
	if f.Enemy != nil {
		if f.Enemy.MaxEnemies != nil {
			enemy.MaxEnemies = *f.Enemy.MaxEnemies
		}
		if f.Enemy.DefaultType != nil {
			enemy.DefaultType = *f.Enemy.DefaultType
		}
		for name, node := range f.Enemy.Types {
			t, ok := enemy.Types[name]
			if !ok {
				t = EnemyTypeConfig{Name: name}
			}
			if err := node.Decode(&t); err != nil {
				return fmt.Errorf("decode enemy type %s: %w", name, err)
			}
			t.Name = name
			enemy.Types[name] = t
		}
	}

	prev := snapshot()
	C, Physics, Player, Enemy = &game, physics, player, enemy
	MagicBlast, Particle, Platform = magicBlast, particle, platform
	Camera, ScreenShake, DeathZone = camera, shake, deathZone
	if err := Validate(); err != nil {
		prev.restore()
		return err
	}
	return nil
}

type saved struct {
	c           Config
	physics     PhysicsConfig
	player      PlayerConfig
	enemy       EnemyConfig
	magicBlast  MagicBlastConfig
	particle    ParticleConfig
	platform    PlatformConfig
	camera      CameraConfig
	screenShake ScreenShakeConfig
	deathZone   DeathZoneConfig
}

func snapshot() saved {
	return saved{*C, Physics, Player, Enemy, MagicBlast, Particle, Platform, Camera, ScreenShake, DeathZone}
}

func (s saved) restore() {
	c := s.c
	C = &c
	Physics, Player, Enemy = s.physics, s.player, s.enemy
	MagicBlast, Particle, Platform = s.magicBlast, s.particle, s.platform
	Camera, ScreenShake, DeathZone = s.camera, s.screenShake, s.deathZone
}
