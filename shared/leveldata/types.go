// Package leveldata provides TMX level parsing for the client and the
// headless simulator. It has no dependencies on ebitengine, donburi, or
// resolv: pure data only.
package leveldata

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/slimebrawl/config"
)

// ErrInvalidLevel is wrapped by every layout validation failure.
var ErrInvalidLevel = errors.New("invalid level")

// Level is the static layout a world is built from.
type Level struct {
	Name      string
	Width     float64
	Height    float64
	SpawnX    float64
	SpawnY    float64
	Platforms []PlatformSpec
	Enemies   []EnemySpawn
}

// PlatformSpec describes one platform. Move fields only apply to moving
// platforms; zero values fall back to config.Platform defaults.
type PlatformSpec struct {
	X, Y, W, H float64
	Kind       config.PlatformKind
	MoveSpeed  float64
	MoveRange  float64
	Axis       config.Axis
}

// EnemySpawn places one enemy. Direction 0 lets the world pick one.
type EnemySpawn struct {
	X, Y      float64
	Type      string
	Direction int
}

// Validate rejects layouts that would produce degenerate geometry.
func (l *Level) Validate() error {
	if !(l.Width > 0) || !(l.Height > 0) || !finite(l.Width, l.Height) {
		return fmt.Errorf("%w: world size %vx%v must be positive", ErrInvalidLevel, l.Width, l.Height)
	}
	if !finite(l.SpawnX, l.SpawnY) {
		return fmt.Errorf("%w: spawn (%v, %v) is not a finite point", ErrInvalidLevel, l.SpawnX, l.SpawnY)
	}
	for i, p := range l.Platforms {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("platform %d: %w", i, err)
		}
	}
	for i, e := range l.Enemies {
		if !finite(e.X, e.Y) {
			return fmt.Errorf("%w: enemy %d position (%v, %v) is not finite", ErrInvalidLevel, i, e.X, e.Y)
		}
		if e.Direction < -1 || e.Direction > 1 {
			return fmt.Errorf("%w: enemy %d direction %d", ErrInvalidLevel, i, e.Direction)
		}
	}
	return nil
}

func (p PlatformSpec) Validate() error {
	switch {
	case !(p.W > 0) || !(p.H > 0) || !finite(p.X, p.Y, p.W, p.H):
		return fmt.Errorf("%w: platform (%v, %v) %vx%v must be finite with a positive size", ErrInvalidLevel, p.X, p.Y, p.W, p.H)
	case !p.Kind.Valid():
		return fmt.Errorf("%w: unknown platform kind %q", ErrInvalidLevel, p.Kind)
	case !(p.MoveSpeed >= 0) || !(p.MoveRange >= 0) || !finite(p.MoveSpeed, p.MoveRange):
		return fmt.Errorf("%w: negative movement", ErrInvalidLevel)
	case p.Axis != "" && p.Axis != config.AxisHorizontal && p.Axis != config.AxisVertical:
		return fmt.Errorf("%w: unknown axis %q", ErrInvalidLevel, p.Axis)
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
