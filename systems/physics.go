package systems

import (
	"fmt"
	"math"

	"github.com/automoto/slimebrawl/components"
	"github.com/automoto/slimebrawl/config"
	"github.com/automoto/slimebrawl/shared/gamemath"
)

// Contact says which face of a platform a body was pushed out of.
type Contact int

const (
	ContactNone Contact = iota
	ContactLeft
	ContactRight
	ContactTop
	ContactBottom
)

// StepFunc runs after every integration sub-step.
type StepFunc func(b *components.BodyData)

// Physics integrates bodies and pushes them out of platforms. It holds only
// tuning; all state lives in the bodies passed to it.
type Physics struct {
	cfg config.PhysicsConfig
}

func NewPhysics(c config.PhysicsConfig) (*Physics, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new physics: %w", err)
	}
	return &Physics{cfg: c}, nil
}

// Config returns the tuning the engine was built with.
func (p *Physics) Config() config.PhysicsConfig { return p.cfg }

// ApplyGravity accelerates airborne bodies downward. Grounded bodies are left
// alone.
func (p *Physics) ApplyGravity(b *components.BodyData) {
	if !b.OnGround {
		b.SpeedY += p.cfg.Gravity
	}
}

func (p *Physics) ApplyFriction(b *components.BodyData) {
	if b.OnGround {
		b.SpeedX *= p.cfg.FrictionGround
	} else {
		b.SpeedX *= p.cfg.FrictionAir
	}
}

func (p *Physics) CheckCollision(a, b gamemath.Bounded) bool {
	return gamemath.Overlaps(a, b)
}

// ResolveCollision pushes b out of platform along the axis of smaller
// overlap. Equal overlaps resolve vertically.
func (p *Physics) ResolveCollision(b *components.BodyData, platform gamemath.Bounded) Contact {
	r := platform.Bounds()
	body := b.Bounds()
	if !body.Intersects(r) {
		return ContactNone
	}

	ox := math.Min(body.Right()-r.X, r.Right()-body.X)
	oy := math.Min(body.Bottom()-r.Y, r.Bottom()-body.Y)
	buf := p.cfg.ResolveBuffer

	if ox < oy {
		b.SpeedX = 0
		if body.CenterX() < r.CenterX() {
			b.X = r.X - b.W - buf
			return ContactLeft
		}
		b.X = r.Right() + buf
		return ContactRight
	}

	if body.Y < r.Y {
		b.Y = r.Y - b.H - buf
		b.OnGround = true
		b.SpeedY = 0
		return ContactTop
	}
	b.Y = r.Bottom() + buf
	b.SpeedY = 0
	return ContactBottom
}

// UpdatePosition clamps velocity and integrates in equal sub-steps no longer
// than the configured step size, calling step after each one. An axis whose
// velocity is zeroed by step stops advancing for the rest of the tick.
func (p *Physics) UpdatePosition(b *components.BodyData, step StepFunc) {
	b.PrevX, b.PrevY = b.X, b.Y
	b.SpeedX = gamemath.ClampSpeed(b.SpeedX, p.cfg.MaxVelocity)
	b.SpeedY = gamemath.ClampSpeed(b.SpeedY, p.cfg.MaxVelocity)

	steps := gamemath.SubSteps(b.SpeedX, b.SpeedY, p.cfg.SubStepSize)
	dx := b.SpeedX / float64(steps)
	dy := b.SpeedY / float64(steps)
	for range steps {
		b.X += dx
		b.Y += dy
		if step == nil {
			continue
		}
		step(b)
		if b.SpeedX == 0 {
			dx = 0
		}
		if b.SpeedY == 0 {
			dy = 0
		}
	}
}

// CheckWorldBounds keeps b inside [0, worldWidth] horizontally and reports
// whether it had to be moved. Falling out of the bottom is left to the
// caller.
func (p *Physics) CheckWorldBounds(b *components.BodyData, worldWidth float64) bool {
	x := gamemath.Clamp(b.X, 0, worldWidth-b.W)
	if x == b.X {
		return false
	}
	b.X = x
	b.SpeedX = 0
	return true
}
