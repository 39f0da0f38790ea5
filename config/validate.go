package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// positive, nonNegative and unit are written so NaN fails them.
func positive(vs ...float64) bool {
	for _, v := range vs {
		if !(v > 0) || math.IsInf(v, 1) {
			return false
		}
	}
	return true
}

func nonNegative(vs ...float64) bool {
	for _, v := range vs {
		if !(v >= 0) || math.IsInf(v, 1) {
			return false
		}
	}
	return true
}

func unit(v float64) bool { return v >= 0 && v <= 1 }

func (p PhysicsConfig) Validate() error {
	switch {
	case !nonNegative(p.Gravity):
		return invalid("physics gravity %v is negative", p.Gravity)
	case !unit(p.FrictionGround):
		return invalid("physics ground friction %v outside [0,1]", p.FrictionGround)
	case !unit(p.FrictionAir):
		return invalid("physics air friction %v outside [0,1]", p.FrictionAir)
	case !positive(p.MaxVelocity):
		return invalid("physics max velocity %v must be positive", p.MaxVelocity)
	case !positive(p.SubStepSize):
		return invalid("physics sub step size %v must be positive", p.SubStepSize)
	case !nonNegative(p.ResolveBuffer):
		return invalid("physics resolve buffer %v is negative", p.ResolveBuffer)
	case !(p.GroundProbe >= p.ResolveBuffer):
		return invalid("physics ground probe %v smaller than resolve buffer %v", p.GroundProbe, p.ResolveBuffer)
	}
	return nil
}

func (p PlayerConfig) Validate() error {
	switch {
	case !positive(p.Width, p.Height):
		return invalid("player size %vx%v must be positive", p.Width, p.Height)
	case !nonNegative(p.MoveSpeed):
		return invalid("player move speed %v is negative", p.MoveSpeed)
	case p.MaxHealth <= 0:
		return invalid("player max health %d must be positive", p.MaxHealth)
	case p.InvulnFrames < 0, p.PunchCooldown < 0, p.PunchDuration < 0,
		p.RangedCooldown < 0, p.RangedDuration < 0, p.LandingFrames < 0,
		p.RespawnInvulnFrames < 0:
		return invalid("player frame counters must not be negative")
	case p.MeleeDamage < 0:
		return invalid("player melee damage %d is negative", p.MeleeDamage)
	}
	return nil
}

func (e EnemyTypeConfig) Validate() error {
	switch {
	case !positive(e.Width, e.Height):
		return invalid("enemy %q size %vx%v must be positive", e.Name, e.Width, e.Height)
	case e.Health <= 0:
		return invalid("enemy %q health %d must be positive", e.Name, e.Health)
	case !nonNegative(e.Speed, e.PatrolDistance, e.AttackRange, e.ProbeAhead, e.ProbeBelow):
		return invalid("enemy %q movement values must not be negative", e.Name)
	case e.AttackCooldown < 0 || e.DeathDuration < 0 || e.Damage < 0:
		return invalid("enemy %q counters must not be negative", e.Name)
	}
	return nil
}

func (e EnemyConfig) Validate() error {
	if e.MaxEnemies < 0 {
		return invalid("max enemies %d is negative", e.MaxEnemies)
	}
	if _, ok := e.Types[e.DefaultType]; !ok {
		return invalid("default enemy type %q has no tuning", e.DefaultType)
	}
	for name, t := range e.Types {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("enemy type %s: %w", name, err)
		}
	}
	return nil
}

func (m MagicBlastConfig) Validate() error {
	switch {
	case !positive(m.Width, m.Height):
		return invalid("magic blast size %vx%v must be positive", m.Width, m.Height)
	case !positive(m.Speed):
		return invalid("magic blast speed %v must be positive", m.Speed)
	case !positive(m.MaxDistance):
		return invalid("magic blast max distance %v must be positive", m.MaxDistance)
	case m.ParticleEvery < 0 || m.Damage < 0:
		return invalid("magic blast counters must not be negative")
	}
	return nil
}

func (p ParticleConfig) Validate() error {
	if p.Life < 0 || p.MaxCount < 0 {
		return invalid("particle counters must not be negative")
	}
	if !nonNegative(p.MaxSpeed, p.Drag) || math.IsNaN(p.Gravity) || math.IsInf(p.Gravity, 0) {
		return invalid("particle motion values must be finite and not negative")
	}
	if !positive(p.MinSize) || !(p.MaxSize >= p.MinSize) {
		return invalid("particle size range [%v,%v] is empty", p.MinSize, p.MaxSize)
	}
	return nil
}

func (p PlatformConfig) Validate() error {
	if !nonNegative(p.MoveSpeed, p.MoveRange) || p.SpikeDamage < 0 {
		return invalid("platform defaults must not be negative")
	}
	return nil
}

func (c CameraConfig) Validate() error {
	switch {
	case !positive(c.ViewWidth, c.ViewHeight):
		return invalid("camera viewport %vx%v must be positive", c.ViewWidth, c.ViewHeight)
	case !unit(c.FollowSpeed):
		return invalid("camera follow speed %v outside [0,1]", c.FollowSpeed)
	case !nonNegative(c.LeadDistance):
		return invalid("camera lead %v is negative", c.LeadDistance)
	}
	return nil
}

func (s ScreenShakeConfig) Validate() error {
	if !unit(s.Decay) || !nonNegative(s.DefaultIntensity, s.DeathIntensity) {
		return invalid("screen shake decay %v outside [0,1]", s.Decay)
	}
	if s.DefaultDuration < 0 || s.DeathDuration < 0 {
		return invalid("screen shake durations must not be negative")
	}
	return nil
}

func (d DeathZoneConfig) Validate() error {
	if !nonNegative(d.Margin) || !unit(d.OverlayOpacity) || d.RespawnFrames < 0 || d.OverlayFrames < 0 {
		return invalid("death zone values must not be negative")
	}
	return nil
}

// Validate checks every tunable group, returning the first problem found.
func Validate() error {
	if C == nil || C.TPS <= 0 {
		return invalid("ticks per second must be positive")
	}
	checks := []struct {
		name string
		v    interface{ Validate() error }
	}{
		{"physics", Physics},
		{"player", Player},
		{"enemy", Enemy},
		{"magic blast", MagicBlast},
		{"particle", Particle},
		{"platform", Platform},
		{"camera", Camera},
		{"screen shake", ScreenShake},
		{"death zone", DeathZone},
	}
	for _, c := range checks {
		if err := c.v.Validate(); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
	}
	return nil
}
