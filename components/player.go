package components

import (
	"github.com/automoto/slimebrawl/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing int // -1 or 1

	InvulnTimer    Countdown
	PunchCooldown  Countdown
	RangedCooldown Countdown

	Attack      config.AttackKind
	AttackTimer Countdown
	SwingID     int // Increments on every punch so a swing hits each enemy once

	JumpWasPressed bool
	LandingTimer   Countdown

	SpawnX, SpawnY float64

	// Magic blasts fired by this player that are still alive.
	Projectiles []donburi.Entity
}

var Player = donburi.NewComponentType[PlayerData]()

// Invulnerable is derived from the timer so the two can never disagree.
func (p *PlayerData) Invulnerable() bool { return p.InvulnTimer.Active() }

// IsAttacking is the combined visual flag for either attack window.
func (p *PlayerData) IsAttacking() bool {
	return p.Attack != config.AttackNone && p.AttackTimer.Active()
}

// Punching reports whether a melee swing is live this tick.
func (p *PlayerData) Punching() bool {
	return p.Attack == config.AttackPunch && p.AttackTimer.Active()
}
