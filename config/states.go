package config

// StateID is the movement state of a player or enemy. Attacks and
// invulnerability are tracked separately as overlays.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Walking
	Jumping
	Falling
	Landing

	// Enemy states
	StatePatrol
	StateAttackCooldown
	StateDying
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walking:
		return "walking"
	case Jumping:
		return "jumping"
	case Falling:
		return "falling"
	case Landing:
		return "landing"
	case StatePatrol:
		return "patrol"
	case StateAttackCooldown:
		return "attack_cooldown"
	case StateDying:
		return "dying"
	default:
		return "none"
	}
}

// AttackKind is the player's active attack overlay.
type AttackKind int

const (
	AttackNone AttackKind = iota
	AttackPunch
	AttackRanged
)

func (a AttackKind) String() string {
	switch a {
	case AttackPunch:
		return "punch"
	case AttackRanged:
		return "ranged"
	default:
		return "none"
	}
}

// PlatformKind selects the collision policy applied to a platform.
type PlatformKind string

const (
	PlatformSolid       PlatformKind = "solid"
	PlatformJumpThrough PlatformKind = "jumpthrough"
	PlatformMoving      PlatformKind = "moving"
	PlatformBreakable   PlatformKind = "breakable"
	PlatformSpikes      PlatformKind = "spikes"
)

// Valid reports whether k is a known platform kind.
func (k PlatformKind) Valid() bool {
	switch k {
	case PlatformSolid, PlatformJumpThrough, PlatformMoving, PlatformBreakable, PlatformSpikes:
		return true
	}
	return false
}

// Blocks reports whether bodies are pushed out of platforms of this kind.
func (k PlatformKind) Blocks() bool {
	return k == PlatformSolid || k == PlatformMoving || k == PlatformBreakable
}

// Axis is the direction a moving platform travels along.
type Axis string

const (
	AxisHorizontal Axis = "horizontal"
	AxisVertical   Axis = "vertical"
)
