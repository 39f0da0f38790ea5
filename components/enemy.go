package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	TypeName string

	Direction      int // -1 or 1
	StartX         float64
	Speed          float64
	PatrolDistance float64

	AttackRange    float64
	AttackCooldown Countdown
	Damage         int

	ProbeAhead float64
	ProbeBelow float64

	DeathDuration int
	DeathBounce   float64

	Dead      bool
	LastSwing int // Player swing that last hit this enemy
}

var Enemy = donburi.NewComponentType[EnemyData]()
