package components

import "github.com/yohamta/donburi"

// MagicBlastData tracks a ranged projectile. Its box lives in BodyData.
type MagicBlastData struct {
	Owner       donburi.Entity
	Direction   int
	Speed       float64
	StartX      float64
	Traveled    float64
	MaxDistance float64
	Damage      int
	Active      bool
	Age         int
}

var MagicBlast = donburi.NewComponentType[MagicBlastData]()

// Destroy deactivates the blast. It never reactivates.
func (m *MagicBlastData) Destroy() { m.Active = false }
