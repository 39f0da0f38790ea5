package factory

import (
	"github.com/automoto/slimebrawl/archetypes"
	"github.com/automoto/slimebrawl/components"
	"github.com/automoto/slimebrawl/config"
	"github.com/yohamta/donburi"
)

// CreateMagicBlast spawns a blast at (x, y) travelling in direction.
// Blasts never enter the broadphase space; hits are tested against enemies.
func CreateMagicBlast(w donburi.World, owner donburi.Entity, x, y float64, direction int) *donburi.Entry {
	b := archetypes.MagicBlast.Spawn(w)

	if direction >= 0 {
		direction = 1
	} else {
		direction = -1
	}

	components.Body.SetValue(b, components.BodyData{
		X:      x,
		Y:      y,
		W:      config.MagicBlast.Width,
		H:      config.MagicBlast.Height,
		SpeedX: config.MagicBlast.Speed * float64(direction),
		PrevX:  x,
		PrevY:  y,
	})
	components.MagicBlast.SetValue(b, components.MagicBlastData{
		Owner:       owner,
		Direction:   direction,
		Speed:       config.MagicBlast.Speed,
		StartX:      x,
		MaxDistance: config.MagicBlast.MaxDistance,
		Damage:      config.MagicBlast.Damage,
		Active:      true,
	})

	return b
}
