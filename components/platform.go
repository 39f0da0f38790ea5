package components

import (
	"github.com/automoto/slimebrawl/config"
	"github.com/yohamta/donburi"
)

// PlatformData is the behavior attached to a platform's resolv object.
type PlatformData struct {
	ID   int
	Kind config.PlatformKind

	// Moving platforms only.
	OriginX, OriginY float64
	MoveSpeed        float64
	MoveRange        float64
	MoveDirection    int
	Axis             config.Axis

	// Displacement applied during the current tick, carried onto riders.
	DeltaX, DeltaY float64
}

var Platform = donburi.NewComponentType[PlatformData]()

// Offset is the platform's distance from its origin along its axis.
func (p *PlatformData) Offset(x, y float64) float64 {
	if p.Axis == config.AxisVertical {
		return y - p.OriginY
	}
	return x - p.OriginX
}
