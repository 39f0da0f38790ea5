package factory

import (
	"github.com/automoto/slimebrawl/archetypes"
	"github.com/automoto/slimebrawl/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// SpaceOf returns the world's broadphase space.
func SpaceOf(w donburi.World) *resolv.Space {
	return components.Space.Get(components.Space.MustFirst(w))
}
