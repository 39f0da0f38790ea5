package archetypes

import (
	"slices"

	"github.com/automoto/slimebrawl/components"
	"github.com/automoto/slimebrawl/tags"
	"github.com/yohamta/donburi"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
		components.Platform,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Object,
		components.Health,
		components.State,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Body,
		components.Object,
		components.Health,
		components.State,
		components.Death,
	)
	MagicBlast = newArchetype(
		tags.MagicBlast,
		components.MagicBlast,
		components.Body,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
		components.ScreenShake,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		slices.Concat(a.components, cs)...,
	))
	return e
}
