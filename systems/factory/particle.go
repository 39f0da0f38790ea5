package factory

import (
	"github.com/automoto/slimebrawl/archetypes"
	"github.com/automoto/slimebrawl/components"
	"github.com/yohamta/donburi"
)

func CreateParticle(w donburi.World, p components.ParticleData) *donburi.Entry {
	e := archetypes.Particle.Spawn(w)
	if p.MaxLife == 0 {
		p.MaxLife = p.Life
	}
	components.Particle.SetValue(e, p)
	return e
}
