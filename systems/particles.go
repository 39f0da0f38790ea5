package systems

import (
	"github.com/automoto/slimebrawl/components"
	cfg "github.com/automoto/slimebrawl/config"
	"github.com/automoto/slimebrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var particleQuery = donburi.NewQuery(filter.Contains(tags.Particle))

// UpdateParticles integrates every particle and drops the expired ones.
// Particles never touch collision or combat.
func UpdateParticles(w *World) {
	var expired []donburi.Entity
	tags.Particle.Each(w.ECS(), func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		p.X += p.SpeedX
		p.Y += p.SpeedY
		p.SpeedY += cfg.Particle.Gravity
		p.SpeedX *= cfg.Particle.Drag
		p.Life--
		if p.Life <= 0 {
			expired = append(expired, e.Entity())
		}
	})
	for _, id := range expired {
		w.ECS().Remove(id)
	}
}

func ParticleCount(w *World) int {
	return particleQuery.Count(w.ECS())
}

// ClearParticles removes all particles.
func ClearParticles(w *World) {
	var all []donburi.Entity
	tags.Particle.Each(w.ECS(), func(e *donburi.Entry) {
		all = append(all, e.Entity())
	})
	for _, id := range all {
		w.ECS().Remove(id)
	}
}
