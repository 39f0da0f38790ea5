package systems

import (
	"cmp"
	"slices"

	"github.com/automoto/slimebrawl/components"
	cfg "github.com/automoto/slimebrawl/config"
	"github.com/automoto/slimebrawl/systems/factory"
	"github.com/automoto/slimebrawl/tags"
	"github.com/yohamta/donburi"
)

// FireMagicBlast spawns a blast at the owner's leading edge, vertically
// centered, travelling the way the owner faces.
func FireMagicBlast(w *World, owner *donburi.Entry) *donburi.Entry {
	player := components.Player.Get(owner)
	body := components.Body.Get(owner)

	x := body.Right()
	if player.Facing < 0 {
		x = body.X - cfg.MagicBlast.Width
	}
	y := body.CenterY() - cfg.MagicBlast.Height/2

	blast := factory.CreateMagicBlast(w.ECS(), owner.Entity(), x, y, player.Facing)
	player.Projectiles = append(player.Projectiles, blast.Entity())
	return blast
}

// UpdateMagicBlasts moves every active blast and emits its particle trail.
// A blast deactivates once it has covered its maximum distance.
func UpdateMagicBlasts(w *World) {
	tags.MagicBlast.Each(w.ECS(), func(e *donburi.Entry) {
		blast := components.MagicBlast.Get(e)
		if !blast.Active {
			return
		}
		body := components.Body.Get(e)

		body.PrevX, body.PrevY = body.X, body.Y
		body.X += blast.Speed * float64(blast.Direction)
		blast.Traveled += blast.Speed
		blast.Age++

		if blast.Traveled >= blast.MaxDistance {
			blast.Destroy()
			return
		}
		if every := cfg.MagicBlast.ParticleEvery; every > 0 && blast.Age%every == 0 {
			emitTrail(w, body)
		}
	})
}

func emitTrail(w *World, body *components.BodyData) {
	if ParticleCount(w) >= cfg.Particle.MaxCount {
		return
	}
	rng := w.Rand()
	spread := cfg.Particle.MaxSpeed
	size := cfg.Particle.MinSize + rng.Float64()*(cfg.Particle.MaxSize-cfg.Particle.MinSize)
	factory.CreateParticle(w.ECS(), components.ParticleData{
		X:      body.X + rng.Float64()*body.W,
		Y:      body.Y + rng.Float64()*body.H,
		SpeedX: (rng.Float64()*2 - 1) * spread,
		SpeedY: (rng.Float64()*2 - 1) * spread,
		Size:   size,
		Life:   cfg.Particle.Life,
	})
}

// RemoveSpentBlasts deletes inactive blasts and forgets them on their owner.
func RemoveSpentBlasts(w *World) int {
	var spent []*donburi.Entry
	tags.MagicBlast.Each(w.ECS(), func(e *donburi.Entry) {
		if !components.MagicBlast.Get(e).Active {
			spent = append(spent, e)
		}
	})
	for _, e := range spent {
		removeBlast(w, e)
	}
	return len(spent)
}

// ClearBlasts removes every blast owned by owner, live or not.
func ClearBlasts(w *World, owner *donburi.Entry) {
	var owned []*donburi.Entry
	tags.MagicBlast.Each(w.ECS(), func(e *donburi.Entry) {
		if components.MagicBlast.Get(e).Owner == owner.Entity() {
			owned = append(owned, e)
		}
	})
	for _, e := range owned {
		removeBlast(w, e)
	}
	components.Player.Get(owner).Projectiles = nil
}

func removeBlast(w *World, e *donburi.Entry) {
	owner := components.MagicBlast.Get(e).Owner
	if w.ECS().Valid(owner) && w.ECS().Entry(owner).HasComponent(components.Player) {
		p := components.Player.Get(w.ECS().Entry(owner))
		p.Projectiles = slices.DeleteFunc(p.Projectiles, func(id donburi.Entity) bool {
			return id == e.Entity()
		})
	}
	w.ECS().Remove(e.Entity())
}

// ActiveBlasts returns the live blasts in spawn order.
func ActiveBlasts(w *World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.MagicBlast.Each(w.ECS(), func(e *donburi.Entry) {
		if components.MagicBlast.Get(e).Active {
			out = append(out, e)
		}
	})
	slices.SortFunc(out, func(a, b *donburi.Entry) int {
		return cmp.Compare(a.Entity(), b.Entity())
	})
	return out
}
