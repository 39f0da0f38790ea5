package systems

import (
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/automoto/slimebrawl/components"
	"github.com/automoto/slimebrawl/config"
	"github.com/automoto/slimebrawl/shared/gamemath"
	"github.com/automoto/slimebrawl/shared/leveldata"
	"github.com/automoto/slimebrawl/systems/factory"
	"github.com/automoto/slimebrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

const (
	spaceCellSize = 16
	// Extra space below the world so falling bodies stay queryable.
	spaceFloorMargin = 200
	// Query boxes are grown by this much so shallow overlaps near cell
	// boundaries are never missed by the broadphase.
	queryPadding = 2
)

// SpikeMode selects how a body reacts to spike platforms.
type SpikeMode int

const (
	// SpikesHurt lets the body pass through and reports damage.
	SpikesHurt SpikeMode = iota
	// SpikesSolid treats spikes as ordinary ground.
	SpikesSolid
)

// World owns the platforms, the broadphase space and the per-session random
// source. Entities live in the donburi world it wraps.
type World struct {
	ecs     donburi.World
	space   *resolv.Space
	physics *Physics
	probe   *resolv.Object
	rng     *rand.Rand

	width, height  float64
	spawnX, spawnY float64
	nextPlatformID int
}

var platformQuery = donburi.NewQuery(filter.Contains(tags.Platform, components.Platform))

// NewWorld builds the space and platforms described by level inside w.
func NewWorld(w donburi.World, physics *Physics, level *leveldata.Level, rng *rand.Rand) (*World, error) {
	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("new world %s: %w", level.Name, err)
	}

	spaceW := int(math.Ceil(level.Width))
	spaceH := int(math.Ceil(level.Height + config.DeathZone.Margin + spaceFloorMargin))
	factory.CreateSpace(w, spaceW, spaceH, spaceCellSize, spaceCellSize)

	world := &World{
		ecs:     w,
		space:   factory.SpaceOf(w),
		physics: physics,
		rng:     rng,
		width:   level.Width,
		height:  level.Height,
		spawnX:  level.SpawnX,
		spawnY:  level.SpawnY,
	}
	world.probe = resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	world.space.Add(world.probe)

	for _, spec := range level.Platforms {
		if _, err := world.AddPlatform(spec); err != nil {
			return nil, err
		}
	}

	log.Printf("[world] built %q: %.0fx%.0f, %d platforms", level.Name, level.Width, level.Height, len(level.Platforms))
	return world, nil
}

func (w *World) ECS() donburi.World            { return w.ecs }
func (w *World) Space() *resolv.Space          { return w.space }
func (w *World) Physics() *Physics             { return w.physics }
func (w *World) Rand() *rand.Rand              { return w.rng }
func (w *World) Width() float64                { return w.width }
func (w *World) Height() float64               { return w.height }
func (w *World) SpawnPosition() (x, y float64) { return w.spawnX, w.spawnY }

// AddPlatform validates spec and adds it to the live set.
func (w *World) AddPlatform(spec leveldata.PlatformSpec) (*donburi.Entry, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("add platform: %w", err)
	}
	w.nextPlatformID++
	return factory.CreatePlatform(w.ecs, w.nextPlatformID, spec), nil
}

// RemovePlatform drops the platform with the given id. Bodies standing on it
// fall on their next collision pass.
func (w *World) RemovePlatform(id int) bool {
	var found *donburi.Entry
	platformQuery.Each(w.ecs, func(e *donburi.Entry) {
		if components.Platform.Get(e).ID == id {
			found = e
		}
	})
	if found == nil {
		return false
	}
	w.space.Remove(components.Object.Get(found).Object)
	w.ecs.Remove(found.Entity())
	return true
}

// Platforms returns the live platforms in creation order.
func (w *World) Platforms() []*donburi.Entry {
	var out []*donburi.Entry
	platformQuery.Each(w.ecs, func(e *donburi.Entry) {
		out = append(out, e)
	})
	sort.Slice(out, func(i, j int) bool {
		return components.Platform.Get(out[i]).ID < components.Platform.Get(out[j]).ID
	})
	return out
}

// Update advances moving platforms. Each one travels along its axis and
// reverses on reaching the edge of its range; it is clamped so it never
// passes it.
func (w *World) Update() {
	platformQuery.Each(w.ecs, func(e *donburi.Entry) {
		pd := components.Platform.Get(e)
		pd.DeltaX, pd.DeltaY = 0, 0
		if pd.Kind != config.PlatformMoving {
			return
		}
		obj := components.Object.Get(e)

		offset := pd.Offset(obj.X, obj.Y) + pd.MoveSpeed*float64(pd.MoveDirection)
		if offset >= pd.MoveRange {
			offset = pd.MoveRange
			pd.MoveDirection = -1
		} else if offset <= -pd.MoveRange {
			offset = -pd.MoveRange
			pd.MoveDirection = 1
		}

		if pd.Axis == config.AxisVertical {
			y := pd.OriginY + offset
			pd.DeltaY = y - obj.Y
			obj.Y = y
		} else {
			x := pd.OriginX + offset
			pd.DeltaX = x - obj.X
			obj.X = x
		}
		obj.Update()
	})
}

type candidate struct {
	obj  *resolv.Object
	data *components.PlatformData
	dist float64
}

// query returns objects with the given tags whose cells touch r, padded so
// touching and barely-overlapping objects are included.
func (w *World) query(r gamemath.Rect, tag string) []*resolv.Object {
	w.probe.X = r.X - queryPadding
	w.probe.Y = r.Y - queryPadding
	w.probe.W = r.W + 2*queryPadding
	w.probe.H = r.H + 2*queryPadding
	w.probe.Update()

	col := w.probe.Check(0, 0, tag)
	if col == nil {
		return nil
	}
	return col.ObjectsByTags(tag)
}

// platformsNear returns platforms around r, nearest first by Manhattan
// distance between centers, then by creation order.
func (w *World) platformsNear(r gamemath.Rect) []candidate {
	objs := w.query(r, tags.ResolvPlatform)
	out := make([]candidate, 0, len(objs))
	for _, obj := range objs {
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || !e.Valid() {
			continue
		}
		ob := components.ObjectData{Object: obj}.Bounds()
		out = append(out, candidate{
			obj:  obj,
			data: components.Platform.Get(e),
			dist: gamemath.Manhattan(r.CenterX(), r.CenterY(), ob.CenterX(), ob.CenterY()),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].dist != out[j].dist {
			return out[i].dist < out[j].dist
		}
		return out[i].data.ID < out[j].data.ID
	})
	return out
}

// Step returns the per-sub-step resolver used during integration. It applies
// blocking and landing policy only; spikes never hurt from here.
func (w *World) Step(mode SpikeMode) StepFunc {
	return func(b *components.BodyData) {
		w.resolve(b, mode, nil)
	}
}

// CheckCollisions is the full platform pass after a body has moved: riders
// are carried, grounded state is recomputed, policy is applied per platform
// kind and resting contact is detected. hurt receives spike damage for
// bodies in SpikesHurt mode and may be nil.
func (w *World) CheckCollisions(b *components.BodyData, mode SpikeMode, hurt func(damage int)) {
	w.carry(b)
	b.Leave()
	w.resolve(b, mode, hurt)
	w.settle(b, mode)
}

func (w *World) carry(b *components.BodyData) {
	if b.Ground == nil {
		return
	}
	e, ok := b.Ground.Data.(*donburi.Entry)
	if !ok || !e.Valid() || !e.HasComponent(components.Platform) {
		return
	}
	pd := components.Platform.Get(e)
	b.X += pd.DeltaX
	b.Y += pd.DeltaY
}

func (w *World) resolve(b *components.BodyData, mode SpikeMode, hurt func(int)) {
	for _, c := range w.platformsNear(b.Bounds()) {
		ob := components.ObjectData{Object: c.obj}
		if !w.physics.CheckCollision(b, ob) {
			continue
		}
		switch {
		case c.data.Kind == config.PlatformSpikes && mode == SpikesHurt:
			if hurt != nil {
				hurt(config.Platform.SpikeDamage)
			}
		case c.data.Kind == config.PlatformJumpThrough:
			// One-way: only a falling body whose bottom started the tick at
			// or above the top lands.
			if b.SpeedY > 0 && b.PrevY+b.H <= c.obj.Y {
				b.Y = c.obj.Y - b.H - w.physics.cfg.ResolveBuffer
				b.Land(c.obj)
			}
		default:
			if w.physics.ResolveCollision(b, ob) == ContactTop {
				b.Ground = c.obj
			}
		}
	}
}

// supports reports whether a platform of kind can be stood on.
func supports(kind config.PlatformKind, mode SpikeMode) bool {
	if kind == config.PlatformSpikes {
		return mode == SpikesSolid
	}
	return true
}

// settle grounds a body resting within the probe distance above a
// supporting platform, which resolution alone leaves separated by the
// buffer.
func (w *World) settle(b *components.BodyData, mode SpikeMode) {
	if b.OnGround || b.SpeedY < 0 {
		return
	}
	probe := w.physics.cfg.GroundProbe
	feet := gamemath.Rect{X: b.X, Y: b.Bottom(), W: b.W, H: probe}
	for _, c := range w.platformsNear(feet) {
		if !supports(c.data.Kind, mode) {
			continue
		}
		top := c.obj.Y
		gap := top - b.Bottom()
		overlapX := b.X < c.obj.X+c.obj.W && b.Right() > c.obj.X
		if overlapX && gap >= -1e-9 && gap <= probe {
			b.Land(c.obj)
			return
		}
	}
}

// GroundAt reports whether any platform contains the point, edges included.
func (w *World) GroundAt(x, y float64) bool {
	for _, obj := range w.query(gamemath.Rect{X: x, Y: y}, tags.ResolvPlatform) {
		if (components.ObjectData{Object: obj}).Bounds().ContainsPoint(x, y) {
			return true
		}
	}
	return false
}

// enemiesNear returns live enemy entries whose proxies are around r.
func (w *World) enemiesNear(r gamemath.Rect) []*donburi.Entry {
	objs := w.query(r, tags.ResolvEnemy)
	out := make([]*donburi.Entry, 0, len(objs))
	for _, obj := range objs {
		if e, ok := obj.Data.(*donburi.Entry); ok && e.Valid() {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Entity() < out[j].Entity() })
	return out
}
