package core

import (
	"github.com/automoto/slimebrawl/components"
	"github.com/automoto/slimebrawl/config"
	"github.com/automoto/slimebrawl/systems"
	"github.com/automoto/slimebrawl/tags"
	"github.com/yohamta/donburi"
)

type PlayerView struct {
	X, Y, W, H     float64
	SpeedX, SpeedY float64
	Facing         int
	OnGround       bool
	State          config.StateID
	Attack         config.AttackKind
	Attacking      bool
	Invulnerable   bool
	Dead           bool
	Health         int
	MaxHealth      int
}

type EnemyView struct {
	X, Y, W, H float64
	SpeedY     float64
	Type       string
	Direction  int
	State      config.StateID
	Health     int
	Dead       bool
	DeathTimer int
	Alpha      float64 // 1 while alive, fading to 0 while dying
}

type PlatformView struct {
	ID         int
	X, Y, W, H float64
	Kind       config.PlatformKind
}

type BlastView struct {
	X, Y, W, H float64
	Direction  int
}

type ParticleView struct {
	X, Y    float64
	Size    float64
	Life    int
	MaxLife int
}

// CameraView is the visible world rectangle, shake included.
type CameraView struct {
	X, Y, W, H float64
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// It shares no memory with the game.
type Snapshot struct {
	Tick        uint64
	Level       string
	WorldWidth  float64
	WorldHeight float64
	Paused      bool
	Respawning  bool
	Overlay     float64 // Death overlay opacity

	Player    PlayerView
	Enemies   []EnemyView
	Platforms []PlatformView
	Blasts    []BlastView
	Particles []ParticleView
	Camera    CameraView
}

// Snapshot captures the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        g.tick,
		Level:       g.level.Name,
		WorldWidth:  g.world.Width(),
		WorldHeight: g.world.Height(),
		Paused:      g.paused,
		Respawning:  g.dead,
		Overlay:     g.overlayAlpha,
		Player:      playerView(g.player),
	}

	for _, e := range systems.Enemies(g.world) {
		s.Enemies = append(s.Enemies, enemyView(e))
	}
	for _, e := range g.world.Platforms() {
		obj := components.Object.Get(e)
		pd := components.Platform.Get(e)
		s.Platforms = append(s.Platforms, PlatformView{
			ID:   pd.ID,
			X:    obj.X,
			Y:    obj.Y,
			W:    obj.W,
			H:    obj.H,
			Kind: pd.Kind,
		})
	}
	for _, e := range systems.ActiveBlasts(g.world) {
		b := components.Body.Get(e)
		s.Blasts = append(s.Blasts, BlastView{
			X:         b.X,
			Y:         b.Y,
			W:         b.W,
			H:         b.H,
			Direction: components.MagicBlast.Get(e).Direction,
		})
	}
	tags.Particle.Each(g.ecs, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		s.Particles = append(s.Particles, ParticleView{
			X:       p.X,
			Y:       p.Y,
			Size:    p.Size,
			Life:    p.Life,
			MaxLife: p.MaxLife,
		})
	})

	v := components.View(components.Camera.Get(g.camera), components.ScreenShake.Get(g.camera))
	s.Camera = CameraView{X: v.X, Y: v.Y, W: v.W, H: v.H}
	return s
}

func playerView(e *donburi.Entry) PlayerView {
	b := components.Body.Get(e)
	p := components.Player.Get(e)
	h := components.Health.Get(e)
	return PlayerView{
		X:            b.X,
		Y:            b.Y,
		W:            b.W,
		H:            b.H,
		SpeedX:       b.SpeedX,
		SpeedY:       b.SpeedY,
		Facing:       p.Facing,
		OnGround:     b.OnGround,
		State:        components.State.Get(e).CurrentState,
		Attack:       p.Attack,
		Attacking:    p.IsAttacking(),
		Invulnerable: p.Invulnerable(),
		Dead:         h.Dead(),
		Health:       h.Current,
		MaxHealth:    h.Max,
	}
}

func enemyView(e *donburi.Entry) EnemyView {
	b := components.Body.Get(e)
	en := components.Enemy.Get(e)
	alpha, timer := 1.0, 0
	if en.Dead {
		death := components.Death.Get(e)
		alpha, timer = death.Alpha, death.Timer
	}
	return EnemyView{
		X:          b.X,
		Y:          b.Y,
		W:          b.W,
		H:          b.H,
		SpeedY:     b.SpeedY,
		Type:       en.TypeName,
		Direction:  en.Direction,
		State:      components.State.Get(e).CurrentState,
		Health:     components.Health.Get(e).Current,
		Dead:       en.Dead,
		DeathTimer: timer,
		Alpha:      alpha,
	}
}
