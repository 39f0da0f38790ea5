package core

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/automoto/slimebrawl/components"
	"github.com/automoto/slimebrawl/config"
	"github.com/automoto/slimebrawl/shared/leveldata"
	"github.com/automoto/slimebrawl/systems"
	"github.com/automoto/slimebrawl/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// Events are the outcome signals of one tick.
type Events struct {
	PlayerHit       bool
	PlayerDied      bool
	PlayerRespawned bool
	EnemiesKilled   int
	BlastsFired     int
}

// Option configures a Game.
type Option func(*Game)

// WithSeed fixes the random source used for enemy directions, particles and
// screen shake.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.seed = seed
	}
}

// Game owns one play session: the world, the player, enemies and camera. It
// is driven by calling Update once per tick and must not be shared between
// goroutines without external locking.
type Game struct {
	level *leveldata.Level
	input systems.Input
	seed  uint64
	rng   *rand.Rand

	ecs    donburi.World
	world  *systems.World
	player *donburi.Entry
	camera *donburi.Entry

	tick         uint64
	paused       bool
	dead         bool
	deathTimer   int
	overlay      *gween.Tween
	overlayAlpha float64
}

// NewGame validates the active configuration and builds a session for level.
// input may be nil, which reads as no input.
func NewGame(level *leveldata.Level, input systems.Input, opts ...Option) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	g := &Game{
		input: input,
		seed:  uint64(config.C.Seed),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.rng = rand.New(rand.NewPCG(g.seed, g.seed))

	if err := g.build(level); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	return g, nil
}

// build replaces the session's world with a fresh one for level. On error
// the current world is left untouched.
func (g *Game) build(level *leveldata.Level) error {
	if level == nil {
		return fmt.Errorf("%w: no level", leveldata.ErrInvalidLevel)
	}
	phys, err := systems.NewPhysics(config.Physics)
	if err != nil {
		return err
	}
	ecs := donburi.NewWorld()
	world, err := systems.NewWorld(ecs, phys, level, g.rng)
	if err != nil {
		return err
	}
	player, err := factory.CreatePlayer(ecs, level.SpawnX, level.SpawnY)
	if err != nil {
		return err
	}
	if _, err := systems.SpawnEnemies(world, level.Enemies); err != nil {
		return err
	}

	camera := factory.CreateCamera(ecs)
	cam := components.Camera.Get(camera)
	systems.SetCameraBounds(cam, level.Width, level.Height)
	systems.SnapCameraTo(cam, components.Body.Get(player))

	g.level = level
	g.ecs = ecs
	g.world = world
	g.player = player
	g.camera = camera
	g.dead = false
	g.deathTimer = 0
	g.overlay = nil
	g.overlayAlpha = 0
	return nil
}

// Update advances the session by one tick and reports what happened. A
// paused game does nothing.
func (g *Game) Update() Events {
	var ev Events
	if g.paused {
		return ev
	}
	g.tick++

	if g.dead {
		g.updateDeath(&ev)
		return ev
	}

	in := systems.SampleInput(g.input)
	pr := systems.UpdatePlayer(g.player, in, g.world)
	if pr.Fired {
		ev.BlastsFired++
	}
	systems.UpdateMagicBlasts(g.world)
	systems.UpdateParticles(g.world)

	g.world.Update()
	cr := systems.CollidePlayer(g.player, g.world)

	er := systems.UpdateEnemies(g.world, g.player)
	systems.RemoveSpentBlasts(g.world)
	ev.PlayerHit = cr.Hit || er.PlayerHit
	ev.EnemiesKilled = er.Killed

	systems.UpdatePlayerState(g.player)
	systems.UpdateCamera(g.world, g.player)

	body := components.Body.Get(g.player)
	fell := body.Y > g.world.Height()+config.DeathZone.Margin
	if fell || components.Health.Get(g.player).Dead() {
		g.killPlayer(fell)
		ev.PlayerDied = true
	}
	return ev
}

func (g *Game) killPlayer(fell bool) {
	body := components.Body.Get(g.player)
	components.Health.Get(g.player).Current = 0
	body.SpeedX, body.SpeedY = 0, 0

	g.dead = true
	g.deathTimer = 0
	g.overlay = gween.New(0, float32(config.DeathZone.OverlayOpacity), float32(config.DeathZone.OverlayFrames), ease.OutQuad)
	g.overlayAlpha = 0
	systems.ShakeCamera(components.ScreenShake.Get(g.camera), config.ScreenShake.DeathIntensity, config.ScreenShake.DeathDuration)

	cause := "health"
	if fell {
		cause = "fall"
	}
	log.Printf("[game] player died (%s) at (%.0f, %.0f) on tick %d", cause, body.X, body.Y, g.tick)
}

func (g *Game) updateDeath(ev *Events) {
	g.deathTimer++
	if g.overlay != nil {
		alpha, _ := g.overlay.Update(1)
		g.overlayAlpha = float64(alpha)
	}
	systems.UpdateShake(components.ScreenShake.Get(g.camera), g.rng)
	systems.UpdateParticles(g.world)

	if g.deathTimer >= config.DeathZone.RespawnFrames {
		g.respawn()
		ev.PlayerRespawned = true
	}
}

func (g *Game) respawn() {
	systems.ResetPlayer(g.player, g.world)
	systems.SnapCameraTo(components.Camera.Get(g.camera), components.Body.Get(g.player))
	g.dead = false
	g.deathTimer = 0
	g.overlay = nil
	g.overlayAlpha = 0
	log.Printf("[game] player respawned on tick %d", g.tick)
}

// Restart puts the player back at spawn, repopulates the level's enemies and
// returns the camera to the origin.
func (g *Game) Restart() error {
	systems.ResetPlayer(g.player, g.world)
	systems.ClearEnemies(g.world)
	systems.ClearParticles(g.world)
	if _, err := systems.SpawnEnemies(g.world, g.level.Enemies); err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	systems.SnapCamera(components.Camera.Get(g.camera), 0, 0)
	g.dead = false
	g.deathTimer = 0
	g.overlay = nil
	g.overlayAlpha = 0
	log.Printf("[game] restarted %q", g.level.Name)
	return nil
}

// ReloadLevel rebuilds the session around a new layout. The current world is
// kept if the layout is rejected.
func (g *Game) ReloadLevel(level *leveldata.Level) error {
	if err := g.build(level); err != nil {
		return fmt.Errorf("reload level: %w", err)
	}
	log.Printf("[game] reloaded %q", level.Name)
	return nil
}

func (g *Game) Pause()       { g.paused = true }
func (g *Game) Resume()      { g.paused = false }
func (g *Game) Paused() bool { return g.paused }

// TogglePause flips the pause state and returns the new one.
func (g *Game) TogglePause() bool {
	g.paused = !g.paused
	return g.paused
}

// SetInput swaps the intent source read on the next tick.
func (g *Game) SetInput(in systems.Input) { g.input = in }

func (g *Game) Level() *leveldata.Level { return g.level }
func (g *Game) World() *systems.World   { return g.world }
func (g *Game) Player() *donburi.Entry  { return g.player }
func (g *Game) Tick() uint64            { return g.tick }
