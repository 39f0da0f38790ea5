package core

import (
	"testing"

	"github.com/automoto/slimebrawl/assets"
	"github.com/automoto/slimebrawl/components"
	"github.com/automoto/slimebrawl/config"
	"github.com/automoto/slimebrawl/shared/leveldata"
	"github.com/automoto/slimebrawl/systems"
	"github.com/automoto/slimebrawl/systems/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func floorLevel(spawnX, spawnY float64, enemies ...leveldata.EnemySpawn) *leveldata.Level {
	return &leveldata.Level{
		Name:   "floor",
		Width:  800,
		Height: 600,
		SpawnX: spawnX,
		SpawnY: spawnY,
		Platforms: []leveldata.PlatformSpec{
			{X: 0, Y: 500, W: 800, H: 40, Kind: config.PlatformSolid},
		},
		Enemies: enemies,
	}
}

func idleInput(t *testing.T) *mocks.MockInput {
	ctrl := gomock.NewController(t)
	in := mocks.NewMockInput(ctrl)
	in.EXPECT().IsLeftPressed().Return(false).AnyTimes()
	in.EXPECT().IsRightPressed().Return(false).AnyTimes()
	in.EXPECT().IsJumpPressed().Return(false).AnyTimes()
	in.EXPECT().IsPunchPressed().Return(false).AnyTimes()
	in.EXPECT().IsRangedPressed().Return(false).AnyTimes()
	return in
}

func newTestGame(t *testing.T, level *leveldata.Level, in systems.Input) *Game {
	t.Helper()
	t.Cleanup(config.Reset)
	g, err := NewGame(level, in, WithSeed(42))
	require.NoError(t, err)
	return g
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	t.Cleanup(config.Reset)
	config.Player.Width = 0
	_, err := NewGame(floorLevel(100, 460), nil)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestNewGameRejectsInvalidLevel(t *testing.T) {
	_, err := NewGame(&leveldata.Level{Name: "empty"}, nil)
	assert.ErrorIs(t, err, leveldata.ErrInvalidLevel)

	_, err = NewGame(nil, nil)
	assert.ErrorIs(t, err, leveldata.ErrInvalidLevel)
}

func TestGroundedPlayerStaysPut(t *testing.T) {
	g := newTestGame(t, floorLevel(100, 460), idleInput(t))
	body := components.Body.Get(g.Player())
	body.OnGround = true

	ev := g.Update()

	assert.Equal(t, Events{}, ev)
	assert.True(t, body.OnGround)
	assert.Zero(t, body.SpeedY)
	assert.Equal(t, 100.0, body.X)
	assert.Equal(t, 460.0, body.Y)
}

func TestPlayerFallsOntoPlatform(t *testing.T) {
	g := newTestGame(t, floorLevel(100, 0), idleInput(t))

	for range 120 {
		g.Update()
	}
	p := g.Snapshot().Player
	assert.True(t, p.OnGround)
	assert.Zero(t, p.SpeedY)
	assert.InDelta(t, 500-config.Player.Height, p.Y, 0.11)
	assert.Equal(t, config.Idle, p.State)
}

func TestFallingOutKillsAndRespawns(t *testing.T) {
	level := floorLevel(100, 100)
	level.Platforms[0].X = 400
	level.Platforms[0].W = 400
	g := newTestGame(t, level, idleInput(t))

	died := 0
	for range 200 {
		if g.Update().PlayerDied {
			died++
			break
		}
	}
	require.Equal(t, 1, died)
	s := g.Snapshot()
	assert.True(t, s.Respawning)
	assert.True(t, s.Player.Dead)
	assert.Equal(t, 0, s.Player.Health)

	for i := 1; i < config.DeathZone.RespawnFrames; i++ {
		ev := g.Update()
		require.False(t, ev.PlayerRespawned, "tick %d", i)
		require.False(t, ev.PlayerDied, "death is signalled once")
	}
	assert.InDelta(t, config.DeathZone.OverlayOpacity, g.Snapshot().Overlay, 1e-6)

	ev := g.Update()
	assert.True(t, ev.PlayerRespawned)
	s = g.Snapshot()
	assert.False(t, s.Respawning)
	assert.Zero(t, s.Overlay)
	assert.Equal(t, config.Player.MaxHealth, s.Player.Health)
	assert.Equal(t, 100.0, s.Player.X)
	assert.Equal(t, 100.0, s.Player.Y)
}

func TestEnemyCanKillPlayer(t *testing.T) {
	t.Cleanup(config.Reset)
	config.Player.MaxHealth = 1
	g := newTestGame(t, floorLevel(100, 460, leveldata.EnemySpawn{X: 110, Y: 480, Type: config.EnemySlime, Direction: 1}), nil)

	ev := g.Update()
	assert.True(t, ev.PlayerHit)
	assert.True(t, ev.PlayerDied)
	assert.True(t, g.Snapshot().Respawning)
}

func TestRangedAttackFiresAndKills(t *testing.T) {
	g := newTestGame(t, floorLevel(100, 460, leveldata.EnemySpawn{X: 300, Y: 480, Type: config.EnemySlime, Direction: 1}), nil)

	g.SetInput(systems.InputState{Ranged: true})
	ev := g.Update()
	assert.Equal(t, 1, ev.BlastsFired)
	require.Len(t, g.Snapshot().Blasts, 1)

	g.SetInput(nil)
	killed := 0
	for range 40 {
		killed += g.Update().EnemiesKilled
	}
	assert.Equal(t, 1, killed)
	s := g.Snapshot()
	assert.Empty(t, s.Blasts, "the blast is spent on its hit")
	require.Len(t, s.Enemies, 1)
	assert.True(t, s.Enemies[0].Dead)
	assert.Less(t, s.Enemies[0].Alpha, 1.0)
}

func TestPauseFreezesTheGame(t *testing.T) {
	g := newTestGame(t, floorLevel(100, 0), nil)
	g.Update()
	g.Pause()
	assert.True(t, g.Paused())

	before := g.Snapshot()
	for range 10 {
		assert.Equal(t, Events{}, g.Update())
	}
	after := g.Snapshot()
	assert.Equal(t, before, after)

	assert.False(t, g.TogglePause())
	g.Update()
	assert.NotEqual(t, before.Player.Y, g.Snapshot().Player.Y)
}

func TestRestart(t *testing.T) {
	level := floorLevel(100, 460,
		leveldata.EnemySpawn{X: 300, Y: 480, Type: config.EnemySlime, Direction: 1},
		leveldata.EnemySpawn{X: 600, Y: 480, Type: config.EnemySlime, Direction: -1},
	)
	g := newTestGame(t, level, nil)

	g.SetInput(systems.InputState{Right: true})
	for range 30 {
		g.Update()
	}
	systems.ClearEnemies(g.World())
	require.Empty(t, g.Snapshot().Enemies)

	require.NoError(t, g.Restart())
	s := g.Snapshot()
	assert.Equal(t, 100.0, s.Player.X)
	assert.Equal(t, 460.0, s.Player.Y)
	assert.Len(t, s.Enemies, 2)
	assert.Zero(t, s.Camera.X)
	assert.Zero(t, s.Camera.Y)
}

func TestReloadLevel(t *testing.T) {
	g := newTestGame(t, floorLevel(100, 460), nil)
	require.Len(t, g.Snapshot().Platforms, 1)

	next := floorLevel(50, 300)
	next.Name = "two"
	next.Platforms = append(next.Platforms, leveldata.PlatformSpec{X: 0, Y: 340, W: 200, H: 20, Kind: config.PlatformJumpThrough})
	require.NoError(t, g.ReloadLevel(next))

	s := g.Snapshot()
	assert.Equal(t, "two", s.Level)
	assert.Len(t, s.Platforms, 2)
	assert.Equal(t, 50.0, s.Player.X)

	bad := floorLevel(0, 0)
	bad.Platforms[0].Kind = "lava"
	assert.ErrorIs(t, g.ReloadLevel(bad), leveldata.ErrInvalidLevel)
	assert.Equal(t, "two", g.Snapshot().Level, "a rejected layout keeps the current world")
}

func TestSameSeedSameRun(t *testing.T) {
	level, err := assets.LoadLevel(assets.DefaultLevel)
	require.NoError(t, err)

	run := func() Snapshot {
		g := newTestGame(t, level, nil)
		for i := range 300 {
			g.SetInput(systems.InputState{
				Right:  i%90 < 60,
				Left:   i%90 >= 75,
				Jump:   i%40 < 5,
				Punch:  i%25 == 0,
				Ranged: i%33 == 0,
			})
			g.Update()
		}
		return g.Snapshot()
	}
	assert.Equal(t, run(), run())
}

func TestDefaultLevelHoldsInvariants(t *testing.T) {
	level, err := assets.LoadLevel(assets.DefaultLevel)
	require.NoError(t, err)
	g := newTestGame(t, level, nil)

	moving := map[int]leveldata.PlatformSpec{}
	for i, p := range g.Snapshot().Platforms {
		if p.Kind == config.PlatformMoving {
			moving[p.ID] = level.Platforms[i]
		}
	}
	require.NotEmpty(t, moving)

	for i := range 1200 {
		g.SetInput(systems.InputState{Right: true, Jump: i%30 < 3, Punch: i%20 == 0, Ranged: i%45 == 0})
		g.Update()
		s := g.Snapshot()

		require.GreaterOrEqual(t, s.Player.Health, 0)
		require.LessOrEqual(t, s.Player.Health, s.Player.MaxHealth)
		require.Contains(t, []int{-1, 1}, s.Player.Facing)
		require.LessOrEqual(t, len(s.Enemies), config.Enemy.MaxEnemies)
		require.GreaterOrEqual(t, s.Camera.X, -config.ScreenShake.DeathIntensity)
		for _, p := range s.Platforms {
			if spec, ok := moving[p.ID]; ok {
				off := max(abs(p.X-spec.X), abs(p.Y-spec.Y))
				require.LessOrEqual(t, off, spec.MoveRange+1e-9, "platform %d on tick %d", p.ID, i)
			}
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
