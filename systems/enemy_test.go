package systems

import (
	"math"
	"testing"

	"github.com/automoto/slimebrawl/components"
	"github.com/automoto/slimebrawl/config"
	"github.com/automoto/slimebrawl/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyDeathAndRemoval(t *testing.T) {
	w := newTestWorld(t, solid(0, 500, 800, 40))
	e := newTestEnemy(t, w, 400, 480, 1)
	enemy := components.Enemy.Get(e)
	death := components.Death.Get(e)

	require.True(t, DamageEnemy(e, 1))
	assert.True(t, enemy.Dead)
	assert.Zero(t, bodyOf(e).SpeedX)
	assert.Equal(t, enemy.DeathBounce, bodyOf(e).SpeedY)
	assert.Equal(t, config.StateDying, components.State.Get(e).CurrentState)
	assert.False(t, DamageEnemy(e, 1), "dead enemies take no further damage")

	duration := config.EnemyType(config.EnemySlime).DeathDuration
	for i := 1; i < duration; i++ {
		UpdateEnemies(w, nil)
		require.Equal(t, 1, EnemyCount(w), "tick %d", i)
	}
	assert.Less(t, death.Alpha, 0.1)
	assert.Greater(t, death.Alpha, 0.0)

	UpdateEnemies(w, nil)
	assert.Zero(t, EnemyCount(w))
	assert.False(t, e.Valid())
}

func TestEnemyCap(t *testing.T) {
	w := newTestWorld(t, solid(0, 500, 800, 40))
	for i := range config.Enemy.MaxEnemies {
		newTestEnemy(t, w, float64(50+i*80), 480, 1)
	}
	e, err := AddEnemy(w, 700, 480, config.EnemySlime, 1)
	assert.NoError(t, err)
	assert.Nil(t, e, "the manager declines past the cap")

	DamageEnemy(Enemies(w)[0], 10)
	e, _ = AddEnemy(w, 700, 480, config.EnemySlime, 1)
	assert.Nil(t, e, "dying enemies still count")

	for range 60 {
		UpdateEnemies(w, nil)
	}
	e, _ = AddEnemy(w, 700, 480, config.EnemySlime, 1)
	assert.NotNil(t, e)
}

func TestSpawnEnemiesStopsAtCap(t *testing.T) {
	w := newTestWorld(t, solid(0, 500, 800, 40))
	var spawns []leveldata.EnemySpawn
	for i := range 12 {
		spawns = append(spawns, leveldata.EnemySpawn{X: float64(i * 60), Y: 480, Type: config.EnemySlime})
	}
	n, err := SpawnEnemies(w, spawns)
	require.NoError(t, err)
	assert.Equal(t, config.Enemy.MaxEnemies, n)
	assert.Equal(t, config.Enemy.MaxEnemies, EnemyCount(w))
	for _, e := range Enemies(w) {
		dir := components.Enemy.Get(e).Direction
		assert.True(t, dir == 1 || dir == -1)
	}

	ClearEnemies(w)
	assert.Zero(t, EnemyCount(w))
}

func TestUnknownEnemyTypeFallsBack(t *testing.T) {
	w := newTestWorld(t)
	e, err := AddEnemy(w, 10, 10, "dragon", 1)
	require.NoError(t, err)
	assert.Equal(t, config.EnemySlime, components.Enemy.Get(e).TypeName)
}

func TestPatrolStaysNearSpawn(t *testing.T) {
	w := newTestWorld(t, solid(0, 500, 800, 40))
	e := newTestEnemy(t, w, 400, 480, 1)
	enemy := components.Enemy.Get(e)
	body := bodyOf(e)

	turned := false
	for range 1000 {
		UpdateEnemies(w, nil)
		off := body.X - enemy.StartX
		require.LessOrEqual(t, math.Abs(off), enemy.PatrolDistance+enemy.Speed+1e-9)
		if enemy.Direction == -1 {
			turned = true
		}
	}
	assert.True(t, turned)
	assert.True(t, body.OnGround)
}

func TestPatrolReversesTowardSpawn(t *testing.T) {
	w := newTestWorld(t, solid(0, 500, 800, 40))
	e := newTestEnemy(t, w, 400, 480, -1)
	enemy := components.Enemy.Get(e)
	body := bodyOf(e)

	// Knocked well past the right end of its range while facing right.
	body.X = 600
	enemy.Direction = 1
	for range 5 {
		UpdateEnemies(w, nil)
		assert.Equal(t, -1, enemy.Direction)
	}
	assert.Less(t, body.X, 600.0)
}

func TestEnemyTurnsAtLedge(t *testing.T) {
	w := newTestWorld(t, solid(300, 400, 100, 20))
	e := newTestEnemy(t, w, 360, 380, 1)
	body := bodyOf(e)

	for i := range 400 {
		UpdateEnemies(w, nil)
		require.GreaterOrEqual(t, body.X, 300.0-1e-9, "tick %d", i)
		require.LessOrEqual(t, body.Right(), 400.0+1e-9, "tick %d", i)
	}
	assert.True(t, body.OnGround)
	assert.InDelta(t, 379.9, body.Y, 1e-9)
}

func TestEnemyTurnsAtWorldEdge(t *testing.T) {
	w := newTestWorld(t, solid(0, 500, 800, 40))
	e := newTestEnemy(t, w, 2, 480, -1)
	// A spawn far off to the left keeps patrol pulling it into the edge.
	components.Enemy.Get(e).StartX = -500

	for range 10 {
		UpdateEnemies(w, nil)
	}
	assert.GreaterOrEqual(t, bodyOf(e).X, 0.0)
	assert.Equal(t, 1, components.Enemy.Get(e).Direction)
}

func TestEnemyStandsOnSpikes(t *testing.T) {
	w := newTestWorld(t, platformOf(config.PlatformSpikes, 0, 500, 800, 20))
	e := newTestEnemy(t, w, 400, 470, 1)
	for range 20 {
		UpdateEnemies(w, nil)
	}
	assert.True(t, bodyOf(e).OnGround)
	assert.False(t, components.Enemy.Get(e).Dead)
}

func TestEnemyFallingOutDies(t *testing.T) {
	w := newTestWorld(t)
	e := newTestEnemy(t, w, 400, 500, 1)

	killed := 0
	for range 60 {
		killed += UpdateEnemies(w, nil).Killed
		if killed > 0 {
			break
		}
	}
	require.Equal(t, 1, killed)
	require.True(t, e.Valid())
	assert.True(t, components.Enemy.Get(e).Dead)
	assert.Greater(t, bodyOf(e).Y, w.Height()+config.DeathZone.Margin)

	for range config.EnemyType(config.EnemySlime).DeathDuration {
		UpdateEnemies(w, nil)
	}
	assert.False(t, e.Valid())
	assert.Zero(t, EnemyCount(w))
}

func TestEnemyAttackRespectsCooldown(t *testing.T) {
	w := newTestWorld(t, solid(0, 500, 800, 40))
	p := newTestPlayer(t, w, 400, 459.9)
	e := newTestEnemy(t, w, 410, 480, 1)
	components.Enemy.Get(e).Speed = 0
	health := components.Health.Get(p)

	r := UpdateEnemies(w, p)
	assert.True(t, r.PlayerHit)
	assert.Equal(t, config.Player.MaxHealth-1, health.Current)
	assert.True(t, components.Enemy.Get(e).AttackCooldown.Active())
	assert.Equal(t, config.StateAttackCooldown, components.State.Get(e).CurrentState)

	components.Player.Get(p).InvulnTimer = 0
	r = UpdateEnemies(w, p)
	assert.False(t, r.PlayerHit, "the enemy is cooling down")
	assert.Equal(t, config.Player.MaxHealth-1, health.Current)
}

func TestEnemyIgnoresDistantPlayer(t *testing.T) {
	w := newTestWorld(t, solid(0, 500, 800, 40))
	p := newTestPlayer(t, w, 100, 459.9)
	newTestEnemy(t, w, 600, 480, 1)

	for range 30 {
		r := UpdateEnemies(w, p)
		require.False(t, r.PlayerHit)
	}
	assert.Equal(t, config.Player.MaxHealth, components.Health.Get(p).Current)
}

func TestMeleeHitsOncePerSwing(t *testing.T) {
	w := newTestWorld(t)
	p := newTestPlayer(t, w, 100, 100)
	e := newTestEnemy(t, w, 120, 110, 1)
	player := components.Player.Get(p)

	assert.False(t, meleeHits(p, e), "no swing yet")

	player.Attack = config.AttackPunch
	player.AttackTimer.Start(10)
	player.SwingID = 1
	assert.True(t, meleeHits(p, e))
	assert.False(t, meleeHits(p, e), "the same swing lands once")

	player.SwingID = 2
	assert.True(t, meleeHits(p, e))

	player.SwingID = 3
	player.Facing = -1
	assert.False(t, meleeHits(p, e), "enemies behind the player are safe")

	player.Facing = 1
	// centers 40 apart
	bodyOf(e).X = 142.5
	assert.False(t, meleeHits(p, e), "out of reach")
}

func TestMeleeReachIsMeasuredBetweenCenters(t *testing.T) {
	w := newTestWorld(t)
	p := newTestPlayer(t, w, 100, 100)
	player := components.Player.Get(p)
	player.Attack = config.AttackPunch
	player.AttackTimer.Start(10)

	tests := []struct {
		name string
		x, y float64
		hit  bool
	}{
		// player center (115, 120), slime 25x20
		{"center dx 38.5, left edges 41 apart", 141, 110, true},
		{"center dy 25, top edges 35 apart", 110, 135, true},
		{"center dx 40", 142.5, 110, false},
		{"center dy 30", 110, 140, false},
		{"left edges level", 100, 110, false},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnemy(t, w, tt.x, tt.y, 1)
			player.SwingID = i + 1
			assert.Equal(t, tt.hit, meleeHits(p, e))
		})
	}
}

func TestSwingsStillLandAfterReset(t *testing.T) {
	w := newTestWorld(t, solid(0, 500, 800, 40))
	p := newTestPlayer(t, w, 400, 459.9)
	e := newTestEnemy(t, w, 420, 479.9, 1)
	components.Enemy.Get(e).Speed = 0
	components.Health.Get(e).Current = 5
	player := components.Player.Get(p)

	player.Attack = config.AttackPunch
	player.AttackTimer.Start(10)
	player.SwingID++
	require.True(t, meleeHits(p, e))
	swing := player.SwingID

	ResetPlayer(p, w)
	player.Attack = config.AttackPunch
	player.AttackTimer.Start(10)
	player.SwingID++

	assert.Greater(t, player.SwingID, swing)
	assert.True(t, meleeHits(p, e), "the first swing after a reset is a new swing")
}

func TestDyingEnemyHoldsPosition(t *testing.T) {
	w := newTestWorld(t, solid(0, 500, 800, 40))
	e := newTestEnemy(t, w, 400, 479.9, 1)
	for range 5 {
		UpdateEnemies(w, nil)
	}
	require.True(t, bodyOf(e).OnGround)

	require.True(t, DamageEnemy(e, 1))
	x, y := bodyOf(e).X, bodyOf(e).Y
	for i := 1; i < config.EnemyType(config.EnemySlime).DeathDuration; i++ {
		UpdateEnemies(w, nil)
		require.Equal(t, x, bodyOf(e).X, "tick %d", i)
		require.Equal(t, y, bodyOf(e).Y, "tick %d", i)
	}
	assert.Equal(t, components.Enemy.Get(e).DeathBounce, bodyOf(e).SpeedY, "the bounce is left for rendering")
}

func TestPunchKillsEnemy(t *testing.T) {
	w := newTestWorld(t, solid(0, 500, 800, 40))
	p := newTestPlayer(t, w, 400, 459.9)
	e := newTestEnemy(t, w, 420, 479.9, 1)
	components.Enemy.Get(e).Speed = 0
	components.Player.Get(p).InvulnTimer.Start(1000)

	tickPlayer(w, p, InputState{Punch: true})
	r := UpdateEnemies(w, p)
	assert.Equal(t, 1, r.Killed)
	assert.True(t, components.Enemy.Get(e).Dead)
}

func TestBlastHitsFirstEnemyOnly(t *testing.T) {
	w := newTestWorld(t, solid(0, 500, 800, 40))
	p := newTestPlayer(t, w, 100, 459.9)
	front := newTestEnemy(t, w, 300, 480, 1)
	back := newTestEnemy(t, w, 310, 480, 1)
	components.Enemy.Get(front).Speed = 0
	components.Enemy.Get(back).Speed = 0

	blast := FireMagicBlast(w, p)
	bb := components.Body.Get(blast)
	bb.X, bb.Y = 295, 482

	r := UpdateEnemies(w, p)
	assert.Equal(t, 1, r.Killed)
	assert.False(t, components.MagicBlast.Get(blast).Active)
	assert.True(t, components.Enemy.Get(front).Dead)
	assert.False(t, components.Enemy.Get(back).Dead, "blasts do not pierce")

	assert.Equal(t, 1, RemoveSpentBlasts(w))
	assert.Empty(t, components.Player.Get(p).Projectiles)
}
