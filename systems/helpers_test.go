package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/slimebrawl/components"
	"github.com/automoto/slimebrawl/config"
	"github.com/automoto/slimebrawl/shared/leveldata"
	"github.com/automoto/slimebrawl/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func solid(x, y, w, h float64) leveldata.PlatformSpec {
	return leveldata.PlatformSpec{X: x, Y: y, W: w, H: h, Kind: config.PlatformSolid}
}

func platformOf(kind config.PlatformKind, x, y, w, h float64) leveldata.PlatformSpec {
	return leveldata.PlatformSpec{X: x, Y: y, W: w, H: h, Kind: kind}
}

// newTestWorld builds an 800x600 world with the given platforms. Config is
// restored to defaults when the test ends.
func newTestWorld(t testing.TB, platforms ...leveldata.PlatformSpec) *World {
	t.Helper()
	t.Cleanup(config.Reset)

	phys, err := NewPhysics(config.Physics)
	require.NoError(t, err)
	level := &leveldata.Level{
		Name:      "test",
		Width:     800,
		Height:    600,
		SpawnX:    100,
		SpawnY:    100,
		Platforms: platforms,
	}
	w, err := NewWorld(donburi.NewWorld(), phys, level, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	return w
}

func newTestPlayer(t testing.TB, w *World, x, y float64) *donburi.Entry {
	t.Helper()
	e, err := factory.CreatePlayer(w.ECS(), x, y)
	require.NoError(t, err)
	return e
}

func newTestEnemy(t testing.TB, w *World, x, y float64, dir int) *donburi.Entry {
	t.Helper()
	e, err := AddEnemy(w, x, y, config.EnemySlime, dir)
	require.NoError(t, err)
	require.NotNil(t, e)
	return e
}

// tickPlayer runs the player's share of a game tick.
func tickPlayer(w *World, e *donburi.Entry, in InputState) PlayerReport {
	r := UpdatePlayer(e, in, w)
	c := CollidePlayer(e, w)
	UpdatePlayerState(e)
	r.Hit = r.Hit || c.Hit
	r.Died = r.Died || c.Died
	return r
}

func bodyOf(e *donburi.Entry) *components.BodyData {
	return components.Body.Get(e)
}
