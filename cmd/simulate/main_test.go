package main

import (
	"testing"

	"github.com/automoto/slimebrawl/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptsAreDeterministic(t *testing.T) {
	for name := range scripts {
		t.Run(name, func(t *testing.T) {
			a, err := newScript(name, 7)
			require.NoError(t, err)
			b, err := newScript(name, 7)
			require.NoError(t, err)
			for tick := range uint64(300) {
				require.Equal(t, a(tick), b(tick), "tick %d", tick)
			}
		})
	}
}

func TestUnknownScript(t *testing.T) {
	_, err := newScript("moonwalk", 1)
	assert.Error(t, err)
}

func TestSimulateEmbeddedLevel(t *testing.T) {
	t.Cleanup(config.Reset)
	g, in, err := newGame("meadow", "runner", 3)
	require.NoError(t, err)

	sum := simulate(g, in, 600, 0)
	assert.Equal(t, 600, sum.Ticks)
	assert.Equal(t, uint64(600), g.Tick())
	assert.Positive(t, sum.Blasts)
	assert.LessOrEqual(t, sum.Respawns, sum.Deaths)
	assert.LessOrEqual(t, sum.Remaining, config.Enemy.MaxEnemies)
}

func TestSimulateIsRepeatable(t *testing.T) {
	t.Cleanup(config.Reset)
	run := func() summary {
		g, in, err := newGame("meadow", "random", 11)
		require.NoError(t, err)
		return simulate(g, in, 400, 0)
	}
	assert.Equal(t, run(), run())
}

func TestLoadLevelRejectsMissingFile(t *testing.T) {
	_, err := loadLevel("does/not/exist.tmx")
	assert.Error(t, err)

	_, err = loadLevel("nowhere")
	assert.Error(t, err)
}
