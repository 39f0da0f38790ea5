package assets

import (
	"testing"

	"github.com/automoto/slimebrawl/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShippedLevelsParse(t *testing.T) {
	levels, names, err := LoadLevels()
	require.NoError(t, err)
	require.Contains(t, names, DefaultLevel)

	meadow := levels[DefaultLevel]
	assert.Equal(t, 2400.0, meadow.Width)
	assert.Equal(t, 600.0, meadow.Height)
	assert.Equal(t, 100.0, meadow.SpawnX)
	assert.Equal(t, 510.0, meadow.SpawnY)
	assert.Len(t, meadow.Platforms, 28)
	assert.Len(t, meadow.Enemies, 7)

	kinds := map[config.PlatformKind]int{}
	for _, p := range meadow.Platforms {
		kinds[p.Kind]++
	}
	assert.Equal(t, 2, kinds[config.PlatformMoving])
	assert.Equal(t, 1, kinds[config.PlatformSpikes])
	assert.Equal(t, 1, kinds[config.PlatformBreakable])
	assert.Equal(t, 10, kinds[config.PlatformJumpThrough])
	assert.Equal(t, 14, kinds[config.PlatformSolid])
}

func TestMustLoadLevelPanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() { MustLoadLevel("nowhere") })
	assert.NotPanics(t, func() { MustLoadLevel(DefaultLevel) })
}
