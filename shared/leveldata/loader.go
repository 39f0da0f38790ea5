package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/slimebrawl/config"
	"github.com/lafriks/go-tiled"
)

// ErrNoLevels is returned when a levels directory holds no TMX files.
var ErrNoLevels = errors.New("no levels found")

// Object group names read from TMX files.
const (
	groupPlatforms = "Platforms"
	groupSpawns    = "Spawns"
	groupEnemies   = "Enemies"

	spawnPlayer = "player"
)

// Load parses a TMX file into a validated Level. It takes an fs.FS so callers
// can pass embed.FS (client) or os.DirFS (simulator, hot reload).
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupPlatforms:
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, PlatformSpec{
					X:         o.X,
					Y:         o.Y,
					W:         o.Width,
					H:         o.Height,
					Kind:      platformKind(o),
					MoveSpeed: o.Properties.GetFloat("move_speed"),
					MoveRange: o.Properties.GetFloat("move_range"),
					Axis:      config.Axis(o.Properties.GetString("axis")),
				})
			}
		case groupSpawns:
			for _, o := range og.Objects {
				if o.Name != spawnPlayer {
					continue
				}
				level.SpawnX, level.SpawnY = o.X, o.Y
				spawnFound = true
			}
		case groupEnemies:
			for _, o := range og.Objects {
				level.Enemies = append(level.Enemies, EnemySpawn{
					X:         o.X,
					Y:         o.Y,
					Type:      objectClass(o),
					Direction: o.Properties.GetInt("direction"),
				})
			}
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("%s: %w: missing %q spawn", tmxPath, ErrInvalidLevel, spawnPlayer)
	}

	// Spawn order is left to right so the population cap keeps the first enemies.
	sort.SliceStable(level.Enemies, func(i, j int) bool {
		return level.Enemies[i].X < level.Enemies[j].X
	})

	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}
	return level, nil
}

func objectClass(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // TMX uses type= attribute
}

func platformKind(o *tiled.Object) config.PlatformKind {
	if c := objectClass(o); c != "" {
		return config.PlatformKind(c)
	}
	return config.PlatformSolid
}

// LoadAll discovers all .tmx files in levelsDir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("%w in %s", ErrNoLevels, levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// LoadFile parses a TMX file from disk.
func LoadFile(path string) (*Level, error) {
	return Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}
