package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/slimebrawl/shared/leveldata"
)

// LevelsDir is the directory inside FS holding the shipped TMX levels.
const LevelsDir = "levels"

// DefaultLevel is loaded when no level is named on the command line.
const DefaultLevel = "meadow"

var (
	//go:embed all:levels
	FS embed.FS
)

// LoadLevels parses every embedded level, returning them keyed by name along
// with the sorted names.
func LoadLevels() (map[string]*leveldata.Level, []string, error) {
	return leveldata.LoadAll(FS, LevelsDir)
}

// LoadLevel parses one embedded level by name.
func LoadLevel(name string) (*leveldata.Level, error) {
	return leveldata.Load(FS, LevelsDir+"/"+name+".tmx")
}

// MustLoadLevel is LoadLevel for shipped levels, which are expected to be
// valid. It panics otherwise.
func MustLoadLevel(name string) *leveldata.Level {
	level, err := LoadLevel(name)
	if err != nil {
		panic(fmt.Sprintf("embedded level %s: %v", name, err))
	}
	return level
}
