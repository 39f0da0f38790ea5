package scenes

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/slimebrawl/core"
	"github.com/automoto/slimebrawl/shared/filewatch"
	"github.com/automoto/slimebrawl/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlatformerScene runs a single game session: it feeds keyboard input to the
// game, ticks it once per frame and draws its snapshot.
type PlatformerScene struct {
	game  *core.Game
	input *KeyboardInput

	watcher *filewatch.Watcher
	mu      sync.Mutex
	pending *leveldata.Level
}

// NewPlatformerScene starts a session on level. When levelPath is not empty
// the file is watched and reloaded whenever it changes on disk.
func NewPlatformerScene(level *leveldata.Level, levelPath string, opts ...core.Option) (*PlatformerScene, error) {
	input := NewKeyboardInput()
	game, err := core.NewGame(level, input, opts...)
	if err != nil {
		return nil, err
	}
	ps := &PlatformerScene{game: game, input: input}

	if levelPath != "" {
		w, err := filewatch.New(levelPath)
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", levelPath, err)
		}
		ps.watcher = w
		go ps.watch()
		log.Printf("[scene] watching %s for changes", levelPath)
	}
	return ps, nil
}

// watch parses changed level files off the main thread. The newest parsed
// layout is applied on the next Update.
func (ps *PlatformerScene) watch() {
	for {
		select {
		case path, ok := <-ps.watcher.Events:
			if !ok {
				return
			}
			level, err := leveldata.LoadFile(path)
			if err != nil {
				log.Printf("[scene] ignoring %s: %v", path, err)
				continue
			}
			ps.mu.Lock()
			ps.pending = level
			ps.mu.Unlock()
		case err, ok := <-ps.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[scene] watcher error: %v", err)
		}
	}
}

func (ps *PlatformerScene) Update() {
	ps.applyPending()
	ps.input.Poll()

	if ps.input.JustPressed(ActionPause) {
		if ps.game.TogglePause() {
			log.Println("[scene] paused")
		} else {
			log.Println("[scene] resumed")
		}
	}
	if ps.input.JustPressed(ActionRestart) {
		if err := ps.game.Restart(); err != nil {
			log.Printf("[scene] restart failed: %v", err)
		}
		ps.game.Resume()
	}

	ps.game.Update()
}

func (ps *PlatformerScene) applyPending() {
	ps.mu.Lock()
	level := ps.pending
	ps.pending = nil
	ps.mu.Unlock()

	if level == nil {
		return
	}
	if err := ps.game.ReloadLevel(level); err != nil {
		log.Printf("[scene] hot reload rejected: %v", err)
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	s := ps.game.Snapshot()
	DrawWorld(screen, s)
	DrawDeathOverlay(screen, s)
	DrawHUD(screen, s)
}

// Close stops watching the level file.
func (ps *PlatformerScene) Close() error {
	if ps.watcher == nil {
		return nil
	}
	return ps.watcher.Close()
}
