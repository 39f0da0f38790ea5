package core

import (
	"log"
	"sync"
	"time"
)

// GameLoop drives a Game at a fixed tick rate on its own goroutine. All
// access to the game from other goroutines must go through Do.
type GameLoop struct {
	game     *Game
	tickRate int
	onTick   func(Events)

	mu       sync.Mutex
	running  bool
	paused   bool
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewGameLoop creates a loop for game. onTick, if set, is called with each
// tick's events while the loop holds the game.
func NewGameLoop(game *Game, tickRate int, onTick func(Events)) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		game:     game,
		tickRate: tickRate,
		onTick:   onTick,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start runs the loop in the background.
func (g *GameLoop) Start() {
	go g.Run()
}

// Run blocks, ticking the game until Stop is called.
func (g *GameLoop) Run() {
	g.mu.Lock()
	g.running = true
	g.mu.Unlock()
	defer close(g.done)

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[loop] started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.mu.Lock()
			g.running = false
			g.mu.Unlock()
			log.Println("[loop] stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

// Stop ends the loop and waits for the current tick to finish. It is safe to
// call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
	g.mu.Lock()
	running := g.running
	g.mu.Unlock()
	if running {
		<-g.done
	}
}

// Pause stops ticking the game without stopping the loop.
func (g *GameLoop) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.paused = true
}

func (g *GameLoop) Resume() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.paused = false
}

func (g *GameLoop) Running() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}

// Do runs fn with exclusive access to the game.
func (g *GameLoop) Do(fn func(*Game)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.game)
}

func (g *GameLoop) tick() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.paused {
		return
	}
	ev := g.game.Update()
	if g.onTick != nil {
		g.onTick(ev)
	}
}
