package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/automoto/slimebrawl/assets"
	"github.com/automoto/slimebrawl/config"
	"github.com/automoto/slimebrawl/core"
	"github.com/automoto/slimebrawl/shared/leveldata"
)

type summary struct {
	Ticks     int
	Hits      int
	Deaths    int
	Respawns  int
	Kills     int
	Blasts    int
	Remaining int
}

func (s *summary) add(ev core.Events) {
	s.Ticks++
	if ev.PlayerHit {
		s.Hits++
	}
	if ev.PlayerDied {
		s.Deaths++
	}
	if ev.PlayerRespawned {
		s.Respawns++
	}
	s.Kills += ev.EnemiesKilled
	s.Blasts += ev.BlastsFired
}

func (s summary) String() string {
	return fmt.Sprintf("ticks=%d hits=%d deaths=%d respawns=%d kills=%d blasts=%d enemies=%d",
		s.Ticks, s.Hits, s.Deaths, s.Respawns, s.Kills, s.Blasts, s.Remaining)
}

// loadLevel accepts either an embedded level name or a path to a .tmx file.
func loadLevel(name string) (*leveldata.Level, error) {
	if strings.HasSuffix(name, ".tmx") {
		return leveldata.LoadFile(name)
	}
	return assets.LoadLevel(name)
}

func newGame(levelName, scriptName string, seed int64) (*core.Game, *scriptInput, error) {
	level, err := loadLevel(levelName)
	if err != nil {
		return nil, nil, err
	}
	if seed < 0 {
		seed = config.C.Seed
	}
	s, err := newScript(scriptName, uint64(seed))
	if err != nil {
		return nil, nil, err
	}
	in := &scriptInput{s: s}
	g, err := core.NewGame(level, in, core.WithSeed(uint64(seed)))
	if err != nil {
		return nil, nil, err
	}
	return g, in, nil
}

// simulate runs the game as fast as possible for the given number of ticks.
func simulate(g *core.Game, in *scriptInput, ticks, logEvery int) summary {
	var sum summary
	for range ticks {
		in.advance(g.Tick())
		sum.add(g.Update())
		if logEvery > 0 && sum.Ticks%logEvery == 0 {
			log.Printf("[simulate] %s", sum)
		}
	}
	sum.Remaining = len(g.Snapshot().Enemies)
	return sum
}

func main() {
	levelName := flag.String("level", assets.DefaultLevel, "Embedded level name or path to a .tmx file")
	ticks := flag.Int("ticks", 3600, "Number of ticks to run")
	tps := flag.Int("tps", 0, "Ticks per second in realtime mode (0 = configured rate)")
	realtime := flag.Bool("realtime", false, "Run on a fixed-rate loop instead of as fast as possible")
	scriptName := flag.String("script", "runner", "Input script: idle, runner or random")
	seed := flag.Int64("seed", -1, "Random seed (-1 = configured seed)")
	overrides := flag.String("overrides", "", "YAML tuning overrides")
	logEvery := flag.Int("log-every", 600, "Log a summary every N ticks (0 = only at the end)")
	flag.Parse()

	if *overrides != "" {
		if err := config.LoadOverrides(*overrides); err != nil {
			log.Fatalf("Failed to load overrides: %v", err)
		}
	}

	g, in, err := newGame(*levelName, *scriptName, *seed)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	log.Printf("Simulating %q for %d ticks (script: %s)", g.Level().Name, *ticks, *scriptName)

	if !*realtime {
		sum := simulate(g, in, *ticks, *logEvery)
		log.Printf("[simulate] done: %s", sum)
		return
	}

	rate := *tps
	if rate <= 0 {
		rate = config.C.TPS
	}

	var (
		sum      summary
		finished = make(chan struct{})
		once     sync.Once
	)
	in.advance(0)
	loop := core.NewGameLoop(g, rate, func(ev core.Events) {
		sum.add(ev)
		in.advance(g.Tick())
		if *logEvery > 0 && sum.Ticks%*logEvery == 0 {
			log.Printf("[simulate] %s", sum)
		}
		if sum.Ticks >= *ticks {
			once.Do(func() { close(finished) })
		}
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	loop.Start()
	select {
	case <-finished:
	case <-sigChan:
		log.Println("Shutting down simulation...")
	}
	loop.Stop()

	loop.Do(func(g *core.Game) {
		sum.Remaining = len(g.Snapshot().Enemies)
		log.Printf("[simulate] done: %s", sum)
	})
}
