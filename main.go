package main

import (
	"flag"
	"log"
	"strings"

	"github.com/automoto/slimebrawl/assets"
	"github.com/automoto/slimebrawl/config"
	"github.com/automoto/slimebrawl/core"
	"github.com/automoto/slimebrawl/scenes"
	"github.com/automoto/slimebrawl/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	levelName := flag.String("level", assets.DefaultLevel, "Embedded level name or path to a .tmx file (files are hot reloaded)")
	overrides := flag.String("overrides", "", "YAML tuning overrides")
	seed := flag.Int64("seed", -1, "Random seed (-1 = configured seed)")
	flag.Parse()

	if *overrides != "" {
		if err := config.LoadOverrides(*overrides); err != nil {
			log.Fatalf("Failed to load overrides: %v", err)
		}
	}

	var (
		level     *leveldata.Level
		levelPath string
		err       error
	)
	if strings.HasSuffix(*levelName, ".tmx") {
		levelPath = *levelName
		level, err = leveldata.LoadFile(levelPath)
	} else {
		level, err = assets.LoadLevel(*levelName)
	}
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	var opts []core.Option
	if *seed >= 0 {
		opts = append(opts, core.WithSeed(uint64(*seed)))
	}
	scene, err := scenes.NewPlatformerScene(level, levelPath, opts...)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer scene.Close()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("slimebrawl")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		log.Fatal(err)
	}
}
