package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/slimebrawl/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
)

var (
	hudFace      = basicfont.Face7x13
	hudTextColor = color.RGBA{230, 230, 230, 255}
)

// DrawHUD renders the health bar, enemy count and pause banner in screen
// space.
func DrawHUD(screen *ebiten.Image, s core.Snapshot) {
	// Background (dark gray)
	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth), float32(hudBarHeight),
		color.RGBA{40, 40, 40, 255}, false)

	// Current HP (green)
	if s.Player.MaxHealth > 0 {
		ratio := float32(s.Player.Health) / float32(s.Player.MaxHealth)
		vector.FillRect(screen,
			float32(hudMargin), float32(hudMargin),
			float32(hudBarWidth)*ratio, float32(hudBarHeight),
			color.RGBA{40, 220, 40, 255}, false)
	}

	line := fmt.Sprintf("HP %d/%d  Enemies %d  %s", s.Player.Health, s.Player.MaxHealth, len(s.Enemies), s.Level)
	text.Draw(screen, line, hudFace, hudMargin, hudMargin+hudBarHeight+16, hudTextColor)

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	if s.Paused {
		drawCentered(screen, "PAUSED  (P to resume, R to restart)", width, height/2)
	}
}

// DrawDeathOverlay darkens the screen while the player waits to respawn.
func DrawDeathOverlay(screen *ebiten.Image, s core.Snapshot) {
	if s.Overlay <= 0 {
		return
	}
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), fade(color.RGBA{0, 0, 0, 255}, s.Overlay), false)
	if s.Respawning {
		drawCentered(screen, "YOU DIED", width, height/2)
	}
}

func drawCentered(screen *ebiten.Image, msg string, width, y int) {
	// basicfont is monospaced
	x := (width - len(msg)*hudFace.Advance) / 2
	text.Draw(screen, msg, hudFace, x, y, hudTextColor)
}
