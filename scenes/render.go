package scenes

import (
	"image/color"

	"github.com/automoto/slimebrawl/config"
	"github.com/automoto/slimebrawl/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	skyColor      = color.RGBA{24, 26, 40, 255}
	playerColor   = color.RGBA{80, 170, 255, 255}
	punchColor    = color.RGBA{255, 230, 120, 160}
	enemyColor    = color.RGBA{90, 220, 110, 255}
	blastColor    = color.RGBA{200, 120, 255, 255}
	particleColor = color.RGBA{230, 190, 255, 255}
)

var platformColors = map[config.PlatformKind]color.RGBA{
	config.PlatformSolid:       {110, 110, 120, 255},
	config.PlatformJumpThrough: {150, 120, 80, 255},
	config.PlatformMoving:      {80, 140, 160, 255},
	config.PlatformBreakable:   {170, 110, 90, 255},
	config.PlatformSpikes:      {220, 60, 60, 255},
}

// invulnerable players blink on this many frame intervals
const blinkFrames = 4

func fillRect(screen *ebiten.Image, cam core.CameraView, x, y, w, h float64, clr color.Color) {
	vector.FillRect(screen, float32(x-cam.X), float32(y-cam.Y), float32(w), float32(h), clr, false)
}

func visible(cam core.CameraView, x, y, w, h float64) bool {
	return x+w > cam.X && x < cam.X+cam.W && y+h > cam.Y && y < cam.Y+cam.H
}

// fade scales c's alpha, keeping it premultiplied.
func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = max(0, min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// DrawWorld renders one snapshot: platforms, enemies, the player, blasts
// and particles, all offset by the camera.
func DrawWorld(screen *ebiten.Image, s core.Snapshot) {
	screen.Fill(skyColor)
	cam := s.Camera

	for _, p := range s.Platforms {
		if !visible(cam, p.X, p.Y, p.W, p.H) {
			continue
		}
		c, ok := platformColors[p.Kind]
		if !ok {
			c = platformColors[config.PlatformSolid]
		}
		fillRect(screen, cam, p.X, p.Y, p.W, p.H, c)
	}

	for _, e := range s.Enemies {
		if !visible(cam, e.X, e.Y, e.W, e.H) {
			continue
		}
		fillRect(screen, cam, e.X, e.Y+deathHop(e), e.W, e.H, fade(enemyColor, e.Alpha))
	}

	drawPlayer(screen, cam, s.Player, s.Tick)

	for _, b := range s.Blasts {
		fillRect(screen, cam, b.X, b.Y, b.W, b.H, blastColor)
	}
	for _, p := range s.Particles {
		alpha := 1.0
		if p.MaxLife > 0 {
			alpha = float64(p.Life) / float64(p.MaxLife)
		}
		fillRect(screen, cam, p.X, p.Y, p.Size, p.Size, fade(particleColor, alpha))
	}
}

// deathHop is the drawn offset of a dying enemy's bounce. The body itself
// stays put.
func deathHop(e core.EnemyView) float64 {
	if !e.Dead {
		return 0
	}
	t := float64(e.DeathTimer)
	return min(0, e.SpeedY*t+config.Physics.Gravity*t*t/2)
}

func drawPlayer(screen *ebiten.Image, cam core.CameraView, p core.PlayerView, tick uint64) {
	if p.Dead {
		return
	}
	if p.Invulnerable && (tick/blinkFrames)%2 == 1 {
		return
	}
	fillRect(screen, cam, p.X, p.Y, p.W, p.H, playerColor)

	if p.Attack == config.AttackPunch {
		reach := config.Player.MeleeRangeX
		x := p.X + p.W
		if p.Facing < 0 {
			x = p.X - reach
		}
		fillRect(screen, cam, x, p.Y+p.H/4, reach, p.H/2, punchColor)
	}
}
