package components

import (
	"github.com/automoto/slimebrawl/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // Clamped follow position, without shake
	Target   math.Vec2

	ViewWidth   float64
	ViewHeight  float64
	FollowSpeed float64
	Lead        float64
	Smoothing   bool

	MinX, MaxX float64
	MinY, MaxY float64
}

var Camera = donburi.NewComponentType[CameraData]()

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Decay     float64
	OffsetX   float64
	OffsetY   float64
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// View is the visible rectangle in world space, shake included.
func View(c *CameraData, s *ScreenShakeData) gamemath.Rect {
	r := gamemath.Rect{X: c.Position.X, Y: c.Position.Y, W: c.ViewWidth, H: c.ViewHeight}
	if s != nil {
		r.X += s.OffsetX
		r.Y += s.OffsetY
	}
	return r
}
