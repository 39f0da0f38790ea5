package systems

import (
	"math/rand/v2"

	"github.com/automoto/slimebrawl/components"
	"github.com/automoto/slimebrawl/shared/gamemath"
	"github.com/automoto/slimebrawl/tags"
	"github.com/yohamta/donburi"
)

// CameraEntry returns the world's camera, if one was created.
func CameraEntry(w *World) (*donburi.Entry, bool) {
	return tags.Camera.First(w.ECS())
}

// SetCameraBounds limits panning so the view never leaves a world of the
// given size. Worlds smaller than the view pin the camera at zero.
func SetCameraBounds(c *components.CameraData, worldW, worldH float64) {
	c.MinX, c.MinY = 0, 0
	c.MaxX = max(0, worldW-c.ViewWidth)
	c.MaxY = max(0, worldH-c.ViewHeight)
	c.Position.X = gamemath.Clamp(c.Position.X, c.MinX, c.MaxX)
	c.Position.Y = gamemath.Clamp(c.Position.Y, c.MinY, c.MaxY)
}

// FollowCamera moves the camera toward target, looking Lead pixels ahead in
// the facing direction, and clamps the result to the bounds.
func FollowCamera(c *components.CameraData, target gamemath.Bounded, facing int) {
	r := target.Bounds()
	lead := float64(gamemath.Direction(float64(facing))) * c.Lead
	c.Target.X = r.CenterX() + lead - c.ViewWidth/2
	c.Target.Y = r.CenterY() - c.ViewHeight/2

	if c.Smoothing {
		c.Position.X += (c.Target.X - c.Position.X) * c.FollowSpeed
		c.Position.Y += (c.Target.Y - c.Position.Y) * c.FollowSpeed
	} else {
		c.Position = c.Target
	}
	c.Position.X = gamemath.Clamp(c.Position.X, c.MinX, c.MaxX)
	c.Position.Y = gamemath.Clamp(c.Position.Y, c.MinY, c.MaxY)
}

// SnapCamera jumps to (x, y) without smoothing, still inside the bounds.
func SnapCamera(c *components.CameraData, x, y float64) {
	c.Position.X = gamemath.Clamp(x, c.MinX, c.MaxX)
	c.Position.Y = gamemath.Clamp(y, c.MinY, c.MaxY)
	c.Target = c.Position
}

// SnapCameraTo centers the camera on target immediately.
func SnapCameraTo(c *components.CameraData, target gamemath.Bounded) {
	r := target.Bounds()
	SnapCamera(c, r.CenterX()-c.ViewWidth/2, r.CenterY()-c.ViewHeight/2)
}

func SetFollowSpeed(c *components.CameraData, speed float64) {
	c.FollowSpeed = gamemath.Clamp(speed, 0, 1)
}

func SetSmoothing(c *components.CameraData, on bool) {
	c.Smoothing = on
}

// ShakeCamera starts a shake. A weaker shake never cuts a stronger one short.
func ShakeCamera(s *components.ScreenShakeData, intensity float64, duration int) {
	if s.Duration > 0 && intensity < s.Intensity {
		return
	}
	s.Intensity = intensity
	s.Duration = duration
}

// UpdateShake advances an active shake by one tick: a fresh random offset in
// [-intensity/2, intensity/2) on each axis, then decay. The offset is cleared
// once the shake ends.
func UpdateShake(s *components.ScreenShakeData, rng *rand.Rand) {
	if s.Duration <= 0 {
		s.OffsetX, s.OffsetY = 0, 0
		return
	}
	s.OffsetX = (rng.Float64() - 0.5) * s.Intensity
	s.OffsetY = (rng.Float64() - 0.5) * s.Intensity
	s.Intensity *= s.Decay
	s.Duration--
	if s.Duration == 0 {
		s.Intensity = 0
	}
}

// WorldToScreen translates a world point into view coordinates.
func WorldToScreen(c *components.CameraData, s *components.ScreenShakeData, x, y float64) (float64, float64) {
	v := components.View(c, s)
	return x - v.X, y - v.Y
}

// ScreenToWorld is the inverse of WorldToScreen.
func ScreenToWorld(c *components.CameraData, s *components.ScreenShakeData, x, y float64) (float64, float64) {
	v := components.View(c, s)
	return x + v.X, y + v.Y
}

// IsVisible reports whether any part of r is inside the view. A rectangle
// that only touches an edge of the view counts as visible.
func IsVisible(c *components.CameraData, s *components.ScreenShakeData, r gamemath.Bounded) bool {
	v, b := components.View(c, s), r.Bounds()
	return b.X <= v.Right() && b.Right() >= v.X && b.Y <= v.Bottom() && b.Bottom() >= v.Y
}

// CameraCenter is the world point at the middle of the unshaken view.
func CameraCenter(c *components.CameraData) (float64, float64) {
	return c.Position.X + c.ViewWidth/2, c.Position.Y + c.ViewHeight/2
}

// UpdateCamera follows the player, if any, and advances the shake.
func UpdateCamera(w *World, player *donburi.Entry) {
	e, ok := CameraEntry(w)
	if !ok {
		return
	}
	if player != nil {
		FollowCamera(components.Camera.Get(e), components.Body.Get(player), components.Player.Get(player).Facing)
	}
	UpdateShake(components.ScreenShake.Get(e), w.Rand())
}
