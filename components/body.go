package components

import (
	"github.com/automoto/slimebrawl/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BodyData is the physical state shared by players, enemies and projectiles.
// X and Y are the top-left corner. W and H are fixed at creation.
type BodyData struct {
	X, Y     float64
	W, H     float64
	SpeedX   float64
	SpeedY   float64
	OnGround bool

	// Ground is the platform the body stood on after the last collision pass.
	Ground *resolv.Object

	// Position at the start of the current tick's integration.
	PrevX, PrevY float64
}

var Body = donburi.NewComponentType[BodyData]()

func (b *BodyData) Bounds() gamemath.Rect {
	return gamemath.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

func (b *BodyData) CenterX() float64 { return b.X + b.W/2 }
func (b *BodyData) CenterY() float64 { return b.Y + b.H/2 }
func (b *BodyData) Right() float64   { return b.X + b.W }
func (b *BodyData) Bottom() float64  { return b.Y + b.H }

// Land marks the body as resting on obj.
func (b *BodyData) Land(obj *resolv.Object) {
	b.OnGround = true
	b.SpeedY = 0
	b.Ground = obj
}

// Leave clears any grounded state.
func (b *BodyData) Leave() {
	b.OnGround = false
	b.Ground = nil
}
