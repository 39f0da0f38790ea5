package components

import (
	"github.com/automoto/slimebrawl/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the resolv object registered in the broadphase space.
// Platforms own their geometry here; bodies keep a proxy that mirrors their
// BodyData.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

func (o ObjectData) Bounds() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Sync copies the body's box into the proxy and refreshes its cells.
func (o ObjectData) Sync(b *BodyData) {
	o.X, o.Y = b.X, b.Y
	o.Update()
}

var Space = donburi.NewComponentType[resolv.Space]()
