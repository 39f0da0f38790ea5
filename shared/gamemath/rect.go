package gamemath

// Rect is an axis-aligned rectangle with a top-left origin.
type Rect struct {
	X, Y, W, H float64
}

// Bounded is anything with an axis-aligned bounding box: bodies, platforms,
// projectiles.
type Bounded interface {
	Bounds() Rect
}

// Bounds lets a Rect be passed wherever a Bounded is expected.
func (r Rect) Bounds() Rect { return r }

func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Intersects reports strict overlap. Rectangles that only share an edge do
// not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// ContainsPoint is inclusive on every edge.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Overlaps is the AABB test shared by every collision check in the game.
func Overlaps(a, b Bounded) bool {
	return a.Bounds().Intersects(b.Bounds())
}
