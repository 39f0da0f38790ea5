package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"touching corner", Rect{X: 10, Y: 10, W: 5, H: 5}, false},
		{"far away", Rect{X: 100, Y: 100, W: 5, H: 5}, false},
		{"sliver overlap", Rect{X: 9.99, Y: 0, W: 5, H: 5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, tt.want, Overlaps(base, tt.other))
		})
	}
}

func TestRectContainsPointIsInclusive(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	assert.True(t, r.ContainsPoint(10, 20))
	assert.True(t, r.ContainsPoint(40, 60))
	assert.True(t, r.ContainsPoint(25, 40))
	assert.False(t, r.ContainsPoint(9.9, 20))
	assert.False(t, r.ContainsPoint(40, 60.1))
}

func rectGen() *rapid.Generator[Rect] {
	return rapid.Custom(func(t *rapid.T) Rect {
		return Rect{
			X: rapid.Float64Range(-1000, 1000).Draw(t, "x"),
			Y: rapid.Float64Range(-1000, 1000).Draw(t, "y"),
			W: rapid.Float64Range(0.5, 500).Draw(t, "w"),
			H: rapid.Float64Range(0.5, 500).Draw(t, "h"),
		}
	})
}

func TestOverlapsIsSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rectGen().Draw(t, "a")
		b := rectGen().Draw(t, "b")
		if Overlaps(a, b) != Overlaps(b, a) {
			t.Fatalf("asymmetric overlap for %+v and %+v", a, b)
		}
	})
}

func TestSubSteps(t *testing.T) {
	assert.Equal(t, 1, SubSteps(0, 0, 5))
	assert.Equal(t, 1, SubSteps(5, -5, 5))
	assert.Equal(t, 2, SubSteps(5.1, 0, 5))
	assert.Equal(t, 3, SubSteps(0, -15, 5))
	assert.Equal(t, 1, SubSteps(30, 0, 0))
}

func TestClampAndDirection(t *testing.T) {
	assert.Equal(t, 15.0, ClampSpeed(20, 15))
	assert.Equal(t, -15.0, ClampSpeed(-20, 15))
	assert.Equal(t, 3.0, Clamp(3, 0, 10))
	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
	assert.Equal(t, 0.0, Clamp(5, 0, -1))
	assert.Equal(t, 1, Direction(0))
	assert.Equal(t, -1, Direction(-0.2))
	assert.Equal(t, 7.0, Manhattan(0, 0, 3, -4))
}
