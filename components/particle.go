package components

import "github.com/yohamta/donburi"

// ParticleData is a decorative point with no collision.
type ParticleData struct {
	X, Y    float64
	SpeedX  float64
	SpeedY  float64
	Size    float64
	Life    int
	MaxLife int
}

var Particle = donburi.NewComponentType[ParticleData]()
