package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DeathData marks an entity that has started its death sequence.
// Timer counts up each frame; the entity is removed once it reaches Duration.
type DeathData struct {
	Timer    int
	Duration int
	Fade     *gween.Tween
	Alpha    float64 // Current fade value for rendering
}

var Death = donburi.NewComponentType[DeathData]()

// Expired reports whether the death window has elapsed.
func (d *DeathData) Expired() bool { return d.Timer >= d.Duration }
