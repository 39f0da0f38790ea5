package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

var Health = donburi.NewComponentType[HealthData]()

// Dead reports whether health has been exhausted.
func (h *HealthData) Dead() bool { return h.Current <= 0 }
