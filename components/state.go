package components

import (
	"github.com/automoto/slimebrawl/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
}

var State = donburi.NewComponentType[StateData]()

// Set moves to next, restarting the timer only on an actual change.
func (s *StateData) Set(next config.StateID) {
	if s.CurrentState == next {
		s.StateTimer++
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = 0
}
