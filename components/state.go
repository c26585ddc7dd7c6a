package components

import (
	"github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.PlayerState
	PreviousState config.PlayerState
	StateTimer    float64 // seconds spent in CurrentState
}

// Change switches state and restarts the state timer. It reports whether the
// state actually changed.
func (s *StateData) Change(next config.PlayerState) bool {
	if s.CurrentState == next {
		return false
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = 0
	return true
}

var State = donburi.NewComponentType[StateData]()
