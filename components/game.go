package components

import (
	"github.com/automoto/platformer/session"
	"github.com/yohamta/donburi"
)

// GameData is the singleton holding the run's session and clock.
type GameData struct {
	Session          *session.Session
	Clock            float64 // seconds since the scene started
	RestartRequested bool
	BestScore        int
	ShowDebug        bool
}

var Game = donburi.NewComponentType[GameData]()
