package components

import (
	"github.com/automoto/platformer/shared/countdown"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// GameNotifier receives the player's game-level outcomes.
type GameNotifier interface {
	AddScore()
	GameOver()
	GameClear()
}

type PlayerData struct {
	CanControl bool
	Hidden     bool    // set once the death animation has played out
	Move       float64 // horizontal input in [-1, 1]
	Facing     float64 // config.DirectionLeft or config.DirectionRight
	JumpCount  int

	// Sensor results
	Grounded     bool
	TouchingWall bool
	WallSide     float64        // side of the wall being touched, -1 or 1
	GroundObject *resolv.Object // what the ground casts hit, nil in the air

	JumpBuffer   countdown.Countdown
	GroundIgnore countdown.Countdown
	ControlLock  countdown.Countdown // horizontal input ignored after a wall jump
	FacingLock   countdown.Countdown // facing frozen after a wall jump

	Game GameNotifier

	// Triggers overlapped last tick, for enter detection
	Touching map[*resolv.Object]bool
}

var Player = donburi.NewComponentType[PlayerData]()
