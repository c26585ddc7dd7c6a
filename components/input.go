package components

import (
	cfg "github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the analog axes. JustPressed/JustReleased are computed on
// demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	MoveX           float64 // [-1, 1]
	LookX           float64 // [-1, 1], right positive
	LookY           float64 // [-1, 1], up positive
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()
