package config

import "fmt"

// PlayerState is the movement state of the player. Exactly one is active.
type PlayerState int

const (
	Idle PlayerState = iota
	Run
	Jump
	DoubleJump
	Fall
	WallSlide
	Dead
)

var playerStateNames = map[PlayerState]string{
	Idle:       "idle",
	Run:        "run",
	Jump:       "jump",
	DoubleJump: "double_jump",
	Fall:       "fall",
	WallSlide:  "wall_slide",
	Dead:       "dead",
}

func (s PlayerState) String() string {
	if name, ok := playerStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("PlayerState(%d)", int(s))
}

// ThwompState is the attack cycle of a crushing block.
type ThwompState int

const (
	ThwompIdle ThwompState = iota
	ThwompBlink
	ThwompMove
	ThwompHit
	ThwompStun
	ThwompReturn
)

var thwompStateNames = map[ThwompState]string{
	ThwompIdle:   "idle",
	ThwompBlink:  "blink",
	ThwompMove:   "move",
	ThwompHit:    "hit",
	ThwompStun:   "stun",
	ThwompReturn: "return",
}

func (s ThwompState) String() string {
	if name, ok := thwompStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ThwompState(%d)", int(s))
}

// FallingPlatformState tracks a crumbling platform from rest to respawn.
type FallingPlatformState int

const (
	PlatformFloating FallingPlatformState = iota
	PlatformSinking
	PlatformShaking
	PlatformFalling
	PlatformGone
)

// Axis is a movement direction along one of the four screen axes.
type Axis int

const (
	AxisDown Axis = iota
	AxisUp
	AxisLeft
	AxisRight
)

// Vector returns the unit direction of the axis in screen space (y down).
func (a Axis) Vector() (float64, float64) {
	switch a {
	case AxisUp:
		return 0, -1
	case AxisLeft:
		return -1, 0
	case AxisRight:
		return 1, 0
	}
	return 0, 1
}

// Vertical reports whether the axis moves along y.
func (a Axis) Vertical() bool {
	return a == AxisDown || a == AxisUp
}

func (a Axis) String() string {
	switch a {
	case AxisUp:
		return "up"
	case AxisLeft:
		return "left"
	case AxisRight:
		return "right"
	}
	return "down"
}

// ParseAxis converts a level property ("down", "left", ...) into an Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "down", "Down", "":
		return AxisDown, nil
	case "up", "Up":
		return AxisUp, nil
	case "left", "Left":
		return AxisLeft, nil
	case "right", "Right":
		return AxisRight, nil
	}
	return AxisDown, fmt.Errorf("unknown axis %q", s)
}
