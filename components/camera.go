package components

import (
	"github.com/automoto/platformer/shared/countdown"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position   math.Vec2
	LookOffset math.Vec2 // current smoothed look offset
	LookHeld   float64   // seconds the look input has been held

	Shake          countdown.Countdown
	ShakeDuration  float64
	ShakeIntensity float64
	ShakeOffset    math.Vec2 // added to Position when drawing
}

// View is the centre of the visible area.
func (c *CameraData) View() math.Vec2 {
	return math.Vec2{X: c.Position.X + c.ShakeOffset.X, Y: c.Position.Y + c.ShakeOffset.Y}
}

var Camera = donburi.NewComponentType[CameraData]()
