package components

import (
	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/countdown"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ThwompData struct {
	State  config.ThwompState
	Axis   config.Axis
	StartX float64 // resting position of the block's top-left corner
	StartY float64
	Timer  countdown.Countdown
	VelX   float64
	VelY   float64

	// Thin trigger on the leading face, dangerous only while moving
	Trap *resolv.Object
}

var Thwomp = donburi.NewComponentType[ThwompData]()

// CarrierData is the displacement a moving solid made this tick. Players
// standing on it move along.
type CarrierData struct {
	DX, DY float64
}

var Carrier = donburi.NewComponentType[CarrierData]()
