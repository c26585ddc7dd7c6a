package components

import (
	"github.com/automoto/platformer/shared/countdown"
	"github.com/yohamta/donburi"
)

// BurnerData is a flame trap switched by its own animation events. Only one
// duration timer is ever pending; arming it replaces the previous one.
type BurnerData struct {
	OnTime  float64
	OffTime float64

	IsOn       bool // requested visual state
	HitEnabled bool

	Started    bool // the first switch-on after StartDelay happened
	StartDelay countdown.Countdown
	Pending    countdown.Countdown
	PendingOn  bool // state requested when Pending fires
}

var Burner = donburi.NewComponentType[BurnerData]()

// TrapData gates the damage of a trap trigger.
type TrapData struct {
	Active bool
}

var Trap = donburi.NewComponentType[TrapData]()
