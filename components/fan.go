package components

import (
	"github.com/automoto/platformer/shared/countdown"
	"github.com/yohamta/donburi"
)

type FanData struct {
	MaxPower    float64
	ChangeSpeed float64
	OnDuration  float64
	OffDuration float64

	IsOn         bool
	CurrentPower float64
	TargetPower  float64
	Phase        countdown.Countdown
}

var Fan = donburi.NewComponentType[FanData]()
