package components

import (
	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/countdown"
	"github.com/yohamta/donburi"
)

type FallingPlatformData struct {
	State  config.FallingPlatformState
	StartX float64
	StartY float64
	Timer  countdown.Countdown
}

var FallingPlatform = donburi.NewComponentType[FallingPlatformData]()

type MovingPlatformData struct {
	StartX, StartY float64
	EndX, EndY     float64
	Speed          float64
	Elapsed        float64
}

var MovingPlatform = donburi.NewComponentType[MovingPlatformData]()

type SawData struct {
	StartX float64
}

var Saw = donburi.NewComponentType[SawData]()
