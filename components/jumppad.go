package components

import "github.com/yohamta/donburi"

// JumpPadData remembers who stepped on the pad until the press animation
// reaches its bounce frame.
type JumpPadData struct {
	BouncePower float64
	Cooldown    float64
	LastTime    float64 // clock time of the last accepted step
	Pending     *donburi.Entry
}

var JumpPad = donburi.NewComponentType[JumpPadData]()
