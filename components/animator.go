package components

import (
	"github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
)

// AnimatorParams are the values gameplay publishes for the renderer each tick.
type AnimatorParams struct {
	State         int
	Grounded      bool
	VerticalSpeed float64
	JumpCount     int
	IsOn          bool
	Speed         float64
}

// AnimatorData plays clip timelines from config.Clips and fires their marks.
type AnimatorData struct {
	Clip   string
	Time   float64
	Speed  float64 // playback rate, 1 is normal
	Params AnimatorParams
}

// Play restarts playback from the beginning of clip.
func (a *AnimatorData) Play(clip string) {
	a.Clip = clip
	a.Time = 0
}

// ClipDef returns the definition of the current clip.
func (a *AnimatorData) ClipDef() (config.ClipDef, bool) {
	def, ok := config.Clips[a.Clip]
	return def, ok
}

// Progress is the normalised playback position of the current clip.
func (a *AnimatorData) Progress() float64 {
	def, ok := a.ClipDef()
	if !ok || def.Duration <= 0 {
		return 0
	}
	p := a.Time / def.Duration
	if p > 1 {
		return 1
	}
	return p
}

var Animator = donburi.NewComponentType[AnimatorData]()
