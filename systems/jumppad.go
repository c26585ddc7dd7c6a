package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
)

// stepOnJumpPad starts the press animation for player unless the pad is
// cooling down. The bounce itself happens on the clip's bounce frame.
func stepOnJumpPad(pad, player *donburi.Entry, now float64) {
	data := components.JumpPad.Get(pad)
	if now < data.LastTime+data.Cooldown {
		return
	}
	data.Pending = player
	data.LastTime = now
	components.Animator.Get(pad).Play(cfg.ClipJumpPadPress)
}

func onPadBounce(_ donburi.World, e *donburi.Entry) {
	if !e.HasComponent(components.JumpPad) {
		return
	}
	pad := components.JumpPad.Get(e)
	player := pad.Pending
	pad.Pending = nil

	if player == nil || !player.Valid() || !player.HasComponent(components.Player) {
		return
	}
	Bounce(player, pad.BouncePower)
}
