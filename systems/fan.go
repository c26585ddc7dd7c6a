package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFans cycles fans on and off and eases their power toward the target.
func UpdateFans(ecs *ecs.ECS) {
	dt := cfg.C.DeltaTime()

	components.Fan.Each(ecs.World, func(e *donburi.Entry) {
		fan := components.Fan.Get(e)

		if fan.Phase.Tick(dt) {
			fan.IsOn = !fan.IsOn
			if fan.IsOn {
				fan.TargetPower = fan.MaxPower
				fan.Phase.Reset(fan.OnDuration)
			} else {
				fan.TargetPower = 0
				fan.Phase.Reset(fan.OffDuration)
			}
		}

		fan.CurrentPower = gamemath.Lerp(fan.CurrentPower, fan.TargetPower, gamemath.Clamp(dt*fan.ChangeSpeed, 0, 1))

		if e.HasComponent(components.Animator) {
			anim := components.Animator.Get(e)
			anim.Params.IsOn = fan.IsOn
			if fan.MaxPower > 0 {
				anim.Speed = fan.CurrentPower / fan.MaxPower
				anim.Params.Speed = anim.Speed
			}
		}
	})
}

// blowPlayer pushes a player standing in the fan's column upward.
func blowPlayer(fan, player *donburi.Entry) {
	power := components.Fan.Get(fan).CurrentPower
	if power <= 0 {
		return
	}
	physics := components.Physics.Get(player)
	physics.AddForce(0, -power*physics.Mass)
}
