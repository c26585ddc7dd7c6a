package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates advances state timers and publishes the player's animator
// parameters.
func UpdateStates(ecs *ecs.ECS) {
	dt := cfg.C.DeltaTime()

	components.State.Each(ecs.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		state.StateTimer += dt

		if !e.HasComponent(components.Player) || !e.HasComponent(components.Animator) {
			return
		}
		updatePlayerAnimatorParams(e, state)
	})
}

func updatePlayerAnimatorParams(e *donburi.Entry, state *components.StateData) {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	anim := components.Animator.Get(e)

	anim.Params.State = int(state.CurrentState)
	anim.Params.Grounded = player.Grounded
	anim.Params.VerticalSpeed = -physics.VelY // up positive
	anim.Params.JumpCount = player.JumpCount
}
