package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBurners waits out each burner's start delay and fires its single
// pending switch. The hit window itself follows the clip events.
func UpdateBurners(ecs *ecs.ECS) {
	dt := cfg.C.DeltaTime()

	components.Burner.Each(ecs.World, func(e *donburi.Entry) {
		burner := components.Burner.Get(e)

		if !burner.Started {
			if burner.StartDelay.Active() && !burner.StartDelay.Tick(dt) {
				return
			}
			burner.Started = true
			setBurnerOn(e, true)
			return
		}

		if burner.Pending.Tick(dt) {
			setBurnerOn(e, burner.PendingOn)
		}
	})
}

// setBurnerOn plays the switch clip when the requested state changes.
func setBurnerOn(e *donburi.Entry, on bool) {
	burner := components.Burner.Get(e)
	if burner.IsOn == on {
		return
	}
	burner.IsOn = on

	anim := components.Animator.Get(e)
	anim.Params.IsOn = on
	if on {
		anim.Play(cfg.ClipBurnerOn)
	} else {
		anim.Play(cfg.ClipBurnerOff)
	}
}

func onEnableHit(_ donburi.World, e *donburi.Entry) {
	if !e.HasComponent(components.Burner) {
		return
	}
	burner := components.Burner.Get(e)
	burner.HitEnabled = true
	components.Trap.Get(e).Active = true

	// Replaces whatever was pending
	burner.Pending.Reset(burner.OnTime)
	burner.PendingOn = false
}

func onDisableHit(_ donburi.World, e *donburi.Entry) {
	if !e.HasComponent(components.Burner) {
		return
	}
	burner := components.Burner.Get(e)
	burner.HitEnabled = false
	components.Trap.Get(e).Active = false

	burner.Pending.Reset(burner.OffTime)
	burner.PendingOn = true
}
