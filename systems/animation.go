package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimators advances every clip and publishes the marks it crosses.
func UpdateAnimators(ecs *ecs.ECS) {
	dt := cfg.C.DeltaTime()

	components.Animator.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animator.Get(e)
		advanceClip(ecs.World, e.Entity(), anim, dt*anim.Speed)
	})
}

func advanceClip(w donburi.World, entity donburi.Entity, anim *components.AnimatorData, step float64) {
	def, ok := anim.ClipDef()
	if !ok || step <= 0 {
		return
	}

	prev := anim.Time
	anim.Time += step

	end := anim.Time
	if end > def.Duration {
		end = def.Duration
	}
	publishMarks(w, entity, anim.Clip, def, prev, end)

	if anim.Time < def.Duration {
		return
	}
	switch {
	case def.Loop && def.Duration > 0:
		for anim.Time >= def.Duration {
			anim.Time -= def.Duration
		}
		// Marks in the wrapped part of the step
		publishMarks(w, entity, anim.Clip, def, -1, anim.Time)
	case def.Next != "":
		anim.Play(def.Next)
	default:
		anim.Time = def.Duration
	}
}

// publishMarks queues every mark in (from, to]. A mark at 0 fires on the
// first advance after Play.
func publishMarks(w donburi.World, entity donburi.Entity, clip string, def cfg.ClipDef, from, to float64) {
	for _, m := range def.Marks {
		if m.Time > from && m.Time <= to || m.Time == 0 && from == 0 && to > 0 {
			ClipEventType.Publish(w, ClipEvent{Entity: entity, Event: m.Event, Clip: clip})
		}
	}
}
