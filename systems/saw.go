package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateSaws(ecs *ecs.ECS) {
	dt := cfg.C.DeltaTime()

	components.Saw.Each(ecs.World, func(e *donburi.Entry) {
		saw := components.Saw.Get(e)
		offset, _ := components.Tween.Get(e).Update(dt)
		obj := components.Object.Get(e).Object
		movePosition(obj, saw.StartX+offset, obj.Y)
	})
}
