package systems

import (
	"github.com/automoto/platformer/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers every moved object with its space cells so the
// broad phase of later queries sees current positions.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Object == nil || obj.Space == nil {
			continue
		}
		obj.Update()
	}
}
