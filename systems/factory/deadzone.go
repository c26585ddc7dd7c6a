package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDeadZone creates an invisible trap that kills the player on touch
func CreateDeadZone(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	zone := archetypes.DeadZone.Spawn(ecs)

	obj := newBox(x, y, w, h, tags.ResolvTrigger)
	components.Object.SetValue(zone, components.ObjectData{Object: obj})
	components.Contact.SetValue(zone, components.ContactData{Kind: tags.ContactTrap})
	components.Trap.SetValue(zone, components.TrapData{Active: true})
	addToSpace(ecs, zone, obj)

	return zone
}
