package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateFinishLine(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	finish := archetypes.FinishLine.Spawn(ecs)

	obj := newBox(x, y, w, h, tags.ResolvTrigger)
	components.Object.SetValue(finish, components.ObjectData{Object: obj})
	components.Contact.SetValue(finish, components.ContactData{Kind: tags.ContactFinish})
	addToSpace(ecs, finish, obj)

	return finish
}

// CreateItem creates a score pickup.
func CreateItem(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	item := archetypes.Item.Spawn(ecs)

	obj := newBox(x, y, w, h, tags.ResolvTrigger)
	components.Object.SetValue(item, components.ObjectData{Object: obj})
	components.Contact.SetValue(item, components.ContactData{Kind: tags.ContactItem})
	addToSpace(ecs, item, obj)

	return item
}
