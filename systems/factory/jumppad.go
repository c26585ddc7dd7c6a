package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateJumpPad(ecs *ecs.ECS, spawn assets.JumpPadSpawn) *donburi.Entry {
	pad := archetypes.JumpPad.Spawn(ecs)

	obj := newBox(spawn.X, spawn.Y, spawn.Width, spawn.Height, tags.ResolvTrigger)
	components.Object.SetValue(pad, components.ObjectData{Object: obj})
	components.Contact.SetValue(pad, components.ContactData{Kind: tags.ContactJumpPad})
	addToSpace(ecs, pad, obj)

	power := spawn.BouncePower
	if power <= 0 {
		power = cfg.JumpPad.BouncePower
	}
	components.JumpPad.SetValue(pad, components.JumpPadData{
		BouncePower: power,
		Cooldown:    cfg.JumpPad.Cooldown,
		LastTime:    cfg.JumpPad.InitialLast,
	})
	components.Animator.SetValue(pad, components.AnimatorData{
		Clip:  cfg.ClipJumpPadIdle,
		Speed: 1,
	})

	return pad
}
