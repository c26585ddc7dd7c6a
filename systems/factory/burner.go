package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/countdown"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBurner creates a flame trap. It starts switched off and turns on
// after its start delay.
func CreateBurner(ecs *ecs.ECS, spawn assets.BurnerSpawn) *donburi.Entry {
	burner := archetypes.Burner.Spawn(ecs)

	obj := newBox(spawn.X, spawn.Y, spawn.Width, spawn.Height, tags.ResolvTrigger)
	components.Object.SetValue(burner, components.ObjectData{Object: obj})
	components.Contact.SetValue(burner, components.ContactData{Kind: tags.ContactTrap})
	components.Trap.SetValue(burner, components.TrapData{Active: false})
	addToSpace(ecs, burner, obj)

	onTime, offTime := spawn.OnTime, spawn.OffTime
	if onTime <= 0 {
		onTime = cfg.Burner.OnTime
	}
	if offTime <= 0 {
		offTime = cfg.Burner.OffTime
	}
	delay := spawn.StartDelay
	if delay <= 0 {
		delay = cfg.Burner.StartDelay
	}

	components.Burner.SetValue(burner, components.BurnerData{
		OnTime:     onTime,
		OffTime:    offTime,
		StartDelay: countdown.New(delay),
	})
	components.Animator.SetValue(burner, components.AnimatorData{
		Clip:  cfg.ClipBurnerIdle,
		Speed: 1,
	})

	return burner
}
