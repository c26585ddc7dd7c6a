package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/countdown"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFan creates an updraft column. The box is the area the air pushes in.
func CreateFan(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	fan := archetypes.Fan.Spawn(ecs)

	obj := newBox(x, y, w, h, tags.ResolvTrigger)
	components.Object.SetValue(fan, components.ObjectData{Object: obj})
	components.Contact.SetValue(fan, components.ContactData{Kind: tags.ContactFan})
	addToSpace(ecs, fan, obj)

	components.Fan.SetValue(fan, components.FanData{
		MaxPower:    cfg.Fan.MaxPower,
		ChangeSpeed: cfg.Fan.ChangeSpeed,
		OnDuration:  cfg.Fan.OnDuration,
		OffDuration: cfg.Fan.OffDuration,
		IsOn:        true,
		TargetPower: cfg.Fan.MaxPower,
		Phase:       countdown.New(cfg.Fan.OnDuration),
	})
	components.Animator.SetValue(fan, components.AnimatorData{
		Clip:  cfg.ClipIdle,
		Speed: 0,
	})

	return fan
}
