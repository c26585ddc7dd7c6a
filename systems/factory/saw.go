package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSaw creates a saw blade sliding back and forth along x.
func CreateSaw(ecs *ecs.ECS, spawn assets.SawSpawn) *donburi.Entry {
	saw := archetypes.Saw.Spawn(ecs)

	obj := newBox(spawn.X, spawn.Y, spawn.Width, spawn.Height, tags.ResolvTrigger)
	components.Object.SetValue(saw, components.ObjectData{Object: obj})
	components.Contact.SetValue(saw, components.ContactData{Kind: tags.ContactTrap})
	components.Trap.SetValue(saw, components.TrapData{Active: true})
	addToSpace(ecs, saw, obj)

	distance, duration := spawn.Distance, spawn.Duration
	if distance == 0 {
		distance = cfg.Saw.MoveDistance
	}
	if duration <= 0 {
		duration = cfg.Saw.MoveDuration
	}

	from, to := float32(0), float32(distance)
	components.Saw.SetValue(saw, components.SawData{StartX: spawn.X})
	components.Tween.SetValue(saw, components.NewTween(true,
		gween.New(from, to, float32(duration), ease.InOutSine),
		gween.New(to, from, float32(duration), ease.InOutSine),
	))

	return saw
}
