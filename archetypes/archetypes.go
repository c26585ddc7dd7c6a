package archetypes

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.State,
		components.Animator,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Game = newArchetype(
		components.Game,
	)
	Thwomp = newArchetype(
		tags.Thwomp,
		components.Thwomp,
		components.Object,
		components.Carrier,
	)
	// ThwompTrap is the leading-face trigger of a thwomp.
	ThwompTrap = newArchetype(
		components.Object,
		components.Contact,
		components.Trap,
	)
	Burner = newArchetype(
		tags.Burner,
		components.Burner,
		components.Object,
		components.Contact,
		components.Trap,
		components.Animator,
	)
	JumpPad = newArchetype(
		tags.JumpPad,
		components.JumpPad,
		components.Object,
		components.Contact,
		components.Animator,
	)
	Fan = newArchetype(
		tags.Fan,
		components.Fan,
		components.Object,
		components.Contact,
		components.Animator,
	)
	Saw = newArchetype(
		tags.Saw,
		components.Saw,
		components.Object,
		components.Contact,
		components.Trap,
		components.Tween,
	)
	FallingPlatform = newArchetype(
		tags.FallingPlatform,
		components.FallingPlatform,
		components.Object,
		components.Carrier,
		components.Tween,
	)
	MovingPlatform = newArchetype(
		tags.MovingPlatform,
		components.MovingPlatform,
		components.Object,
		components.Carrier,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
		components.Object,
		components.Contact,
		components.Animator,
		components.Tween,
	)
	FinishLine = newArchetype(
		tags.FinishLine,
		components.Object,
		components.Contact,
	)
	Item = newArchetype(
		tags.Item,
		components.Object,
		components.Contact,
	)
	DeadZone = newArchetype(
		tags.DeadZone,
		components.Object,
		components.Contact,
		components.Trap,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
