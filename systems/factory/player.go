package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its feet at (x, y). The player starts
// without control and gains it when the appear animation finishes.
func CreatePlayer(ecs *ecs.ECS, x, y float64, game components.GameNotifier) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := newBox(x-w/2, y-h, w, h, tags.ResolvPlayer)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, player, obj)

	components.Player.SetValue(player, components.PlayerData{
		CanControl: false,
		Facing:     cfg.DirectionRight,
		WallSide:   cfg.DirectionRight,
		Game:       game,
		Touching:   map[*resolv.Object]bool{},
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.Idle,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		GravityScale: cfg.Player.GroundGravityScale,
		Mass:         cfg.Player.Mass,
		Simulated:    false,
	})
	components.Animator.SetValue(player, components.AnimatorData{
		Clip:  cfg.ClipAppear,
		Speed: 1,
	})

	return player
}
