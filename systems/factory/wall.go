package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGround creates solid terrain the player can stand on.
func CreateGround(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)

	obj := newBox(x, y, w, h, tags.ResolvSolid, tags.ResolvGround)
	components.Object.SetValue(ground, components.ObjectData{Object: obj})
	addToSpace(ecs, ground, obj)

	return ground
}

// CreateWall creates solid terrain the player can slide down and jump off.
// Its top is ground too, so the player can land on it.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := newBox(x, y, w, h, tags.ResolvSolid, tags.ResolvGround, tags.ResolvWall)
	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, wall, obj)

	return wall
}
