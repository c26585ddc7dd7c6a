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

// CreateFallingPlatform creates a floating platform that drops after being
// stood on and comes back later.
func CreateFallingPlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.FallingPlatform.Spawn(ecs)

	obj := newBox(x, y, w, h, tags.ResolvSolid, tags.ResolvGround)
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, platform, obj)

	components.FallingPlatform.SetValue(platform, components.FallingPlatformData{
		State:  cfg.PlatformFloating,
		StartX: x,
		StartY: y,
	})
	components.Tween.SetValue(platform, FloatTween())

	return platform
}

// FloatTween bobs a platform up and down around its rest position.
func FloatTween() components.TweenData {
	d := float32(cfg.FallingPlatform.FloatDuration)
	up := float32(-cfg.FallingPlatform.FloatDistance)
	return components.NewTween(true,
		gween.New(0, up, d, ease.InOutSine),
		gween.New(up, 0, d, ease.InOutSine),
	)
}

// CreateMovingPlatform creates a platform travelling back and forth between
// its position and the spawn's offset.
func CreateMovingPlatform(ecs *ecs.ECS, spawn assets.MovingPlatformSpawn) *donburi.Entry {
	platform := archetypes.MovingPlatform.Spawn(ecs)

	obj := newBox(spawn.X, spawn.Y, spawn.Width, spawn.Height, tags.ResolvSolid, tags.ResolvGround)
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, platform, obj)

	speed := spawn.Speed
	if speed <= 0 {
		speed = cfg.MovingPlatform.Speed
	}
	components.MovingPlatform.SetValue(platform, components.MovingPlatformData{
		StartX: spawn.X,
		StartY: spawn.Y,
		EndX:   spawn.X + spawn.DX,
		EndY:   spawn.Y + spawn.DY,
		Speed:  speed,
	})

	return platform
}
