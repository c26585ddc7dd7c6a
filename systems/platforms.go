package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/gamemath"
	"github.com/automoto/platformer/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFallingPlatforms bobs idle platforms, drops them once stood on and
// brings them back after a delay.
func UpdateFallingPlatforms(ecs *ecs.ECS) {
	space := getSpace(ecs)
	dt := cfg.C.DeltaTime()

	components.FallingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		platform := components.FallingPlatform.Get(e)
		tween := components.Tween.Get(e)
		obj := components.Object.Get(e).Object
		carrier := components.Carrier.Get(e)
		carrier.DX, carrier.DY = 0, 0

		switch platform.State {
		case cfg.PlatformFloating:
			offset, _ := tween.Update(dt)
			carrier.DX, carrier.DY = movePosition(obj, platform.StartX, platform.StartY+offset)
			if playerStandingOn(ecs.World, obj) {
				platform.State = cfg.PlatformSinking
				*tween = offsetTween(offset, cfg.FallingPlatform.SinkDistance, cfg.FallingPlatform.SinkDuration, ease.OutQuad)
			}
		case cfg.PlatformSinking:
			offset, done := tween.Update(dt)
			carrier.DX, carrier.DY = movePosition(obj, platform.StartX, platform.StartY+offset)
			if done {
				platform.State = cfg.PlatformShaking
				platform.Timer.Reset(cfg.FallingPlatform.FallDelay)
			}
		case cfg.PlatformShaking:
			if platform.Timer.Tick(dt) {
				platform.State = cfg.PlatformFalling
				*tween = offsetTween(obj.Y-platform.StartY, cfg.FallingPlatform.FallDistance, cfg.FallingPlatform.FallDuration, ease.InQuad)
			}
		case cfg.PlatformFalling:
			offset, done := tween.Update(dt)
			carrier.DX, carrier.DY = movePosition(obj, platform.StartX, platform.StartY+offset)
			if done {
				platform.State = cfg.PlatformGone
				platform.Timer.Reset(cfg.FallingPlatform.RespawnDelay)
				if space != nil {
					space.Remove(obj)
				}
			}
		case cfg.PlatformGone:
			if platform.Timer.Tick(dt) {
				obj.X, obj.Y = platform.StartX, platform.StartY
				if space != nil {
					space.Add(obj)
				}
				platform.State = cfg.PlatformFloating
				*tween = factory.FloatTween()
			}
		}
	})
}

// offsetTween eases from an offset to distance further down.
func offsetTween(from, distance, duration float64, easing ease.TweenFunc) components.TweenData {
	return components.NewTween(false,
		gween.New(float32(from), float32(from+distance), float32(duration), easing),
	)
}

func playerStandingOn(w donburi.World, obj *resolv.Object) bool {
	standing := false
	components.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if player.Grounded && player.GroundObject == obj {
			standing = true
		}
	})
	return standing
}

// UpdateMovingPlatforms ping-pongs platforms between their two ends.
func UpdateMovingPlatforms(ecs *ecs.ECS) {
	dt := cfg.C.DeltaTime()

	components.MovingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		platform := components.MovingPlatform.Get(e)
		obj := components.Object.Get(e).Object
		carrier := components.Carrier.Get(e)

		platform.Elapsed += dt
		t := gamemath.PingPong(platform.Elapsed*platform.Speed, 1)
		x := gamemath.Lerp(platform.StartX, platform.EndX, t)
		y := gamemath.Lerp(platform.StartY, platform.EndY, t)

		carrier.DX, carrier.DY = movePosition(obj, x, y)
	})
}
