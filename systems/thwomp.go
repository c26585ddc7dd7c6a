package systems

import (
	"math"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/gamemath"
	"github.com/automoto/platformer/systems/factory"
	"github.com/automoto/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateThwomps runs the crusher cycle: wait for the player, blink, slam
// along the axis until something stops it, recover, and slide back.
func UpdateThwomps(ecs *ecs.ECS) {
	space := getSpace(ecs)
	if space == nil {
		return
	}
	dt := cfg.C.DeltaTime()

	components.Thwomp.Each(ecs.World, func(e *donburi.Entry) {
		thwomp := components.Thwomp.Get(e)
		obj := components.Object.Get(e).Object
		carrier := components.Carrier.Get(e)
		carrier.DX, carrier.DY = 0, 0

		switch thwomp.State {
		case cfg.ThwompIdle:
			if playerInThwompRange(space, obj, thwomp.Axis) {
				thwomp.State = cfg.ThwompBlink
				thwomp.Timer.Reset(cfg.Thwomp.BlinkTime)
			}
		case cfg.ThwompBlink:
			if thwomp.Timer.Tick(dt) {
				thwomp.State = cfg.ThwompMove
				setTrapActive(thwomp.Trap, true)
			}
		case cfg.ThwompMove:
			carrier.DX, carrier.DY = slamThwomp(space, thwomp, obj, dt)
			if thwomp.State == cfg.ThwompHit {
				TriggerScreenShake(ecs, cfg.Camera.ShakeIntensity, cfg.Camera.ShakeDuration)
			}
		case cfg.ThwompHit:
			if thwomp.Timer.Tick(dt) {
				thwomp.State = cfg.ThwompStun
				thwomp.Timer.Reset(cfg.Thwomp.StunTime)
			}
		case cfg.ThwompStun:
			if thwomp.Timer.Tick(dt) {
				thwomp.State = cfg.ThwompReturn
			}
		case cfg.ThwompReturn:
			carrier.DX, carrier.DY = returnThwomp(thwomp, obj, dt)
		}

		syncThwompTrap(thwomp, obj)
	})
}

// playerInThwompRange checks a box reaching from the block's centre along
// its axis.
func playerInThwompRange(space *resolv.Space, obj *resolv.Object, axis cfg.Axis) bool {
	cx, cy := components.RectOf(obj).Center()
	along, across := cfg.Thwomp.DetectAlong, cfg.Thwomp.DetectAcross

	var box gamemath.Rect
	switch axis {
	case cfg.AxisUp:
		box = gamemath.Rect{X: cx - across/2, Y: cy - along, W: across, H: along}
	case cfg.AxisLeft:
		box = gamemath.Rect{X: cx - along, Y: cy - across/2, W: along, H: across}
	case cfg.AxisRight:
		box = gamemath.Rect{X: cx, Y: cy - across/2, W: along, H: across}
	default:
		box = gamemath.Rect{X: cx - across/2, Y: cy, W: across, H: along}
	}
	return len(boxQuery(space, box, tags.ResolvPlayer)) > 0
}

func slamThwomp(space *resolv.Space, thwomp *components.ThwompData, obj *resolv.Object, dt float64) (float64, float64) {
	ax, ay := thwomp.Axis.Vector()
	thwomp.VelX, thwomp.VelY = ax*cfg.Thwomp.MoveSpeed, ay*cfg.Thwomp.MoveSpeed

	if hit := probeAhead(space, obj, thwomp.Axis); hit != nil {
		thwomp.VelX, thwomp.VelY = 0, 0
		thwomp.State = cfg.ThwompHit
		thwomp.Timer.Reset(cfg.Thwomp.HitTime)
		setTrapActive(thwomp.Trap, false)

		x, y := flushAgainst(obj, hit, thwomp.Axis)
		return movePosition(obj, x, y)
	}

	return movePosition(obj, obj.X+thwomp.VelX*dt, obj.Y+thwomp.VelY*dt)
}

// probeAhead casts a short ray from the centre of the leading face.
func probeAhead(space *resolv.Space, obj *resolv.Object, axis cfg.Axis) *resolv.Object {
	r := components.RectOf(obj)
	cx, cy := r.Center()
	ax, ay := axis.Vector()

	// Start point on the leading face, nudged outward
	x0 := cx + ax*(r.W/2+cfg.Thwomp.ProbeOffset)
	y0 := cy + ay*(r.H/2+cfg.Thwomp.ProbeOffset)
	x1 := x0 + ax*cfg.Thwomp.ProbeDistance
	y1 := y0 + ay*cfg.Thwomp.ProbeDistance

	return lineCast(space, obj, x0, y0, x1, y1, cfg.Thwomp.HitLayers...)
}

func flushAgainst(obj, hit *resolv.Object, axis cfg.Axis) (float64, float64) {
	switch axis {
	case cfg.AxisUp:
		return obj.X, hit.Y + hit.H
	case cfg.AxisLeft:
		return hit.X + hit.W, obj.Y
	case cfg.AxisRight:
		return hit.X - obj.W, obj.Y
	}
	return obj.X, hit.Y - obj.H
}

func returnThwomp(thwomp *components.ThwompData, obj *resolv.Object, dt float64) (float64, float64) {
	x, y := gamemath.MoveTowards2(obj.X, obj.Y, thwomp.StartX, thwomp.StartY, cfg.Thwomp.ReturnSpeed*dt)
	if math.Hypot(thwomp.StartX-x, thwomp.StartY-y) <= cfg.Thwomp.ReturnEpsilon {
		x, y = thwomp.StartX, thwomp.StartY
		thwomp.State = cfg.ThwompIdle
	}
	return movePosition(obj, x, y)
}

func syncThwompTrap(thwomp *components.ThwompData, obj *resolv.Object) {
	if thwomp.Trap == nil {
		return
	}
	x, y, w, h := factory.ThwompTrapBounds(obj.X, obj.Y, obj.W, obj.H, thwomp.Axis)
	thwomp.Trap.X, thwomp.Trap.Y, thwomp.Trap.W, thwomp.Trap.H = x, y, w, h
	thwomp.Trap.Update()
}

func setTrapActive(obj *resolv.Object, active bool) {
	if obj == nil {
		return
	}
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || !entry.Valid() || !entry.HasComponent(components.Trap) {
		return
	}
	components.Trap.Get(entry).Active = active
}
