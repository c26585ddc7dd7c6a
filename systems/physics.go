package systems

import (
	"math"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// collisionTolerance lets a body rest on or slide along a surface it touches
// without the contact counting as a block on the other axis.
const collisionTolerance = 0.5

func UpdatePhysics(ecs *ecs.ECS) {
	dt := cfg.C.DeltaTime()

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		// Non-simulated bodies stay frozen in place
		if !physics.Simulated {
			return
		}

		integrate(physics, dt)

		if !e.HasComponent(components.Object) {
			return
		}
		moveAndCollide(physics, components.Object.Get(e).Object, dt)
	})
}

func integrate(physics *components.PhysicsData, dt float64) {
	mass := physics.Mass
	if mass <= 0 {
		mass = 1
	}

	physics.VelX += physics.ForceX / mass * dt
	physics.VelY += cfg.Physics.Gravity*physics.GravityScale*dt + physics.ForceY/mass*dt
	if physics.VelY > cfg.Physics.MaxFallSpeed {
		physics.VelY = cfg.Physics.MaxFallSpeed
	}

	physics.ForceX, physics.ForceY = 0, 0
}

// moveAndCollide moves one axis at a time, stopping flush against solids.
func moveAndCollide(physics *components.PhysicsData, obj *resolv.Object, dt float64) {
	physics.BlockedX, physics.BlockedY, physics.OnGround = false, false, false

	if dx := physics.VelX * dt; dx != 0 {
		allowed, blocked := sweep(obj, dx, true)
		obj.X += allowed
		if blocked {
			physics.VelX = 0
			physics.BlockedX = true
		}
	}

	if dy := physics.VelY * dt; dy != 0 {
		allowed, blocked := sweep(obj, dy, false)
		obj.Y += allowed
		if blocked {
			physics.VelY = 0
			physics.BlockedY = true
			physics.OnGround = dy > 0
		}
	}

	obj.Update()
}

// sweep returns how far obj can travel by d along one axis before touching a
// solid, and whether a solid stopped it.
func sweep(obj *resolv.Object, d float64, horizontal bool) (float64, bool) {
	// Probe one pixel further so solids in the next cell are found even for
	// sub-pixel moves.
	probe := d + math.Copysign(1, d)
	var check *resolv.Collision
	if horizontal {
		check = obj.Check(probe, 0, tags.ResolvSolid)
	} else {
		check = obj.Check(0, probe, tags.ResolvSolid)
	}
	if check == nil {
		return d, false
	}

	self := components.RectOf(obj)
	allowed, blocked := d, false

	for _, solid := range check.Objects {
		r := components.RectOf(solid)

		// Leading edges along the move axis, spans across it
		var selfLo, selfHi, otherLo, otherHi float64
		var crossOverlap bool
		if horizontal {
			selfLo, selfHi, otherLo, otherHi = self.X, self.Right(), r.X, r.Right()
			crossOverlap = spansOverlap(self.Y, self.Bottom(), r.Y, r.Bottom())
		} else {
			selfLo, selfHi, otherLo, otherHi = self.Y, self.Bottom(), r.Y, r.Bottom()
			crossOverlap = spansOverlap(self.X, self.Right(), r.X, r.Right())
		}
		if !crossOverlap {
			continue
		}

		if d > 0 {
			if selfHi > otherLo+collisionTolerance {
				continue // already past its near side
			}
			if gap := otherLo - selfHi; gap < allowed {
				allowed, blocked = gap, true
			}
		} else {
			if selfLo < otherHi-collisionTolerance {
				continue
			}
			if gap := otherHi - selfLo; gap > allowed {
				allowed, blocked = gap, true
			}
		}
	}

	return allowed, blocked
}

func spansOverlap(aLo, aHi, bLo, bHi float64) bool {
	return aLo < bHi-collisionTolerance && bLo < aHi-collisionTolerance
}

// movePosition places a kinematic object and returns how far it moved.
func movePosition(obj *resolv.Object, x, y float64) (float64, float64) {
	dx, dy := x-obj.X, y-obj.Y
	obj.X, obj.Y = x, y
	obj.Update()
	return dx, dy
}
