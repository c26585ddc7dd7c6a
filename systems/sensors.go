package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSensors runs the player's ground and wall casts.
func UpdateSensors(ecs *ecs.ECS) {
	space := getSpace(ecs)
	if space == nil {
		return
	}
	dt := cfg.C.DeltaTime()

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if !player.CanControl {
			return
		}
		obj := components.Object.Get(e).Object

		updateGroundState(space, player, obj, dt)
		updateWallState(space, player, obj)
	})
}

func updateGroundState(space *resolv.Space, player *components.PlayerData, obj *resolv.Object, dt float64) {
	wasGrounded := player.Grounded
	player.GroundIgnore.Tick(dt)

	if player.GroundIgnore.Active() {
		player.Grounded = false
		player.GroundObject = nil
		return
	}

	player.GroundObject = castGround(space, obj)
	player.Grounded = player.GroundObject != nil

	if player.Grounded && !wasGrounded {
		player.JumpCount = 0
	}
}

func updateWallState(space *resolv.Space, player *components.PlayerData, obj *resolv.Object) {
	player.TouchingWall = false
	if player.Grounded {
		return
	}
	// Both sides count, so a player with its back to a wall still slides
	for _, side := range [2]float64{cfg.DirectionLeft, cfg.DirectionRight} {
		if castWall(space, obj, side) {
			player.TouchingWall = true
			player.WallSide = side
			return
		}
	}
}

// castGround casts down from both sides of the feet; either hit counts.
func castGround(space *resolv.Space, obj *resolv.Object) *resolv.Object {
	footX := obj.X + obj.W/2
	footY := obj.Y + obj.H
	spread := cfg.Player.GroundCastSpread
	depth := cfg.Player.GroundCastDepth

	for _, x := range [2]float64{footX - spread, footX + spread} {
		if hit := lineCast(space, obj, x, footY, x, footY+depth, cfg.Player.GroundLayers...); hit != nil {
			return hit
		}
	}
	return nil
}

// castWall casts sideways toward side at two heights.
func castWall(space *resolv.Space, obj *resolv.Object, side float64) bool {
	footX := obj.X + obj.W/2
	footY := obj.Y + obj.H
	reach := cfg.Player.WallCastReach * side

	for _, h := range [2]float64{cfg.Player.WallCastHighHeight, cfg.Player.WallCastLowHeight} {
		y := footY - h
		if lineCast(space, obj, footX, y, footX+reach, y, cfg.Player.WallLayers...) != nil {
			return true
		}
	}
	return false
}

// lineCast returns the first object carrying one of layers that the segment
// touches, skipping self.
func lineCast(space *resolv.Space, self *resolv.Object, x0, y0, x1, y1 float64, layers ...string) *resolv.Object {
	for _, o := range space.Objects() {
		if o == self || !o.HasTags(layers...) {
			continue
		}
		if gamemath.SegmentIntersectsRect(x0, y0, x1, y1, components.RectOf(o)) {
			return o
		}
	}
	return nil
}

// boxQuery returns the objects with one of the given tags that overlap r.
// resolv narrows the candidates by cell, the exact overlap test does the rest.
func boxQuery(space *resolv.Space, r gamemath.Rect, resolvTags ...string) []*resolv.Object {
	tempObj := resolv.NewObject(r.X, r.Y, r.W, r.H)
	space.Add(tempObj)
	defer space.Remove(tempObj)

	check := tempObj.Check(0, 0, resolvTags...)
	if check == nil {
		return nil
	}
	var hits []*resolv.Object
	for _, o := range check.Objects {
		if r.Overlaps(components.RectOf(o)) {
			hits = append(hits, o)
		}
	}
	return hits
}

func getSpace(ecs *ecs.ECS) *resolv.Space {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(spaceEntry)
}
