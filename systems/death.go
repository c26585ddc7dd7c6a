package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/gamemath"
	"github.com/automoto/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// RequestDeath kills the player. Repeated requests are ignored.
func RequestDeath(e *donburi.Entry) {
	state := components.State.Get(e)
	if state.CurrentState == cfg.Dead {
		return
	}
	state.Change(cfg.Dead)
	DisableControl(e)

	if game := components.Player.Get(e).Game; game != nil {
		game.GameOver()
	}
	components.Animator.Get(e).Play(cfg.ClipDeath)
}

func onDeathFinished(_ donburi.World, e *donburi.Entry) {
	if !e.HasComponent(components.Player) {
		return
	}
	if components.State.Get(e).CurrentState != cfg.Dead {
		return
	}
	components.Player.Get(e).Hidden = true
}

// Respawn puts the player back with its feet at (x, y). Control returns when
// the appear animation finishes.
func Respawn(e *donburi.Entry, x, y float64) {
	DisableControl(e)

	obj := components.Object.Get(e)
	obj.X = x - obj.W/2
	obj.Y = y - obj.H
	obj.Update()

	state := components.State.Get(e)
	state.Change(cfg.Idle)

	player := components.Player.Get(e)
	player.JumpCount = 0
	player.Hidden = false
	player.Grounded = false
	player.TouchingWall = false
	player.GroundObject = nil
	player.JumpBuffer.Clear()
	player.GroundIgnore.Clear()
	player.ControlLock.Clear()
	player.FacingLock.Clear()
	clear(player.Touching)

	components.Animator.Get(e).Play(cfg.ClipAppear)
}

// safeRespawnPosition returns (x, y) if a player standing there would be on
// solid ground outside any active trap, otherwise the nearest such spot.
// Positions are the centre of the feet.
func safeRespawnPosition(space *resolv.Space, x, y float64) (float64, float64) {
	if space == nil {
		return x, y
	}
	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	if isPositionSafe(space, x, y, w, h) {
		return x, y
	}
	if sx, sy, found := findNearestSafeGround(space, x, y, w, h); found {
		return sx, sy
	}
	return x, y
}

func isPositionSafe(space *resolv.Space, x, y, w, h float64) bool {
	body := gamemath.Rect{X: x - w/2, Y: y - h, W: w, H: h}

	if len(boxQuery(space, body, tags.ResolvSolid)) > 0 {
		return false
	}
	for _, o := range boxQuery(space, body, tags.ResolvTrigger) {
		if isActiveTrap(o) {
			return false
		}
	}

	feet := gamemath.Rect{X: body.X, Y: y, W: w, H: 2}
	return len(boxQuery(space, feet, tags.ResolvGround)) > 0
}

func findNearestSafeGround(space *resolv.Space, startX, startY, w, h float64) (x, y float64, found bool) {
	const searchStep = 32.0
	const maxSearchDist = 512.0

	// Search left then right
	for _, dir := range []float64{-1, 1} {
		for dist := searchStep; dist <= maxSearchDist; dist += searchStep {
			checkX := startX + dist*dir
			for checkY := startY - 64; checkY <= startY+128; checkY += 16 {
				if groundY, ok := groundBelow(space, checkX, checkY, w); ok && isPositionSafe(space, checkX, groundY, w, h) {
					return checkX, groundY, true
				}
			}
		}
	}

	return 0, 0, false
}

// groundBelow snaps a probe at (x, y) to the top of ground within 16 pixels.
func groundBelow(space *resolv.Space, x, y, w float64) (float64, bool) {
	hits := boxQuery(space, gamemath.Rect{X: x - w/2, Y: y, W: w, H: 16}, tags.ResolvGround)
	best, found := 0.0, false
	for _, o := range hits {
		if o.Y >= y && (!found || o.Y < best) {
			best, found = o.Y, true
		}
	}
	return best, found
}

func isActiveTrap(o *resolv.Object) bool {
	entry, ok := o.Data.(*donburi.Entry)
	if !ok || !entry.Valid() || !entry.HasComponent(components.Contact) {
		return false
	}
	if components.Contact.Get(entry).Kind != tags.ContactTrap {
		return false
	}
	return !entry.HasComponent(components.Trap) || components.Trap.Get(entry).Active
}
