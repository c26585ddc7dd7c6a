package systems

import (
	"math"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerInput copies the polled input into the player and arms the jump
// buffer on a jump press.
func UpdatePlayerInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	jump := GetAction(input, cfg.ActionJump)

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		player.Move = input.MoveX

		if jump.JustPressed && player.CanControl {
			player.JumpBuffer.Reset(cfg.Player.JumpBufferTime)
		}
	})
}

// UpdatePlayerStates picks the movement state from this tick's sensor
// results and updates facing.
func UpdatePlayerStates(ecs *ecs.ECS) {
	dt := cfg.C.DeltaTime()

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if !player.CanControl {
			return
		}
		physics := components.Physics.Get(e)
		state := components.State.Get(e)

		player.JumpBuffer.Tick(dt)
		state.Change(nextPlayerState(player, physics, state.CurrentState))
		updateFacing(player, dt)
	})
}

func nextPlayerState(player *components.PlayerData, physics *components.PhysicsData, current cfg.PlayerState) cfg.PlayerState {
	switch {
	case current == cfg.Dead:
		return cfg.Dead
	case player.Grounded:
		if math.Abs(player.Move) > cfg.Player.MoveDeadzone {
			return cfg.Run
		}
		return cfg.Idle
	case player.TouchingWall && physics.VelY >= 0:
		player.JumpCount = 0
		return cfg.WallSlide
	case -physics.VelY > cfg.Player.RiseThreshold:
		if player.JumpCount < cfg.Player.MaxJumpCount {
			return cfg.Jump
		}
		return cfg.DoubleJump
	}
	return cfg.Fall
}

func updateFacing(player *components.PlayerData, dt float64) {
	if player.FacingLock.Active() {
		player.FacingLock.Tick(dt)
		return
	}
	if player.Move > cfg.Player.MoveDeadzone {
		player.Facing = cfg.DirectionRight
	} else if player.Move < -cfg.Player.MoveDeadzone {
		player.Facing = cfg.DirectionLeft
	}
}

// UpdatePlayerPhysics turns input and state into velocity: run speed, wall
// slide clamp, buffered jumps, gravity scale and platform carry.
func UpdatePlayerPhysics(ecs *ecs.ECS) {
	dt := cfg.C.DeltaTime()

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if !player.CanControl {
			return
		}
		physics := components.Physics.Get(e)
		state := components.State.Get(e)

		if player.ControlLock.Active() {
			player.ControlLock.Tick(dt)
		} else {
			physics.VelX = player.Move * cfg.Player.MoveSpeed
		}

		if state.CurrentState == cfg.WallSlide && physics.VelY > cfg.Player.WallSlideSpeed {
			physics.VelY = cfg.Player.WallSlideSpeed
		}

		tryJump(player, physics, state.CurrentState)
		physics.GravityScale = gravityScale(player, physics)
		carryWithGround(e, player)
	})
}

// tryJump consumes the jump buffer if the current state allows a jump.
func tryJump(player *components.PlayerData, physics *components.PhysicsData, state cfg.PlayerState) {
	if !player.JumpBuffer.Active() {
		return
	}

	switch state {
	case cfg.Idle, cfg.Run:
		player.JumpCount = 1
		verticalJump(physics)
	case cfg.Jump, cfg.Fall:
		if player.JumpCount >= cfg.Player.MaxJumpCount {
			return
		}
		player.JumpCount++
		verticalJump(physics)
	case cfg.WallSlide:
		wallJump(player, physics)
	default:
		// Buffer stays armed, e.g. for a landing after a double jump
		return
	}

	player.GroundIgnore.Reset(cfg.Player.GroundIgnoreTime)
	player.JumpBuffer.Clear()
}

func verticalJump(physics *components.PhysicsData) {
	physics.VelY = 0
	physics.ApplyImpulse(0, -cfg.Player.JumpPower)
}

func wallJump(player *components.PlayerData, physics *components.PhysicsData) {
	away := -player.WallSide

	physics.Stop()
	physics.ApplyImpulse(away*cfg.Player.WallJumpHorizontal, -cfg.Player.WallJumpVertical)

	player.JumpCount = 1
	player.Facing = away
	player.TouchingWall = false
	player.ControlLock.Reset(cfg.Player.WallJumpLockTime)
	player.FacingLock.Reset(cfg.Player.FacingLockTime)
}

func gravityScale(player *components.PlayerData, physics *components.PhysicsData) float64 {
	switch {
	case player.Grounded:
		return cfg.Player.GroundGravityScale
	case physics.VelY < 0:
		return cfg.Player.RiseGravityScale
	}
	return cfg.Player.FallGravityScale
}

// carryWithGround moves the player along with the platform it stands on.
func carryWithGround(e *donburi.Entry, player *components.PlayerData) {
	if !player.Grounded || player.GroundObject == nil {
		return
	}
	ground, ok := player.GroundObject.Data.(*donburi.Entry)
	if !ok || !ground.Valid() || !ground.HasComponent(components.Carrier) {
		return
	}

	carrier := components.Carrier.Get(ground)
	if carrier.DX == 0 && carrier.DY == 0 {
		return
	}
	obj := components.Object.Get(e)
	obj.X += carrier.DX
	obj.Y += carrier.DY
	obj.Update()
}

// Bounce launches the player upward, as from a jump pad.
func Bounce(e *donburi.Entry, power float64) {
	player := components.Player.Get(e)
	state := components.State.Get(e)
	if !player.CanControl || state.CurrentState == cfg.Dead {
		return
	}
	physics := components.Physics.Get(e)

	player.GroundIgnore.Reset(cfg.Player.GroundIgnoreTime)
	physics.VelY = 0
	physics.ApplyImpulse(0, -power)
	player.JumpCount = max(player.JumpCount, 1)
}

// EnableControl gives input and simulation back to the player.
func EnableControl(e *donburi.Entry) {
	player := components.Player.Get(e)
	player.CanControl = true
	player.Hidden = false
	physics := components.Physics.Get(e)
	physics.ForceX, physics.ForceY = 0, 0
	physics.Simulated = true
}

// DisableControl freezes the player in place and ignores input.
func DisableControl(e *donburi.Entry) {
	components.Player.Get(e).CanControl = false
	physics := components.Physics.Get(e)
	physics.Stop()
	physics.Simulated = false
}

func onAppearFinished(_ donburi.World, e *donburi.Entry) {
	if !e.HasComponent(components.Player) {
		return
	}
	state := components.State.Get(e)
	if state.CurrentState == cfg.Dead {
		return
	}
	EnableControl(e)
	state.Change(cfg.Idle)
}
