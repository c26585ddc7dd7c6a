package systems

import (
	"testing"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func thwompState(e *donburi.Entry) cfg.ThwompState {
	return components.Thwomp.Get(e).State
}

func TestThwompFullCycle(t *testing.T) {
	tw := newTestWorld(t)
	game := &countingGame{}
	factory.CreatePlayer(tw.ecs, 116, groundTop, game)

	th, err := factory.CreateThwomp(tw.ecs, assets.ThwompSpawn{Rect: assets.Rect{X: 100, Y: 200, Width: 32, Height: 32}})
	require.NoError(t, err)
	obj := components.Object.Get(th)
	trap := components.Thwomp.Get(th).Trap

	tw.step(0, false)
	assert.Equal(t, cfg.ThwompBlink, thwompState(th))
	assert.False(t, isActiveTrap(trap), "harmless while blinking")

	tw.stepUntil(t, ticks(cfg.Thwomp.BlinkTime)+2, func() bool { return thwompState(th) == cfg.ThwompMove })
	assert.True(t, isActiveTrap(trap))

	tw.stepUntil(t, ticks(2), func() bool { return thwompState(th) == cfg.ThwompHit })
	assert.Equal(t, groundTop-obj.H, obj.Y, "stops flush on the ground")
	assert.Equal(t, 100.0, obj.X)
	assert.False(t, isActiveTrap(trap))
	assert.Equal(t, obj.Y+obj.H, trap.Y, "trap follows the leading face")
	assert.Equal(t, 1, game.overs, "the moving face crushed the player")

	tw.stepUntil(t, ticks(cfg.Thwomp.HitTime)+2, func() bool { return thwompState(th) == cfg.ThwompStun })
	tw.stepUntil(t, ticks(cfg.Thwomp.StunTime)+2, func() bool { return thwompState(th) == cfg.ThwompReturn })
	tw.stepUntil(t, ticks(3), func() bool { return thwompState(th) == cfg.ThwompIdle })

	assert.Equal(t, 100.0, obj.X)
	assert.Equal(t, 200.0, obj.Y)
}

func TestThwompIgnoresPlayerOutOfRange(t *testing.T) {
	tw := newTestWorld(t)
	factory.CreatePlayer(tw.ecs, 700, groundTop, tw.session)
	th, err := factory.CreateThwomp(tw.ecs, assets.ThwompSpawn{Rect: assets.Rect{X: 100, Y: 200, Width: 32, Height: 32}})
	require.NoError(t, err)

	tw.idle(30)
	assert.Equal(t, cfg.ThwompIdle, thwompState(th))
}

func TestThwompSidewaysAxis(t *testing.T) {
	tw := newTestWorld(t)
	factory.CreateWall(tw.ecs, 400, 200, 32, 200)
	factory.CreatePlayer(tw.ecs, 250, groundTop, tw.session)

	th, err := factory.CreateThwomp(tw.ecs, assets.ThwompSpawn{
		Rect: assets.Rect{X: 100, Y: 360, Width: 32, Height: 32},
		Axis: "right",
	})
	require.NoError(t, err)
	obj := components.Object.Get(th)

	tw.stepUntil(t, ticks(3), func() bool { return thwompState(th) == cfg.ThwompHit })
	assert.Equal(t, 400-obj.W, obj.X)
	assert.Equal(t, 360.0, obj.Y)
}

func TestThwompRejectsUnknownAxis(t *testing.T) {
	tw := newTestWorld(t)
	_, err := factory.CreateThwomp(tw.ecs, assets.ThwompSpawn{Rect: assets.Rect{X: 0, Y: 0, Width: 32, Height: 32}, Axis: "sideways"})
	assert.Error(t, err)
}

func TestThwompCarriesRider(t *testing.T) {
	tw := newTestWorld(t)
	th, err := factory.CreateThwomp(tw.ecs, assets.ThwompSpawn{Rect: assets.Rect{X: 300, Y: 300, Width: 64, Height: 32}})
	require.NoError(t, err)
	p := tw.spawnPlayer(332, 300)
	tw.idle(2)
	require.Same(t, components.Object.Get(th).Object, components.Player.Get(p).GroundObject)

	// A rider standing on top moves with the block's displacement
	carrier := components.Carrier.Get(th)
	carrier.DX, carrier.DY = 5, 0
	player := components.Player.Get(p)
	before := components.Object.Get(p).X
	carryWithGround(p, player)
	assert.Equal(t, before+5, components.Object.Get(p).X)
}

func TestBurnerCycle(t *testing.T) {
	tw := newTestWorld(t)
	b := factory.CreateBurner(tw.ecs, assets.BurnerSpawn{
		Rect:       assets.Rect{X: 600, Y: 368, Width: 32, Height: 32},
		StartDelay: 0.5,
		OnTime:     1,
		OffTime:    1,
	})
	burner := components.Burner.Get(b)
	trap := components.Trap.Get(b)

	tw.idle(ticks(0.25))
	assert.False(t, burner.IsOn, "waiting out the start delay")

	tw.stepUntil(t, ticks(0.5), func() bool { return burner.IsOn })
	assert.Equal(t, cfg.ClipBurnerOn, components.Animator.Get(b).Clip)
	assert.False(t, trap.Active, "flames are harmless until the ignite frame")

	tw.stepUntil(t, ticks(0.5), func() bool { return trap.Active })
	assert.True(t, burner.HitEnabled)
	assert.False(t, burner.PendingOn)
	assert.InDelta(t, 1.0, burner.Pending.Remaining(), 1.0/60)

	tw.stepUntil(t, ticks(1.5), func() bool { return !trap.Active })
	assert.False(t, burner.IsOn)
	assert.False(t, burner.HitEnabled)
	assert.True(t, burner.PendingOn)

	tw.stepUntil(t, ticks(1.5), func() bool { return burner.IsOn })
}

func TestBurnerStartsImmediatelyWithoutDelay(t *testing.T) {
	tw := newTestWorld(t)
	b := factory.CreateBurner(tw.ecs, assets.BurnerSpawn{Rect: assets.Rect{X: 600, Y: 368, Width: 32, Height: 32}})

	tw.step(0, false)
	assert.True(t, components.Burner.Get(b).IsOn)
}

func TestBurnerKeepsSinglePendingTimer(t *testing.T) {
	tw := newTestWorld(t)
	b := factory.CreateBurner(tw.ecs, assets.BurnerSpawn{
		Rect:    assets.Rect{X: 600, Y: 368, Width: 32, Height: 32},
		OnTime:  2,
		OffTime: 3,
	})
	burner := components.Burner.Get(b)

	onEnableHit(tw.ecs.World, b)
	assert.Equal(t, 2.0, burner.Pending.Remaining())
	assert.False(t, burner.PendingOn)

	// A later event replaces the timer instead of adding a second one
	onDisableHit(tw.ecs.World, b)
	assert.Equal(t, 3.0, burner.Pending.Remaining())
	assert.True(t, burner.PendingOn)
	assert.False(t, components.Trap.Get(b).Active)
}

func TestJumpPadCooldownAndPending(t *testing.T) {
	tw := newTestWorld(t)
	pad := factory.CreateJumpPad(tw.ecs, assets.JumpPadSpawn{Rect: assets.Rect{X: 500, Y: 384, Width: 32, Height: 16}})
	a := tw.spawnPlayer(100, groundTop)
	b := tw.spawnPlayer(200, groundTop)
	data := components.JumpPad.Get(pad)

	stepOnJumpPad(pad, a, 1.0)
	assert.Same(t, a, data.Pending)
	assert.Equal(t, 1.0, data.LastTime)
	assert.Equal(t, cfg.ClipJumpPadPress, components.Animator.Get(pad).Clip)

	stepOnJumpPad(pad, b, 1.2)
	assert.Same(t, a, data.Pending, "ignored while cooling down")
	assert.Equal(t, 1.0, data.LastTime)

	stepOnJumpPad(pad, b, 1.0+cfg.JumpPad.Cooldown)
	assert.Same(t, b, data.Pending)
}

func TestJumpPadBouncesOnItsFrame(t *testing.T) {
	tw := newTestWorld(t)
	pad := factory.CreateJumpPad(tw.ecs, assets.JumpPadSpawn{Rect: assets.Rect{X: 500, Y: 384, Width: 32, Height: 16}})
	p := tw.spawnPlayer(100, groundTop)
	data := components.JumpPad.Get(pad)

	stepOnJumpPad(pad, p, 0)
	for i := 0; i < ticks(cfg.Clips[cfg.ClipJumpPadPress].Duration) && data.Pending != nil; i++ {
		UpdateAnimators(tw.ecs)
		ProcessEvents(tw.ecs)
	}

	assert.Nil(t, data.Pending)
	assert.Equal(t, -data.BouncePower, components.Physics.Get(p).VelY)
}

func TestJumpPadStepTriggersBounce(t *testing.T) {
	tw := newTestWorld(t)
	factory.CreateJumpPad(tw.ecs, assets.JumpPadSpawn{Rect: assets.Rect{X: 84, Y: 384, Width: 32, Height: 16}})
	p := tw.spawnPlayer(100, groundTop)

	launched := false
	for i := 0; i < ticks(0.5) && !launched; i++ {
		tw.step(0, false)
		launched = components.Physics.Get(p).VelY < -cfg.Player.JumpPower
	}
	assert.True(t, launched)
}

func TestFanEasesPowerAndCycles(t *testing.T) {
	tw := newTestWorld(t)
	f := factory.CreateFan(tw.ecs, 600, 200, 64, 200)
	fan := components.Fan.Get(f)

	tw.step(0, false)
	assert.Greater(t, fan.CurrentPower, 0.0)
	assert.Less(t, fan.CurrentPower, fan.MaxPower)

	tw.idle(ticks(cfg.Fan.OnDuration) - 3)
	peak := fan.CurrentPower
	assert.InDelta(t, fan.MaxPower, peak, fan.MaxPower*0.05)

	tw.idle(5)
	assert.False(t, fan.IsOn)
	assert.Less(t, fan.CurrentPower, peak, "power eases down instead of cutting out")
}

func TestFanPushesPlayerUp(t *testing.T) {
	tw := newTestWorld(t)
	f := factory.CreateFan(tw.ecs, 80, 200, 40, 200)
	components.Fan.Get(f).CurrentPower = 1000
	p := tw.spawnPlayer(100, groundTop)

	UpdateContacts(tw.ecs)
	physics := components.Physics.Get(p)
	assert.Equal(t, -1000*physics.Mass, physics.ForceY)
}

func TestFallingPlatformCycle(t *testing.T) {
	tw := newTestWorld(t)
	fp := factory.CreateFallingPlatform(tw.ecs, 300, 300, 64, 16)
	platform := components.FallingPlatform.Get(fp)
	obj := components.Object.Get(fp).Object
	tw.spawnPlayer(332, 300)

	tw.stepUntil(t, ticks(0.5), func() bool { return platform.State == cfg.PlatformSinking })
	tw.stepUntil(t, ticks(1), func() bool { return platform.State == cfg.PlatformFalling })
	tw.stepUntil(t, ticks(2), func() bool { return platform.State == cfg.PlatformGone })
	assert.Nil(t, obj.Space, "a fallen platform is out of the collision space")

	tw.stepUntil(t, ticks(cfg.FallingPlatform.RespawnDelay)+2, func() bool { return platform.State == cfg.PlatformFloating })
	assert.NotNil(t, obj.Space)
	assert.Equal(t, 300.0, obj.X)
	assert.Equal(t, 300.0, obj.Y)
}

func TestFallingPlatformFloatsWhenUntouched(t *testing.T) {
	tw := newTestWorld(t)
	fp := factory.CreateFallingPlatform(tw.ecs, 300, 200, 64, 16)
	obj := components.Object.Get(fp).Object

	minY := obj.Y
	for i := 0; i < ticks(cfg.FallingPlatform.FloatDuration*2); i++ {
		tw.step(0, false)
		minY = min(minY, obj.Y)
		assert.GreaterOrEqual(t, obj.Y, 200-cfg.FallingPlatform.FloatDistance-1e-3)
		assert.LessOrEqual(t, obj.Y, 200.0+1e-3)
	}
	assert.Equal(t, cfg.PlatformFloating, components.FallingPlatform.Get(fp).State)
	assert.Less(t, minY, 200.0)
}

func TestMovingPlatformPingPongs(t *testing.T) {
	tw := newTestWorld(t)
	mp := factory.CreateMovingPlatform(tw.ecs, assets.MovingPlatformSpawn{
		Rect:  assets.Rect{X: 100, Y: 200, Width: 64, Height: 16},
		DX:    100,
		Speed: 0.5,
	})
	obj := components.Object.Get(mp).Object

	tw.idle(ticks(2))
	assert.InDelta(t, 200.0, obj.X, 1e-6, "far end after one leg")

	tw.idle(ticks(2))
	assert.InDelta(t, 100.0, obj.X, 1e-6, "back at the start")
}

func TestMovingPlatformCarriesPlayer(t *testing.T) {
	tw := newTestWorld(t)
	factory.CreateMovingPlatform(tw.ecs, assets.MovingPlatformSpawn{
		Rect:  assets.Rect{X: 300, Y: 300, Width: 96, Height: 16},
		DX:    100,
		Speed: 0.25,
	})
	p := tw.spawnPlayer(348, 300)
	tw.idle(2)
	start := components.Object.Get(p).X

	tw.idle(30)
	assert.True(t, components.Player.Get(p).Grounded)
	assert.Greater(t, components.Object.Get(p).X, start+10)
}

func TestSawSlidesAndKills(t *testing.T) {
	tw := newTestWorld(t)
	s := factory.CreateSaw(tw.ecs, assets.SawSpawn{Rect: assets.Rect{X: 500, Y: 376, Width: 24, Height: 24}, Distance: 64, Duration: 1})
	obj := components.Object.Get(s).Object

	tw.idle(ticks(1))
	assert.InDelta(t, 564.0, obj.X, 1)

	p := tw.spawnPlayer(obj.X+obj.W/2, groundTop)
	tw.step(0, false)
	assert.Equal(t, cfg.Dead, stateOf(p))
}
