package systems

import (
	"testing"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/session"
	"github.com/automoto/platformer/systems/factory"
	"github.com/automoto/platformer/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func burnerAt(x, y float64) assets.BurnerSpawn {
	return assets.BurnerSpawn{Rect: assets.Rect{X: x, Y: y, Width: 32, Height: 32}}
}

func TestEveryContactKindHasHandler(t *testing.T) {
	for _, k := range tags.ContactKinds() {
		h, ok := contactHandlers[k]
		if assert.True(t, ok, "no handler for %s", k) {
			assert.True(t, h.enter != nil || h.stay != nil, "empty handler for %s", k)
		}
	}
}

func TestEveryClipEventHasHandler(t *testing.T) {
	for _, def := range cfg.Clips {
		for _, m := range def.Marks {
			assert.Contains(t, clipHandlers, m.Event)
		}
	}
}

func TestItemScoresOnceAndDisappears(t *testing.T) {
	tw := newTestWorld(t)
	item := factory.CreateItem(tw.ecs, 90, 370, 16, 16)
	obj := components.Object.Get(item).Object
	tw.spawnPlayer(100, groundTop)

	UpdateContacts(tw.ecs)
	UpdateContacts(tw.ecs)

	assert.Equal(t, 1, tw.session.Score())
	assert.False(t, item.Valid())
	assert.Nil(t, obj.Space)
}

func TestScoreClampsThroughItems(t *testing.T) {
	tw := newTestWorld(t)
	tw.spawnPlayer(100, groundTop)

	for i := 0; i < cfg.Game.MaxScore+5; i++ {
		factory.CreateItem(tw.ecs, 90, 370, 16, 16)
		UpdateContacts(tw.ecs)
	}
	assert.Equal(t, cfg.Game.MaxScore, tw.session.Score())
}

func TestCheckpointRecordsEveryCrossing(t *testing.T) {
	tw := newTestWorld(t)
	a := factory.CreateCheckpoint(tw.ecs, 200, 336, 16, 64, tw.session)
	b := factory.CreateCheckpoint(tw.ecs, 500, 336, 16, 64, tw.session)
	p := tw.spawnPlayer(208, groundTop)

	UpdateContacts(tw.ecs)
	x, y, ok := tw.session.Checkpoint()
	require.True(t, ok)
	assert.Equal(t, 208.0, x)
	assert.Equal(t, groundTop, y)
	assert.True(t, components.Checkpoint.Get(a).Activated)
	assert.Equal(t, cfg.ClipCheckpointRaise, components.Animator.Get(a).Clip)

	moveTo(p, 508, groundTop)
	UpdateContacts(tw.ecs)
	x, _, _ = tw.session.Checkpoint()
	assert.Equal(t, 508.0, x)
	assert.True(t, components.Checkpoint.Get(b).Activated)

	// Going back records the first one again without replaying its raise
	components.Animator.Get(a).Play(cfg.ClipCheckpointIdle)
	moveTo(p, 208, groundTop)
	UpdateContacts(tw.ecs)
	x, _, _ = tw.session.Checkpoint()
	assert.Equal(t, 208.0, x)
	assert.Equal(t, cfg.ClipCheckpointIdle, components.Animator.Get(a).Clip)
}

func TestCheckpointFlagRaises(t *testing.T) {
	tw := newTestWorld(t)
	c := factory.CreateCheckpoint(tw.ecs, 200, 336, 16, 64, tw.session)
	tw.spawnPlayer(208, groundTop)

	tw.step(0, false)
	checkpoint := components.Checkpoint.Get(c)
	assert.Greater(t, checkpoint.FlagRaise, 0.0)

	tw.idle(ticks(cfg.Clips[cfg.ClipCheckpointRaise].Duration) + 2)
	assert.InDelta(t, 1.0, checkpoint.FlagRaise, 1e-6)
}

func TestDeathRespawnsAtCheckpoint(t *testing.T) {
	tw := newTestWorld(t)
	factory.CreateCheckpoint(tw.ecs, 300, 336, 16, 64, tw.session)
	p := tw.spawnPlayer(308, groundTop)
	tw.step(0, false)

	moveTo(p, 600, groundTop)
	RequestDeath(p)
	require.Equal(t, session.GameOver, tw.session.Phase())

	player := components.Player.Get(p)
	tw.stepUntil(t, ticks(cfg.Game.GameOverDelay)+2, func() bool { return stateOf(p) != cfg.Dead })
	obj := components.Object.Get(p)
	assert.Equal(t, 308.0, obj.X+obj.W/2)
	assert.Equal(t, groundTop, obj.Y+obj.H)
	assert.Equal(t, session.Playing, tw.session.Phase())
	assert.False(t, player.CanControl)

	tw.stepUntil(t, ticks(1), func() bool { return player.CanControl })
}

func TestFinishClearsOnce(t *testing.T) {
	tw := newTestWorld(t)
	game := &countingGame{}
	factory.CreateFinishLine(tw.ecs, 90, 336, 32, 64)
	p := factory.CreatePlayer(tw.ecs, 100, groundTop, game)
	EnableControl(p)

	UpdateContacts(tw.ecs)
	UpdateContacts(tw.ecs)

	assert.Equal(t, 1, game.clears)
	assert.False(t, components.Player.Get(p).CanControl)
}

func TestClearRequestsRestart(t *testing.T) {
	tw := newTestWorld(t)
	factory.CreateFinishLine(tw.ecs, 90, 336, 32, 64)
	tw.spawnPlayer(100, groundTop)

	tw.step(0, false)
	require.Equal(t, session.Cleared, tw.session.Phase())

	game := getGame(tw.ecs)
	tw.stepUntil(t, ticks(cfg.Game.GameClearDelay)+2, func() bool { return game.RestartRequested })
}

func TestDeadPlayerCannotFinish(t *testing.T) {
	tw := newTestWorld(t)
	factory.CreateFinishLine(tw.ecs, 90, 336, 32, 64)
	p := tw.spawnPlayer(100, groundTop)
	RequestDeath(p)

	UpdateContacts(tw.ecs)
	assert.Equal(t, session.GameOver, tw.session.Phase())
}

func TestInactiveTrapIsHarmless(t *testing.T) {
	tw := newTestWorld(t)
	b := factory.CreateBurner(tw.ecs, burnerAt(90, 368))
	p := tw.spawnPlayer(100, groundTop)

	UpdateContacts(tw.ecs)
	assert.NotEqual(t, cfg.Dead, stateOf(p))

	// Igniting under a player already standing in it still kills
	components.Trap.Get(b).Active = true
	UpdateContacts(tw.ecs)
	assert.Equal(t, cfg.Dead, stateOf(p))
}

func TestDeadZoneKills(t *testing.T) {
	tw := newTestWorld(t)
	factory.CreateDeadZone(tw.ecs, 0, 300, 1000, 60)
	p := tw.spawnPlayer(100, 350)

	UpdateContacts(tw.ecs)
	assert.Equal(t, cfg.Dead, stateOf(p))
	assert.Equal(t, session.GameOver, tw.session.Phase())
}

func TestRespawningPlayerIgnoresTraps(t *testing.T) {
	tw := newTestWorld(t)
	factory.CreateDeadZone(tw.ecs, 280, groundTop-60, 40, 60)
	p := tw.spawnPlayer(100, groundTop)
	player := components.Player.Get(p)

	Respawn(p, 300, groundTop)
	tw.stepUntil(t, ticks(cfg.Clips[cfg.ClipAppear].Duration)+5, func() bool { return player.CanControl })

	assert.Equal(t, cfg.Idle, stateOf(p))
	assert.Equal(t, session.Playing, tw.session.Phase())
}

func TestRespawnInsideFanGetsNoStoredForce(t *testing.T) {
	tw := newTestWorld(t)
	f := factory.CreateFan(tw.ecs, 280, 200, 40, groundTop-200)
	fan := components.Fan.Get(f)
	fan.IsOn = true
	fan.CurrentPower = fan.MaxPower
	fan.TargetPower = fan.MaxPower
	fan.Phase.Reset(10)

	p := tw.spawnPlayer(100, groundTop)
	player := components.Player.Get(p)
	physics := components.Physics.Get(p)

	Respawn(p, 300, groundTop)
	tw.stepUntil(t, ticks(cfg.Clips[cfg.ClipAppear].Duration)+5, func() bool { return player.CanControl })
	assert.Equal(t, 0.0, physics.ForceY)
	assert.Equal(t, 0.0, physics.VelY)

	// One tick of push once the body simulates again
	tw.step(0, false)
	assert.GreaterOrEqual(t, physics.VelY, -fan.MaxPower*cfg.C.DeltaTime()-1e-9)
}
