package systems

import (
	"testing"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

const testLoopClip = "test_loop"

func collectClipEvents(w donburi.World) *[]ClipEvent {
	var got []ClipEvent
	ClipEventType.Subscribe(w, func(_ donburi.World, ev ClipEvent) {
		got = append(got, ev)
	})
	return &got
}

func TestLoopingClipFiresMarkEveryLap(t *testing.T) {
	cfg.Clips[testLoopClip] = cfg.ClipDef{Duration: 0.5, Loop: true, Marks: []cfg.ClipMark{{Time: 0.25, Event: "tick"}}}
	t.Cleanup(func() { delete(cfg.Clips, testLoopClip) })

	w := donburi.NewWorld()
	got := collectClipEvents(w)
	anim := &components.AnimatorData{Clip: testLoopClip, Speed: 1}

	for i := 0; i < 6; i++ {
		advanceClip(w, donburi.Null, anim, 0.2)
	}
	events.ProcessAllEvents(w)

	// 1.2 seconds of a 0.5 second loop pass the mark twice
	assert.Len(t, *got, 2)
	assert.InDelta(t, 0.2, anim.Time, 1e-9)
}

func TestMarkAtZeroFiresOnFirstAdvance(t *testing.T) {
	w := donburi.NewWorld()
	got := collectClipEvents(w)
	anim := &components.AnimatorData{Speed: 1}
	anim.Play(cfg.ClipBurnerOff)

	advanceClip(w, donburi.Null, anim, 1.0/60)
	advanceClip(w, donburi.Null, anim, 1.0/60)
	events.ProcessAllEvents(w)

	if assert.Len(t, *got, 1) {
		assert.Equal(t, cfg.EventDisableHit, (*got)[0].Event)
	}
}

func TestClipAdvancesToNext(t *testing.T) {
	w := donburi.NewWorld()
	got := collectClipEvents(w)
	anim := &components.AnimatorData{Speed: 1}
	anim.Play(cfg.ClipAppear)

	advanceClip(w, donburi.Null, anim, cfg.Clips[cfg.ClipAppear].Duration+0.01)
	events.ProcessAllEvents(w)

	assert.Equal(t, cfg.ClipIdle, anim.Clip)
	assert.Equal(t, 0.0, anim.Time)
	if assert.Len(t, *got, 1) {
		assert.Equal(t, cfg.EventAppearFinished, (*got)[0].Event)
		assert.Equal(t, cfg.ClipAppear, (*got)[0].Clip)
	}
}

func TestOneShotClipHoldsLastFrame(t *testing.T) {
	w := donburi.NewWorld()
	anim := &components.AnimatorData{Speed: 1}
	anim.Play(cfg.ClipCheckpointRaise)

	advanceClip(w, donburi.Null, anim, 10)
	assert.Equal(t, cfg.ClipCheckpointRaise, anim.Clip)
	assert.Equal(t, 1.0, anim.Progress())
}

func TestEventsForRemovedEntitiesAreDropped(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.spawnPlayer(100, groundTop)
	DisableControl(p)
	entity := p.Entity()

	ClipEventType.Publish(tw.ecs.World, ClipEvent{Entity: entity, Event: cfg.EventAppearFinished})
	tw.ecs.World.Remove(entity)

	assert.NotPanics(t, func() { ProcessEvents(tw.ecs) })
}

func TestPlayerAnimatorParams(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.spawnPlayer(100, groundTop)
	tw.idle(2)
	tw.step(0, true)

	params := components.Animator.Get(p).Params
	assert.Equal(t, int(cfg.Idle), params.State, "state is picked before the jump impulse")
	assert.Equal(t, 1, params.JumpCount)
	assert.Greater(t, params.VerticalSpeed, 0.0, "up is positive")
}
