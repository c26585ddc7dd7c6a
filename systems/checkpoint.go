package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// activateCheckpoint records the checkpoint as the respawn position. The flag
// is raised only the first time.
func activateCheckpoint(e *donburi.Entry) {
	checkpoint := components.Checkpoint.Get(e)
	if checkpoint.Recorder != nil {
		checkpoint.Recorder.SetCheckpoint(checkpoint.SpawnX, checkpoint.SpawnY)
	}

	if checkpoint.Activated {
		return
	}
	checkpoint.Activated = true

	anim := components.Animator.Get(e)
	anim.Play(cfg.ClipCheckpointRaise)
	anim.Params.IsOn = true

	raise := float32(cfg.Clips[cfg.ClipCheckpointRaise].Duration)
	components.Tween.SetValue(e, components.NewTween(false, gween.New(0, 1, raise, ease.OutBack)))
}

// UpdateCheckpoints animates raised flags.
func UpdateCheckpoints(ecs *ecs.ECS) {
	dt := cfg.C.DeltaTime()

	components.Checkpoint.Each(ecs.World, func(e *donburi.Entry) {
		checkpoint := components.Checkpoint.Get(e)
		if !checkpoint.Activated {
			return
		}
		v, _ := components.Tween.Get(e).Update(dt)
		checkpoint.FlagRaise = v
	})
}

func onFlagRaised(_ donburi.World, e *donburi.Entry) {
	if !e.HasComponent(components.Checkpoint) {
		return
	}
	components.Checkpoint.Get(e).FlagRaise = 1
}
