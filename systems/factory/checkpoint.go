package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCheckpoint creates a checkpoint trigger. Crossing it records its
// bottom centre as the respawn position in recorder.
func CreateCheckpoint(ecs *ecs.ECS, x, y, w, h float64, recorder components.CheckpointRecorder) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)

	obj := newBox(x, y, w, h, tags.ResolvTrigger)
	components.Object.SetValue(checkpoint, components.ObjectData{Object: obj})
	components.Contact.SetValue(checkpoint, components.ContactData{Kind: tags.ContactCheckpoint})
	addToSpace(ecs, checkpoint, obj)

	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		Activated: false,
		SpawnX:    x + w/2,
		SpawnY:    y + h,
		Recorder:  recorder,
	})
	components.Animator.SetValue(checkpoint, components.AnimatorData{
		Clip:  cfg.ClipCheckpointIdle,
		Speed: 1,
	})

	return checkpoint
}
