package components

import "github.com/yohamta/donburi"

// CheckpointRecorder stores the respawn position checkpoints hand out.
type CheckpointRecorder interface {
	SetCheckpoint(x, y float64)
}

type CheckpointData struct {
	Activated bool    // visual only; crossing always records the spawn
	SpawnX    float64 // respawn position (bottom centre of the checkpoint)
	SpawnY    float64
	FlagRaise float64 // 0 lowered .. 1 raised
	Recorder  CheckpointRecorder
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()
