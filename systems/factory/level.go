package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/session"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{CurrentLevel: level})
	return entry
}

// CreateGame creates the singleton holding the run's session.
func CreateGame(ecs *ecs.ECS, s *session.Session, bestScore int) *donburi.Entry {
	entry := archetypes.Game.Spawn(ecs)
	components.Game.Set(entry, &components.GameData{
		Session:   s,
		BestScore: bestScore,
	})
	return entry
}

// PopulateLevel creates every level object. Terrain comes first so hazards
// created later can already query it.
func PopulateLevel(ecs *ecs.ECS, level *assets.Level, s *session.Session) error {
	for _, r := range level.Ground {
		CreateGround(ecs, r.X, r.Y, r.Width, r.Height)
	}
	for _, r := range level.Walls {
		CreateWall(ecs, r.X, r.Y, r.Width, r.Height)
	}
	for _, r := range level.DeadZones {
		CreateDeadZone(ecs, r.X, r.Y, r.Width, r.Height)
	}
	for _, r := range level.FallingPlatforms {
		CreateFallingPlatform(ecs, r.X, r.Y, r.Width, r.Height)
	}
	for _, p := range level.MovingPlatforms {
		CreateMovingPlatform(ecs, p)
	}
	for _, t := range level.Thwomps {
		if _, err := CreateThwomp(ecs, t); err != nil {
			return err
		}
	}
	for _, b := range level.Burners {
		CreateBurner(ecs, b)
	}
	for _, j := range level.JumpPads {
		CreateJumpPad(ecs, j)
	}
	for _, r := range level.Fans {
		CreateFan(ecs, r.X, r.Y, r.Width, r.Height)
	}
	for _, sw := range level.Saws {
		CreateSaw(ecs, sw)
	}
	for _, r := range level.Checkpoints {
		CreateCheckpoint(ecs, r.X, r.Y, r.Width, r.Height, s)
	}
	for _, r := range level.FinishLines {
		CreateFinishLine(ecs, r.X, r.Y, r.Width, r.Height)
	}
	for _, r := range level.Items {
		CreateItem(ecs, r.X, r.Y, r.Width, r.Height)
	}
	return nil
}
