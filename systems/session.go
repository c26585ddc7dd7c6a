package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/session"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func getGame(ecs *ecs.ECS) *components.GameData {
	entry, ok := components.Game.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Game.Get(entry)
}

// clock returns the scene time in seconds.
func clock(ecs *ecs.ECS) float64 {
	if game := getGame(ecs); game != nil {
		return game.Clock
	}
	return 0
}

func UpdateClock(ecs *ecs.ECS) {
	if game := getGame(ecs); game != nil {
		game.Clock += cfg.C.DeltaTime()
	}
}

// UpdateSession runs the delayed respawn and restart actions of the session
// and handles the restart and debug keys.
func UpdateSession(ecs *ecs.ECS) {
	game := getGame(ecs)
	if game == nil || game.Session == nil {
		return
	}

	switch game.Session.Tick(cfg.C.DeltaTime()) {
	case session.ActionRespawn:
		respawnPlayers(ecs, game.Session)
	case session.ActionRestart:
		game.BestScore = RecordClear(cfg.Game.Level, game.Session.Score())
		game.RestartRequested = true
	}

	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionRestart).JustPressed {
		game.RestartRequested = true
	}
	if GetAction(input, cfg.ActionDebug).JustPressed {
		game.ShowDebug = !game.ShowDebug
	}
}

func respawnPlayers(ecs *ecs.ECS, s *session.Session) {
	rx, ry := s.RespawnPosition()
	x, y := safeRespawnPosition(getSpace(ecs), rx, ry)
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		Respawn(e, x, y)
	})
}
