package systems

import "github.com/yohamta/donburi/ecs"

// GameplaySystems is the per-tick simulation order after input polling.
// Sensors read last tick's resolved positions, hazards move before the player
// so carried players follow them, and queued clip events are handled once
// contacts have settled.
var GameplaySystems = []ecs.System{
	UpdateClock,
	UpdatePlayerInput,
	UpdateSensors,
	UpdatePlayerStates,
	UpdateBurners,
	UpdateFans,
	UpdateThwomps,
	UpdateFallingPlatforms,
	UpdateMovingPlatforms,
	UpdateSaws,
	UpdateObjects,
	UpdatePlayerPhysics,
	UpdatePhysics,
	UpdateContacts,
	UpdateAnimators,
	ProcessEvents,
	UpdateCheckpoints,
	UpdateStates,
	UpdateSession,
	UpdateCamera,
}

// AddGameplaySystems registers GameplaySystems on e in order.
func AddGameplaySystems(e *ecs.ECS) {
	for _, s := range GameplaySystems {
		e.AddSystem(s)
	}
}
