package systems

import (
	cfg "github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// ClipEvent is published when an animator crosses a mark on its clip.
type ClipEvent struct {
	Entity donburi.Entity
	Event  cfg.ClipEvent
	Clip   string
}

var ClipEventType = events.NewEventType[ClipEvent]()

// clipHandlers maps each timeline event to the gameplay reaction.
var clipHandlers = map[cfg.ClipEvent]func(w donburi.World, e *donburi.Entry){
	cfg.EventAppearFinished: onAppearFinished,
	cfg.EventDeathFinished:  onDeathFinished,
	cfg.EventEnableHit:      onEnableHit,
	cfg.EventDisableHit:     onDisableHit,
	cfg.EventPadBounce:      onPadBounce,
	cfg.EventFlagRaised:     onFlagRaised,
}

// RegisterEvents subscribes the gameplay handlers on w. Call once per world.
func RegisterEvents(w donburi.World) {
	ClipEventType.Subscribe(w, dispatchClipEvent)
}

func dispatchClipEvent(w donburi.World, ev ClipEvent) {
	handler, ok := clipHandlers[ev.Event]
	if !ok {
		return
	}
	// The entity may be gone by the time the queue is drained
	if !w.Valid(ev.Entity) {
		return
	}
	handler(w, w.Entry(ev.Entity))
}

// ProcessEvents drains the queued events. It runs after physics and contacts
// so handlers see this tick's resolved state.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}
