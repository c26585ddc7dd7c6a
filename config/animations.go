package config

// ClipEvent names a point on an animation timeline that gameplay reacts to.
type ClipEvent string

const (
	EventAppearFinished ClipEvent = "appear_finished"
	EventDeathFinished  ClipEvent = "death_finished"
	EventEnableHit      ClipEvent = "enable_hit"
	EventDisableHit     ClipEvent = "disable_hit"
	EventPadBounce      ClipEvent = "pad_bounce"
	EventFlagRaised     ClipEvent = "flag_raised"
)

// ClipMark fires Event once when playback crosses Time.
type ClipMark struct {
	Time  float64
	Event ClipEvent
}

// ClipDef describes the timeline of one animation clip. Non-looping clips
// switch to Next (if set) after Duration.
type ClipDef struct {
	Duration float64
	Loop     bool
	Next     string
	Marks    []ClipMark
}

// Clip names
const (
	ClipIdle            = "idle"
	ClipAppear          = "appear"
	ClipDeath           = "death"
	ClipBurnerOn        = "burner_on"
	ClipBurnerBurning   = "burner_burning"
	ClipBurnerOff       = "burner_off"
	ClipBurnerIdle      = "burner_idle"
	ClipJumpPadIdle     = "jumppad_idle"
	ClipJumpPadPress    = "jumppad_press"
	ClipCheckpointIdle  = "checkpoint_idle"
	ClipCheckpointRaise = "checkpoint_raise"
)

// Clips maps a clip name to its timeline.
var Clips map[string]ClipDef

// requiredClipEvents lists the gameplay events that must exist on a clip for
// the matching mechanic to work at all.
var requiredClipEvents = map[string]ClipEvent{
	ClipAppear:       EventAppearFinished,
	ClipDeath:        EventDeathFinished,
	ClipBurnerOn:     EventEnableHit,
	ClipBurnerOff:    EventDisableHit,
	ClipJumpPadPress: EventPadBounce,
}

func init() {
	Clips = map[string]ClipDef{
		ClipIdle:   {Duration: 0.6, Loop: true},
		ClipAppear: {Duration: 0.5, Next: ClipIdle, Marks: []ClipMark{{Time: 0.5, Event: EventAppearFinished}}},
		ClipDeath:  {Duration: 0.6, Marks: []ClipMark{{Time: 0.6, Event: EventDeathFinished}}},

		// The flame only hurts once the ignition frames are over.
		ClipBurnerOn:      {Duration: 0.3, Next: ClipBurnerBurning, Marks: []ClipMark{{Time: 0.3, Event: EventEnableHit}}},
		ClipBurnerBurning: {Duration: 0.4, Loop: true},
		ClipBurnerOff:     {Duration: 0.3, Next: ClipBurnerIdle, Marks: []ClipMark{{Time: 0, Event: EventDisableHit}}},
		ClipBurnerIdle:    {Duration: 1, Loop: true},

		ClipJumpPadIdle:  {Duration: 1, Loop: true},
		ClipJumpPadPress: {Duration: 0.25, Next: ClipJumpPadIdle, Marks: []ClipMark{{Time: 0.1, Event: EventPadBounce}}},

		ClipCheckpointIdle:  {Duration: 1, Loop: true},
		ClipCheckpointRaise: {Duration: 0.4, Marks: []ClipMark{{Time: 0.4, Event: EventFlagRaised}}},
	}
}
