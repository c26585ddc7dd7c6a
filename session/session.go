// Package session owns the per-run game state shared by the player and the
// level objects: score, the last checkpoint and the delayed game over and
// game clear transitions. A Session is created by the scene and handed to
// the factories; nothing reaches it through globals.
package session

import "github.com/automoto/platformer/shared/countdown"

// Phase is the coarse flow state of a run.
type Phase int

const (
	Playing Phase = iota
	GameOver
	Cleared
)

func (p Phase) String() string {
	switch p {
	case GameOver:
		return "game_over"
	case Cleared:
		return "cleared"
	}
	return "playing"
}

// Action is what the owner of a session has to do after a Tick.
type Action int

const (
	ActionNone Action = iota
	ActionRespawn
	ActionRestart
)

// Settings are the fixed rules of a session.
type Settings struct {
	MaxScore       int
	GameOverDelay  float64
	GameClearDelay float64
}

// Session is not safe for concurrent use; the game loop is its only writer.
type Session struct {
	settings Settings
	score    int
	phase    Phase

	spawnX, spawnY           float64
	checkpointX, checkpointY float64
	hasCheckpoint            bool

	// One delayed transition at a time, fired by Tick.
	pending Action
	delay   countdown.Countdown
}

// New starts a session with the level's default spawn position.
func New(settings Settings, spawnX, spawnY float64) *Session {
	return &Session{
		settings: settings,
		spawnX:   spawnX,
		spawnY:   spawnY,
	}
}

func (s *Session) Score() int   { return s.score }
func (s *Session) Phase() Phase { return s.phase }

// AddScore adds one point, saturating at the configured maximum.
func (s *Session) AddScore() {
	if s.score < s.settings.MaxScore {
		s.score++
	}
}

// GameOver schedules a respawn after the game over delay. Calls while a
// respawn or restart is already pending are ignored.
func (s *Session) GameOver() {
	if s.phase != Playing {
		return
	}
	s.phase = GameOver
	s.schedule(ActionRespawn, s.settings.GameOverDelay)
}

// GameClear schedules a level restart after the clear delay.
func (s *Session) GameClear() {
	if s.phase == Cleared {
		return
	}
	s.phase = Cleared
	s.schedule(ActionRestart, s.settings.GameClearDelay)
}

func (s *Session) schedule(a Action, delay float64) {
	s.pending = a
	s.delay.Reset(delay)
}

// SetCheckpoint records the respawn position. Every checkpoint crossing
// overwrites the previous one.
func (s *Session) SetCheckpoint(x, y float64) {
	s.checkpointX, s.checkpointY = x, y
	s.hasCheckpoint = true
}

// Checkpoint returns the last checkpoint position, if any was crossed.
func (s *Session) Checkpoint() (x, y float64, ok bool) {
	return s.checkpointX, s.checkpointY, s.hasCheckpoint
}

// RespawnPosition is the last checkpoint or the level's default spawn.
func (s *Session) RespawnPosition() (float64, float64) {
	if s.hasCheckpoint {
		return s.checkpointX, s.checkpointY
	}
	return s.spawnX, s.spawnY
}

// Tick advances the pending delay and returns its action on the tick it
// fires. A zero delay fires on the next Tick.
func (s *Session) Tick(dt float64) Action {
	if s.pending == ActionNone {
		return ActionNone
	}
	s.delay.Tick(dt)
	if s.delay.Active() {
		return ActionNone
	}

	a := s.pending
	s.pending = ActionNone
	if a == ActionRespawn {
		s.phase = Playing
	}
	return a
}
