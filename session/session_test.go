package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const dt = 1.0 / 60.0

func newSession() *Session {
	return New(Settings{MaxScore: 99, GameOverDelay: 1.5, GameClearDelay: 1.5}, 10, 20)
}

func tickFor(s *Session, seconds float64) []Action {
	var fired []Action
	for i := 0; i < int(seconds/dt+0.5); i++ {
		if a := s.Tick(dt); a != ActionNone {
			fired = append(fired, a)
		}
	}
	return fired
}

func TestScoreClampsAtMax(t *testing.T) {
	s := newSession()
	for i := 1; i <= 99; i++ {
		s.AddScore()
		assert.Equal(t, i, s.Score())
	}
	for i := 0; i < 50; i++ {
		s.AddScore()
	}
	assert.Equal(t, 99, s.Score())
}

func TestRespawnPositionFallsBackToSpawn(t *testing.T) {
	s := newSession()
	x, y := s.RespawnPosition()
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 20.0, y)

	_, _, ok := s.Checkpoint()
	assert.False(t, ok)

	s.SetCheckpoint(100, 50)
	s.SetCheckpoint(300, 60)
	x, y = s.RespawnPosition()
	assert.Equal(t, 300.0, x)
	assert.Equal(t, 60.0, y)
}

func TestGameOverRespawnsAfterDelay(t *testing.T) {
	s := newSession()
	s.GameOver()
	assert.Equal(t, GameOver, s.Phase())

	assert.Empty(t, tickFor(s, 1.4))
	assert.Equal(t, []Action{ActionRespawn}, tickFor(s, 0.2))
	assert.Equal(t, Playing, s.Phase())
	assert.Empty(t, tickFor(s, 3))
}

func TestGameOverIsNotRearmedWhilePending(t *testing.T) {
	s := newSession()
	s.GameOver()
	tickFor(s, 1.0)
	s.GameOver()
	assert.Equal(t, []Action{ActionRespawn}, tickFor(s, 0.6))
}

func TestGameClearWinsOverPendingRespawn(t *testing.T) {
	s := newSession()
	s.GameOver()
	s.GameClear()
	assert.Equal(t, Cleared, s.Phase())

	fired := tickFor(s, 2)
	assert.Equal(t, []Action{ActionRestart}, fired)

	// Game over after clear is ignored.
	s.GameOver()
	assert.Equal(t, Cleared, s.Phase())
}

func TestZeroDelayFiresOnNextTick(t *testing.T) {
	s := New(Settings{MaxScore: 1}, 0, 0)
	s.GameOver()
	assert.Equal(t, ActionRespawn, s.Tick(dt))
}
