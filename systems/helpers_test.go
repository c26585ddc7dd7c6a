package systems

import (
	"testing"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/session"
	"github.com/automoto/platformer/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const groundTop = 400.0

// testWorld is a 1000x600 level with a floor whose top is at groundTop.
type testWorld struct {
	ecs     *ecs.ECS
	session *session.Session
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	cfg.SetDefaults()
	t.Cleanup(cfg.SetDefaults)

	w := ecs.NewECS(donburi.NewWorld())
	RegisterEvents(w.World)
	factory.CreateSpace(w, 1000, 600, cfg.Physics.CellSize, cfg.Physics.CellSize)

	s := session.New(session.Settings{
		MaxScore:       cfg.Game.MaxScore,
		GameOverDelay:  cfg.Game.GameOverDelay,
		GameClearDelay: cfg.Game.GameClearDelay,
	}, 100, groundTop)
	factory.CreateGame(w, s, 0)
	factory.CreateGround(w, 0, groundTop, 1000, 50)

	return &testWorld{ecs: w, session: s}
}

// spawnPlayer creates a player with its feet at (x, y) that already has
// control.
func (tw *testWorld) spawnPlayer(x, y float64) *donburi.Entry {
	e := factory.CreatePlayer(tw.ecs, x, y, tw.session)
	EnableControl(e)
	components.Animator.Get(e).Play(cfg.ClipIdle)
	return e
}

// step runs one gameplay tick with the given horizontal input and jump key.
func (tw *testWorld) step(move float64, jump bool) {
	input := getOrCreateInput(tw.ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[cfg.ActionJump] = jump
	input.MoveX = move

	for _, system := range GameplaySystems {
		system(tw.ecs)
	}
}

func (tw *testWorld) idle(ticks int) {
	for i := 0; i < ticks; i++ {
		tw.step(0, false)
	}
}

// stepUntil ticks until done reports true, failing after limit ticks.
func (tw *testWorld) stepUntil(t *testing.T, limit int, done func() bool) {
	t.Helper()
	for i := 0; i < limit; i++ {
		tw.step(0, false)
		if done() {
			return
		}
	}
	require.FailNow(t, "condition not reached", "after %d ticks", limit)
}

func ticks(seconds float64) int {
	return int(seconds*float64(cfg.C.TPS) + 0.5)
}

func stateOf(e *donburi.Entry) cfg.PlayerState {
	return components.State.Get(e).CurrentState
}

// moveTo places the player's feet at (x, y).
func moveTo(e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e)
	obj.X = x - obj.W/2
	obj.Y = y - obj.H
	obj.Update()
}

// countingGame records the outcomes a player reports.
type countingGame struct {
	scores, overs, clears int
}

func (g *countingGame) AddScore()  { g.scores++ }
func (g *countingGame) GameOver()  { g.overs++ }
func (g *countingGame) GameClear() { g.clears++ }
