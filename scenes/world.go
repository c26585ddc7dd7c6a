package scenes

import (
	"fmt"
	"log"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/session"
	"github.com/automoto/platformer/systems"
	"github.com/automoto/platformer/systems/factory"
	"github.com/automoto/platformer/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene plays one level. Clearing it or pressing restart rebuilds
// the world from the same level.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	level        *assets.Level
	hud          *ui.HUD
	watcher      *cfg.Watcher
}

// NewPlatformerScene builds the scene for level. watcher may be nil.
func NewPlatformerScene(sc SceneChanger, level *assets.Level, watcher *cfg.Watcher) (*PlatformerScene, error) {
	hud, err := ui.NewHUD()
	if err != nil {
		return nil, err
	}
	world, err := BuildWorld(level, systems.BestScore(cfg.Game.Level), systems.UpdateInput)
	if err != nil {
		return nil, err
	}
	return &PlatformerScene{
		ecs:          world,
		sceneChanger: sc,
		level:        level,
		hud:          hud,
		watcher:      watcher,
	}, nil
}

// BuildWorld creates the ECS for level: systems, renderers, event handlers
// and every entity. before runs ahead of the gameplay systems each tick.
func BuildWorld(level *assets.Level, bestScore int, before ...ecs.System) (*ecs.ECS, error) {
	spawn := level.PlayerSpawn()

	world := ecs.NewECS(donburi.NewWorld())
	for _, s := range before {
		world.AddSystem(s)
	}
	systems.AddGameplaySystems(world)
	systems.RegisterEvents(world.World)

	world.AddRenderer(cfg.Default, systems.DrawLevel)
	world.AddRenderer(cfg.Overlay, systems.DrawDebug)

	s := session.New(session.Settings{
		MaxScore:       cfg.Game.MaxScore,
		GameOverDelay:  cfg.Game.GameOverDelay,
		GameClearDelay: cfg.Game.GameClearDelay,
	}, spawn.X, spawn.Y)

	// Level and space first so every object can register itself
	factory.CreateLevel(world, level)
	factory.CreateSpace(world, level.Width, level.Height, cfg.Physics.CellSize, cfg.Physics.CellSize)
	factory.CreateGame(world, s, bestScore)
	factory.CreateCamera(world, spawn.X, spawn.Y)

	if err := factory.PopulateLevel(world, level, s); err != nil {
		return nil, fmt.Errorf("level %s: %w", level.Name, err)
	}
	factory.CreatePlayer(world, spawn.X, spawn.Y, s)

	return world, nil
}

func (ps *PlatformerScene) Update() {
	ps.reloadTuning()
	ps.ecs.Update()

	game := ps.game()
	ps.hud.Update(game)

	if game != nil && game.RestartRequested {
		ps.restart(game.BestScore)
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Layers draw in order: world, then debug overlay
	ps.ecs.Draw(screen)
	ps.hud.Draw(screen)
}

func (ps *PlatformerScene) game() *components.GameData {
	entry, ok := components.Game.First(ps.ecs.World)
	if !ok {
		return nil
	}
	return components.Game.Get(entry)
}

func (ps *PlatformerScene) restart(bestScore int) {
	next, err := NewPlatformerScene(ps.sceneChanger, ps.level, ps.watcher)
	if err != nil {
		log.Printf("Warning: Could not restart level: %v", err)
		return
	}
	if g := next.game(); g != nil {
		g.BestScore = max(g.BestScore, bestScore)
	}
	ps.sceneChanger.ChangeScene(next)
}

// reloadTuning applies the tuning file again after it changed on disk.
// Invalid files are reported and leave the current values in place.
func (ps *PlatformerScene) reloadTuning() {
	if ps.watcher == nil {
		return
	}
	changed, err := ps.watcher.Poll()
	if err != nil {
		log.Printf("Warning: tuning watcher: %v", err)
	}
	if !changed {
		return
	}
	if err := cfg.LoadOverrides(cfg.Debug.ConfigPath); err != nil {
		log.Printf("Warning: tuning not reloaded: %v", err)
		return
	}
	log.Printf("Reloaded tuning from %s", cfg.Debug.ConfigPath)
}
