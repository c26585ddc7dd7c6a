package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/automoto/platformer/scenes"
	"github.com/automoto/platformer/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.Enabled, "debug", false, "draw collision shapes and states")
	flag.StringVar(&config.Debug.ConfigPath, "config", "", "YAML file with tuning overrides")
	flag.BoolVar(&config.Debug.Watch, "watch", false, "reload the -config file when it changes")
	flag.StringVar(&config.Game.Level, "level", config.Game.Level, "embedded level to play")
	flag.Parse()

	if config.Debug.ConfigPath != "" {
		if err := config.LoadOverrides(config.Debug.ConfigPath); err != nil {
			log.Fatalf("Invalid tuning file: %v", err)
		}
	} else if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Initialize persistence; the game still runs without it
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	level, err := assets.NewLevelLoader().LoadLevel(config.Game.Level)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	var watcher *config.Watcher
	if config.Debug.Watch && config.Debug.ConfigPath != "" {
		watcher, err = config.Watch(config.Debug.ConfigPath)
		if err != nil {
			log.Fatalf("Failed to watch %s: %v", config.Debug.ConfigPath, err)
		}
		defer watcher.Close()
	}

	g := &Game{}
	scene, err := scenes.NewPlatformerScene(g, &level, watcher)
	if err != nil {
		log.Fatalf("Failed to build level: %v", err)
	}
	g.scene = scene

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Platformer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
