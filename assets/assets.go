package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// ErrNoPlayerSpawn is returned for maps without a PlayerSpawn object.
var ErrNoPlayerSpawn = errors.New("no player spawn points defined in map")

// Rect is a Tiled rectangle object in pixels, origin at its top-left corner.
type Rect struct {
	X, Y, Width, Height float64
}

type PlayerSpawn struct {
	X float64
	Y float64 // feet position
}

type ThwompSpawn struct {
	Rect
	Axis string // "down", "left", "right", "up"; empty uses the default
}

type BurnerSpawn struct {
	Rect
	StartDelay float64
	OnTime     float64 // zero uses the default
	OffTime    float64
}

type JumpPadSpawn struct {
	Rect
	BouncePower float64 // zero uses the default
}

type SawSpawn struct {
	Rect
	Distance float64
	Duration float64
}

type MovingPlatformSpawn struct {
	Rect
	DX, DY float64 // offset of the far end of the path
	Speed  float64
}

type Level struct {
	Name   string
	Width  int
	Height int

	PlayerSpawns     []PlayerSpawn
	Ground           []Rect
	Walls            []Rect
	DeadZones        []Rect
	Checkpoints      []Rect
	FinishLines      []Rect
	Items            []Rect
	Fans             []Rect
	FallingPlatforms []Rect
	Thwomps          []ThwompSpawn
	Burners          []BurnerSpawn
	JumpPads         []JumpPadSpawn
	Saws             []SawSpawn
	MovingPlatforms  []MovingPlatformSpawn
}

// PlayerSpawn returns the left-most spawn point.
func (l *Level) PlayerSpawn() PlayerSpawn {
	return l.PlayerSpawns[0]
}

type LevelLoader struct {
	fsys fs.FS
}

// NewLevelLoader returns a loader reading the embedded levels.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS}
}

// NewLevelLoaderFS returns a loader reading levels from fsys.
func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

// LevelNames lists the .tmx files under levels/.
func (l *LevelLoader) LevelNames() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, "levels")
	if err != nil {
		return nil, fmt.Errorf("read levels directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			names = append(names, "levels/"+entry.Name())
		}
	}
	if len(names) == 0 {
		return nil, errors.New("no level files found in levels directory")
	}
	return names, nil
}

// LoadLevel parses a Tiled map. Gameplay objects come from named object
// groups; rectangles use the object's bounds, points use its position.
func (l *LevelLoader) LoadLevel(levelPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return Level{}, fmt.Errorf("load level %s: %w", levelPath, err)
	}

	level := Level{
		Name:   levelPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, PlayerSpawn{X: o.X, Y: o.Y})
			}
			// Sort spawns by X position (left to right) so the first is the level start
			sort.Slice(level.PlayerSpawns, func(i, j int) bool {
				return level.PlayerSpawns[i].X < level.PlayerSpawns[j].X
			})
		case "Ground":
			level.Ground = appendRects(level.Ground, og)
		case "Walls":
			level.Walls = appendRects(level.Walls, og)
		case "DeadZones":
			level.DeadZones = appendRects(level.DeadZones, og)
		case "Checkpoint":
			level.Checkpoints = appendRects(level.Checkpoints, og)
		case "FinishLine":
			level.FinishLines = appendRects(level.FinishLines, og)
		case "Items":
			level.Items = appendRects(level.Items, og)
		case "Fans":
			level.Fans = appendRects(level.Fans, og)
		case "FallingPlatforms":
			level.FallingPlatforms = appendRects(level.FallingPlatforms, og)
		case "Thwomps":
			for _, o := range og.Objects {
				level.Thwomps = append(level.Thwomps, ThwompSpawn{
					Rect: rectOf(o),
					Axis: o.Properties.GetString("axis"),
				})
			}
		case "Burners":
			for _, o := range og.Objects {
				level.Burners = append(level.Burners, BurnerSpawn{
					Rect:       rectOf(o),
					StartDelay: o.Properties.GetFloat("startDelay"),
					OnTime:     o.Properties.GetFloat("onTime"),
					OffTime:    o.Properties.GetFloat("offTime"),
				})
			}
		case "JumpPads":
			for _, o := range og.Objects {
				level.JumpPads = append(level.JumpPads, JumpPadSpawn{
					Rect:        rectOf(o),
					BouncePower: o.Properties.GetFloat("bouncePower"),
				})
			}
		case "Saws":
			for _, o := range og.Objects {
				level.Saws = append(level.Saws, SawSpawn{
					Rect:     rectOf(o),
					Distance: o.Properties.GetFloat("distance"),
					Duration: o.Properties.GetFloat("duration"),
				})
			}
		case "MovingPlatforms":
			for _, o := range og.Objects {
				level.MovingPlatforms = append(level.MovingPlatforms, MovingPlatformSpawn{
					Rect:  rectOf(o),
					DX:    o.Properties.GetFloat("dx"),
					DY:    o.Properties.GetFloat("dy"),
					Speed: o.Properties.GetFloat("speed"),
				})
			}
		}
	}

	if len(level.PlayerSpawns) == 0 {
		return Level{}, fmt.Errorf("level %s: %w", levelPath, ErrNoPlayerSpawn)
	}
	return level, nil
}

// MustLoadLevel is LoadLevel for levels that ship with the game.
func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	level, err := l.LoadLevel(levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

func appendRects(dst []Rect, og *tiled.ObjectGroup) []Rect {
	for _, o := range og.Objects {
		dst = append(dst, rectOf(o))
	}
	return dst
}

func rectOf(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}
