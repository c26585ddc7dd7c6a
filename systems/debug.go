package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need the v1 API
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object and labels players and hazards
// with their state. Toggled with the debug key or the -debug flag.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	game := getGame(ecs)
	if game == nil || !(game.ShowDebug || cfg.Debug.Enabled) {
		return
	}

	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		o := components.ObjectData{Object: obj}
		if !v.visible(o) {
			continue
		}

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255} // Grey
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvTrigger) && isActiveTrap(obj) {
			c = color.RGBA{255, 0, 0, 255} // Red
		}

		vector.StrokeRect(screen, float32(obj.X+v.offX), float32(obj.Y+v.offY), float32(obj.W), float32(obj.H), 1, c, false)
	}

	face := fonts.Small.Get()
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		player := components.Player.Get(e)
		label := fmt.Sprintf("%s j%d", components.State.Get(e).CurrentState, player.JumpCount)
		text.Draw(screen, label, face, int(o.X+v.offX), int(o.Y+v.offY)-4, cfg.White)
	})
	components.Thwomp.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		text.Draw(screen, components.Thwomp.Get(e).State.String(), face, int(o.X+v.offX), int(o.Y+v.offY)-4, cfg.White)
	})

	text.Draw(screen, fmt.Sprintf("t=%.2f %s", game.Clock, game.Session.Phase()), face, 8, screen.Bounds().Dy()-8, cfg.White)
}
