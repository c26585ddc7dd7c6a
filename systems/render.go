package systems

import (
	"image/color"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// view is the world-to-screen translation and culling box of one frame.
type view struct {
	offX, offY             float64
	minX, minY, maxX, maxY float64
}

func newView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false // No camera yet
	}
	center := components.Camera.Get(cameraEntry).View()
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	// A little padding so shapes do not pop at the edges
	const padding = 64.0
	return view{
		offX: width/2 - center.X,
		offY: height/2 - center.Y,
		minX: center.X - width/2 - padding,
		maxX: center.X + width/2 + padding,
		minY: center.Y - height/2 - padding,
		maxY: center.Y + height/2 + padding,
	}, true
}

func (v view) visible(o components.ObjectData) bool {
	return !(o.X+o.W < v.minX || o.X > v.maxX || o.Y+o.H < v.minY || o.Y > v.maxY)
}

func (v view) fill(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x+v.offX), float32(y+v.offY), float32(w), float32(h), c, false)
}

// DrawLevel renders every object as a flat coloured box. Art is not part of
// the game; shapes and colours carry the state.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.DarkGray)

	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		o := *components.Object.Get(e)
		if o.Object == nil || o.Space == nil || !v.visible(o) {
			return
		}
		if e.HasComponent(components.Player) && components.Player.Get(e).Hidden {
			return
		}
		c, ok := entityColor(e)
		if !ok {
			return
		}
		v.fill(screen, o.X, o.Y, o.W, o.H, c)

		if e.HasComponent(components.Checkpoint) {
			drawFlag(screen, v, o, components.Checkpoint.Get(e).FlagRaise)
		}
	})
}

func entityColor(e *donburi.Entry) (color.Color, bool) {
	switch {
	case e.HasComponent(components.Player):
		return playerColor(components.State.Get(e).CurrentState), true
	case e.HasComponent(components.Thwomp):
		if components.Thwomp.Get(e).State == cfg.ThwompBlink {
			return cfg.White, true
		}
		return cfg.Gray, true
	case e.HasComponent(components.Burner):
		if components.Burner.Get(e).HitEnabled {
			return cfg.Orange, true
		}
		return color.RGBA{R: 90, G: 40, B: 20, A: 255}, true
	case e.HasComponent(components.Fan):
		a := uint8(40 + 120*components.Fan.Get(e).CurrentPower/max(components.Fan.Get(e).MaxPower, 1))
		return color.RGBA{R: 180, G: 220, B: 255, A: a}, true
	case e.HasComponent(components.Checkpoint), e.HasComponent(tags.DeadZone):
		return nil, false
	case e.HasComponent(components.JumpPad):
		return cfg.LightGreen, true
	case e.HasComponent(tags.Saw):
		return cfg.Red, true
	case e.HasComponent(tags.Item):
		return cfg.Yellow, true
	case e.HasComponent(tags.FinishLine):
		return cfg.Green, true
	case e.HasComponent(components.Contact):
		return nil, false // thwomp trap strips
	case e.HasComponent(tags.Wall):
		return color.RGBA{R: 90, G: 90, B: 110, A: 255}, true
	}
	return color.RGBA{R: 110, G: 100, B: 80, A: 255}, true
}

func playerColor(s cfg.PlayerState) color.Color {
	switch s {
	case cfg.Jump, cfg.DoubleJump, cfg.Fall:
		return cfg.Purple
	case cfg.WallSlide:
		return cfg.LightBlue
	case cfg.Dead:
		return cfg.Red
	}
	return cfg.Blue
}

func drawFlag(screen *ebiten.Image, v view, o components.ObjectData, raise float64) {
	pole := 2.0
	v.fill(screen, o.X+o.W/2-pole/2, o.Y, pole, o.H, cfg.White)

	flagH := 8.0
	y := o.Y + o.H - flagH - raise*(o.H-flagH)
	c := cfg.Red
	if raise > 0 {
		c = cfg.Green
	}
	v.fill(screen, o.X+o.W/2, y, o.W/2+4, flagH, c)
}
