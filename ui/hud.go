package ui

import (
	"bytes"
	"fmt"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/session"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// HUD shows the score and the game over / clear banner.
type HUD struct {
	UI *ebitenui.UI

	scoreLabel  *widget.Label
	bestLabel   *widget.Label
	bannerLabel *widget.Label

	normalFace text.Face
	bannerFace text.Face
}

// NewHUD builds the HUD widgets.
func NewHUD() (*HUD, error) {
	h := &HUD{}
	if err := h.loadFonts(); err != nil {
		return nil, err
	}
	h.buildUI()
	return h, nil
}

func (h *HUD) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("hud font: %w", err)
	}

	h.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	h.bannerFace = &text.GoTextFace{
		Source: fontSource,
		Size:   28,
	}
	return nil
}

func (h *HUD) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Score column in the top-left corner
	statsContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	h.scoreLabel = widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf(cfg.UI.ScoreFormat, 0), &h.normalFace, &widget.LabelColor{
			Idle: cfg.UI.ScoreColor,
		}),
	)
	statsContainer.AddChild(h.scoreLabel)

	h.bestLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &h.normalFace, &widget.LabelColor{
			Idle: cfg.Gray,
		}),
	)
	statsContainer.AddChild(h.bestLabel)
	rootContainer.AddChild(statsContainer)

	// Banner centred on screen
	bannerContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	h.bannerLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &h.bannerFace, &widget.LabelColor{
			Idle: cfg.UI.BannerColor,
		}),
	)
	bannerContainer.AddChild(h.bannerLabel)
	rootContainer.AddChild(bannerContainer)

	h.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// BannerText is the centre message for a session phase.
func BannerText(phase session.Phase) string {
	switch phase {
	case session.GameOver:
		return cfg.UI.GameOverText
	case session.Cleared:
		return cfg.UI.ClearText
	}
	return ""
}

// Update refreshes the labels from the game state and runs the UI.
func (h *HUD) Update(game *components.GameData) {
	if game != nil && game.Session != nil {
		h.scoreLabel.Label = fmt.Sprintf(cfg.UI.ScoreFormat, game.Session.Score())
		h.bannerLabel.Label = BannerText(game.Session.Phase())
		if game.BestScore > 0 {
			h.bestLabel.Label = fmt.Sprintf("BEST %02d", game.BestScore)
		} else {
			h.bestLabel.Label = ""
		}
	}
	h.UI.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.UI.Draw(screen)
}
