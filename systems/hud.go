package systems

import (
	"image/color"

	"github.com/automoto/dancing-bear/components"
	cfg "github.com/automoto/dancing-bear/config"
	"github.com/automoto/dancing-bear/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// HUDHints holds a scene's control hint per input method. Empty entries fall back
// to Keyboard.
type HUDHints struct {
	Keyboard    string
	Mouse       string
	Xbox        string
	PlayStation string
}

// NewDrawHUD returns a renderer that shows the control hint for the last used
// input method in the bottom-left corner.
func NewDrawHUD(hints HUDHints) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		if GetOrCreatePause(ecs).IsPaused {
			return
		}
		hint := hintFor(hints, getOrCreateInput(ecs).LastInputMethod)
		margin := cfg.HUD.Margin
		height := screen.Bounds().Dy()
		text.Draw(screen, hint, fonts.Regular.Get(), margin, height-margin, cfg.HUD.TextColor)
	}
}

func hintFor(hints HUDHints, method components.InputMethod) string {
	var hint string
	switch method {
	case components.InputMouse:
		hint = hints.Mouse
	case components.InputXbox:
		hint = hints.Xbox
	case components.InputPlayStation:
		hint = hints.PlayStation
	}
	if hint == "" {
		return hints.Keyboard
	}
	return hint
}

// drawCentered draws str horizontally centred with its baseline at y.
func drawCentered(screen *ebiten.Image, str string, face font.Face, y int, clr color.Color) {
	bounds := text.BoundString(face, str)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, str, face, x, y, clr)
}

// drawLines draws lines top-down from (x, y) using the face's line height.
func drawLines(screen *ebiten.Image, lines []string, face font.Face, x, y int, clr color.Color) {
	lineHeight := face.Metrics().Height.Ceil()
	for i, line := range lines {
		text.Draw(screen, line, face, x, y+lineHeight*(i+1), clr)
	}
}
