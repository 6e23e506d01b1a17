package systems

import (
	"github.com/automoto/dancing-bear/components"
	cfg "github.com/automoto/dancing-bear/config"
	"github.com/automoto/dancing-bear/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		pause.SelectedOption = components.PauseResume
	}
}

// DrawPause dims the screen and shows the paused banner with the options list.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, width, height, cfg.BlackOverlay, false)

	titleY := int(height / 3)
	drawCentered(screen, "PAUSED", fonts.Title.Get(), titleY, cfg.White)

	settings := GetOrCreateSettings(ecs)
	_, hasOrbit := components.Orbit.First(ecs.World)
	y := titleY + 48
	for i := 0; i < numPauseOptions; i++ {
		opt := components.PauseOption(i)
		if isOptionHidden(opt, hasOrbit) {
			continue
		}
		clr := cfg.White
		if opt == pause.SelectedOption {
			clr = cfg.Yellow
		}
		drawCentered(screen, pauseOptionLabel(opt, settings), fonts.Bold.Get(), y, clr)
		y += 26
	}

	hint := getPauseHint(getOrCreateInput(ecs).LastInputMethod)
	drawCentered(screen, hint, fonts.Small.Get(), int(height)-24, cfg.Grey)
}

// WithPauseCheck skips system while the scene is paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreatePause(e).IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused: false,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
