package systems

import (
	"fmt"

	"github.com/automoto/dancing-bear/components"
	cfg "github.com/automoto/dancing-bear/config"
	"github.com/yohamta/donburi/ecs"
)

const numPauseOptions = int(components.PauseOptionCount)

// UpdatePauseMenu handles option navigation and toggles on the pause screen.
// Add it after the gameplay systems so a select press cannot also reach them.
func UpdatePauseMenu(e *ecs.ECS) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	input := getOrCreateInput(e)
	_, hasOrbit := components.Orbit.First(e.World)

	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		navigateUp(pause, hasOrbit)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		navigateDown(pause, hasOrbit)
	}
	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		handleSelect(e, pause)
	}
}

// navigateUp moves selection up, skipping hidden options
func navigateUp(p *components.PauseData, hasOrbit bool) {
	for {
		p.SelectedOption = components.PauseOption(
			(int(p.SelectedOption) - 1 + numPauseOptions) % numPauseOptions,
		)
		if !isOptionHidden(p.SelectedOption, hasOrbit) {
			break
		}
	}
}

// navigateDown moves selection down, skipping hidden options
func navigateDown(p *components.PauseData, hasOrbit bool) {
	for {
		p.SelectedOption = components.PauseOption(
			(int(p.SelectedOption) + 1) % numPauseOptions,
		)
		if !isOptionHidden(p.SelectedOption, hasOrbit) {
			break
		}
	}
}

// isOptionHidden hides the orbit options in scenes without a follower
func isOptionHidden(opt components.PauseOption, hasOrbit bool) bool {
	switch opt {
	case components.PauseOcclude, components.PauseShade:
		return !hasOrbit
	}
	return false
}

func handleSelect(e *ecs.ECS, p *components.PauseData) {
	switch p.SelectedOption {
	case components.PauseResume:
		p.IsPaused = false
	case components.PauseDebug:
		toggleDebug(GetOrCreateSettings(e))
	case components.PauseFullscreen:
		toggleFullscreen(GetOrCreateSettings(e))
	case components.PauseOcclude:
		setOcclude(!cfg.Orbit.OccludeWhenBehind)
		SaveCurrentSettings()
	case components.PauseShade:
		setShadeByDepth(!cfg.Orbit.ShadeByDepth)
		SaveCurrentSettings()
	}
}

func setOcclude(v bool) {
	cfg.Orbit.OccludeWhenBehind = v
	orbitChoices.occlude = &v
}

func setShadeByDepth(v bool) {
	cfg.Orbit.ShadeByDepth = v
	orbitChoices.shade = &v
}

// pauseOptionLabel returns the text shown for opt, including its current value.
func pauseOptionLabel(opt components.PauseOption, settings *components.SettingsData) string {
	switch opt {
	case components.PauseResume:
		return "Resume"
	case components.PauseDebug:
		return fmt.Sprintf("Debug Overlay: %s", onOff(settings.Debug))
	case components.PauseFullscreen:
		return fmt.Sprintf("Fullscreen: %s", onOff(settings.Fullscreen))
	case components.PauseOcclude:
		return fmt.Sprintf("Hide Behind Bear: %s", onOff(cfg.Orbit.OccludeWhenBehind))
	case components.PauseShade:
		return fmt.Sprintf("Depth Shading: %s", onOff(cfg.Orbit.ShadeByDepth))
	}
	return ""
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}

func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate   Cross: Select   Options: Resume   Circle: Menu"
	case components.InputXbox:
		return "D-Pad: Navigate   A: Select   Start: Resume   B: Menu"
	}
	return "Arrows: Navigate   Enter: Select   P: Resume   Esc: Menu"
}
