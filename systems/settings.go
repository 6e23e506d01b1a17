package systems

import (
	"github.com/automoto/dancing-bear/components"
	cfg "github.com/automoto/dancing-bear/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Settings shared across scenes. Each scene's Settings component starts from these.
var (
	globalSettings = components.SettingsData{}
	globalHue      = 0.0
	globalHueSet   = false
)

// UpdateSettings handles the debug overlay and fullscreen toggles.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		toggleDebug(settings)
	}
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		toggleFullscreen(settings)
	}
}

func toggleDebug(settings *components.SettingsData) {
	settings.Debug = !settings.Debug
	globalSettings = *settings
	SaveCurrentSettings()
}

func toggleFullscreen(settings *components.SettingsData) {
	settings.Fullscreen = !settings.Fullscreen
	ebiten.SetFullscreen(settings.Fullscreen)
	globalSettings = *settings
	SaveCurrentSettings()
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(ent, globalSettings)
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}

// SetDebug forces the debug overlay on for every scene created afterwards.
func SetDebug(enabled bool) {
	globalSettings.Debug = enabled
}

// CurrentHue returns the hue carried between scenes.
func CurrentHue() float64 {
	if !globalHueSet {
		return cfg.Hue.Start
	}
	return globalHue
}

func setCurrentHue(h float64) {
	globalHue = h
	globalHueSet = true
}
