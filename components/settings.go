package components

import "github.com/yohamta/donburi"

// SettingsData holds the user-facing toggles that outlive a scene.
type SettingsData struct {
	Debug      bool
	Fullscreen bool
}

var Settings = donburi.NewComponentType[SettingsData]()

// HueData is the current color wheel position in degrees [0, 360).
type HueData struct {
	Hue float64
}

var Hue = donburi.NewComponentType[HueData]()

// ViewportData tracks the logical screen size. Changed is set for one tick after a resize.
type ViewportData struct {
	Width, Height int
	Changed       bool
}

var Viewport = donburi.NewComponentType[ViewportData]()
