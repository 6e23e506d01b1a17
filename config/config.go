package config

import "image/color"

// Config holds the logical screen size. Layout keeps it in sync with the window.
type Config struct {
	Width  int
	Height int
}

// WindowConfig contains window and game loop configuration
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TPS       int    `yaml:"tps"` // engine ticks per second
	Resizable bool   `yaml:"resizable"`
}

// OrbitConfig contains the follower orbit configuration
type OrbitConfig struct {
	RadiusX  float64 `yaml:"radiusX"`
	RadiusY  float64 `yaml:"radiusY"`
	MinScale float64 `yaml:"minScale"`
	MaxScale float64 `yaml:"maxScale"`

	// Lap duration bounds in seconds, redrawn every revolution
	MinPeriod float64 `yaml:"minPeriod"`
	MaxPeriod float64 `yaml:"maxPeriod"`

	// Ticks per second a delta of 1.0 stands for. Independent of Window.TPS.
	ReferenceFrameRate float64 `yaml:"referenceFrameRate"`

	// Draw the follower behind the bear while it is on the far half of the ellipse
	OccludeWhenBehind bool `yaml:"occludeWhenBehind"`

	// Darken the follower towards the far side of the ellipse
	ShadeByDepth bool `yaml:"shadeByDepth"`

	DebugSamples int `yaml:"debugSamples"` // points used to draw the ellipse overlay
}

// BearConfig contains the dancing bear sprite configuration
type BearConfig struct {
	FramesPerSecond float64 `yaml:"framesPerSecond"`
	IntroDuration   float32 `yaml:"introDuration"`   // seconds
	IntroStartScale float32 `yaml:"introStartScale"` // scale the pop-in tween starts from
}

// StarfieldConfig contains the fireworks scene background configuration
type StarfieldConfig struct {
	Count      int     `yaml:"count"`
	MinRadius  float64 `yaml:"minRadius"`
	MaxRadius  float64 `yaml:"maxRadius"`
	MinTwinkle float64 `yaml:"minTwinkle"` // radians per reference frame
	MaxTwinkle float64 `yaml:"maxTwinkle"`
	Saturation float64 `yaml:"saturation"` // hue tint strength, 0 = white stars
}

// FireworksConfig contains spark burst configuration
type FireworksConfig struct {
	SparksPerBurst int     `yaml:"sparksPerBurst"`
	MaxSparks      int     `yaml:"maxSparks"`
	MinSpeed       float64 `yaml:"minSpeed"` // pixels per reference frame
	MaxSpeed       float64 `yaml:"maxSpeed"`
	Gravity        float64 `yaml:"gravity"`
	Drag           float64 `yaml:"drag"` // fraction of velocity kept per frame
	Lifetime       float32 `yaml:"lifetime"`
	SparkRadius    float64 `yaml:"sparkRadius"`
	BurstMargin    float64 `yaml:"burstMargin"` // keep random bursts away from the edges
}

// HueConfig contains hue cycling configuration
type HueConfig struct {
	Start          float64 `yaml:"start"`
	DegreesPerTick float64 `yaml:"degreesPerTick"` // at full stick deflection
	Spread         float64 `yaml:"spread"`         // per-spark hue jitter in degrees
}

// MenuConfig contains main menu configuration
type MenuConfig struct {
	Title           string
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	HintColor       color.RGBA
	ButtonWidth     int
	ButtonHeight    int
}

// HUDConfig contains overlay text configuration
type HUDConfig struct {
	Margin     int
	TextColor  color.RGBA
	DebugColor color.RGBA
	PathColor  color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled    bool   // Show debug overlay on start
	StartScene string // Skip the menu and open this scene ("orbit", "fireworks")
	Seed       uint64 // 0 = seed from time
}

// Scene names used by -scene and persisted settings
const (
	SceneMenu      = "menu"
	SceneOrbit     = "orbit"
	SceneFireworks = "fireworks"
)

// Global configuration instances
var C *Config
var Window WindowConfig
var Orbit OrbitConfig
var Bear BearConfig
var Starfield StarfieldConfig
var Fireworks FireworksConfig
var Hue HueConfig
var Menu MenuConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Grey         = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Night        = color.RGBA{R: 4, G: 6, B: 20, A: 255}
)

func init() {
	Window = WindowConfig{
		Width:     1280,
		Height:    720,
		Title:     "Dancing Bear",
		TPS:       60,
		Resizable: true,
	}

	C = &Config{
		Width:  Window.Width,
		Height: Window.Height,
	}

	Orbit = OrbitConfig{
		RadiusX:            160,
		RadiusY:            80,
		MinScale:           0.5,
		MaxScale:           1.0,
		MinPeriod:          8,
		MaxPeriod:          20,
		ReferenceFrameRate: 60,
		OccludeWhenBehind:  false,
		ShadeByDepth:       false,
		DebugSamples:       96,
	}

	Bear = BearConfig{
		FramesPerSecond: 6,
		IntroDuration:   0.6,
		IntroStartScale: 0.2,
	}

	Starfield = StarfieldConfig{
		Count:      400,
		MinRadius:  0.6,
		MaxRadius:  2.2,
		MinTwinkle: 0.01,
		MaxTwinkle: 0.08,
		Saturation: 0.25,
	}

	Fireworks = FireworksConfig{
		SparksPerBurst: 48,
		MaxSparks:      1500,
		MinSpeed:       2,
		MaxSpeed:       7,
		Gravity:        0.08,
		Drag:           0.97,
		Lifetime:       1.6,
		SparkRadius:    3,
		BurstMargin:    80,
	}

	Hue = HueConfig{
		Start:          30,
		DegreesPerTick: 3,
		Spread:         40,
	}

	Menu = MenuConfig{
		Title:           "DANCING BEAR",
		BackgroundColor: color.RGBA{R: 20, G: 20, B: 30, A: 255},
		TitleColor:      White,
		TextColor:       White,
		HintColor:       Grey,
		ButtonWidth:     180,
		ButtonHeight:    32,
	}

	HUD = HUDConfig{
		Margin:     10,
		TextColor:  Grey,
		DebugColor: Yellow,
		PathColor:  color.RGBA{R: 255, G: 140, B: 0, A: 120},
	}

	Debug = DebugConfig{}
}
