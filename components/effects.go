package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// IntroData scales an entity in with a tween when a scene starts.
type IntroData struct {
	Tween *gween.Tween
	Done  bool
}

var Intro = donburi.NewComponentType[IntroData]()

// SparkData is a single firework particle. Life runs from 1 to 0 over its tween.
type SparkData struct {
	VelX, VelY float64
	HueOffset  float64
	Radius     float64
	Life       float64
	Tween      *gween.Tween
}

var Spark = donburi.NewComponentType[SparkData]()

// StarData is a background star at a position relative to the viewport (0..1).
type StarData struct {
	U, V         float64
	Radius       float64
	Phase        float64 // radians
	TwinkleSpeed float64 // radians per reference tick
	HueOffset    float64
}

var Star = donburi.NewComponentType[StarData]()
