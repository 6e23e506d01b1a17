package components

import "github.com/yohamta/donburi"

// TransformData places an entity on screen.
type TransformData struct {
	X, Y  float64
	Scale float64
}

var Transform = donburi.NewComponentType[TransformData]()
