package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData is a drawable image. Pivot is relative to the image size
// (0.5, 0.5 = centred on the transform position).
type SpriteData struct {
	Image  *ebiten.Image
	PivotX float64
	PivotY float64
	ZIndex int     // higher draws on top
	Shade  float32 // RGB multiplier, 0 is treated as 1
}

var Sprite = donburi.NewComponentType[SpriteData]()
