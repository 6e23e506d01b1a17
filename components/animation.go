package components

import (
	"github.com/automoto/dancing-bear/assets/animations"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// AnimationData plays a looping sequence of pre-sliced frames.
type AnimationData struct {
	Frames           []*ebiten.Image
	CurrentAnimation *animations.Animation
}

// CurrentFrame returns the image for the current animation frame, or nil.
func (a *AnimationData) CurrentFrame() *ebiten.Image {
	if a.CurrentAnimation == nil || len(a.Frames) == 0 {
		return nil
	}
	i := a.CurrentAnimation.Index()
	if i < 0 || i >= len(a.Frames) {
		return nil
	}
	return a.Frames[i]
}

var Animation = donburi.NewComponentType[AnimationData]()
