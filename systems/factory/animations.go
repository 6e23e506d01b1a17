package factory

import (
	"github.com/automoto/dancing-bear/assets/animations"
	"github.com/automoto/dancing-bear/components"
	cfg "github.com/automoto/dancing-bear/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// GenerateAnimation builds a looping AnimationData over frames played at fps.
// Playback speed is expressed in reference frames so it stays correct at any TPS.
func GenerateAnimation(frames []*ebiten.Image, fps float64) *components.AnimationData {
	last := len(frames) - 1
	if last < 0 {
		last = 0
	}
	return &components.AnimationData{
		Frames: frames,
		CurrentAnimation: animations.NewAnimation(0, last, 1,
			animations.TicksPerFrameFor(fps, cfg.Orbit.ReferenceFrameRate)),
	}
}
