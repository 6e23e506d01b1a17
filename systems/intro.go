package systems

import (
	"github.com/automoto/dancing-bear/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateIntro plays the scale pop-in of entities that carry an Intro tween.
func UpdateIntro(ecs *ecs.ECS) {
	dt := FrameSeconds()
	components.Intro.Each(ecs.World, func(e *donburi.Entry) {
		intro := components.Intro.Get(e)
		if intro.Done || intro.Tween == nil {
			return
		}

		scale, finished := intro.Tween.Update(dt)
		components.Transform.Get(e).Scale = float64(scale)
		if finished {
			intro.Done = true
			components.Transform.Get(e).Scale = 1
		}
	})
}
