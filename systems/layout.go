package systems

import (
	"github.com/automoto/dancing-bear/components"
	"github.com/automoto/dancing-bear/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLayout keeps the bear at the centre of the viewport after a resize.
// Orbiting entities pick up the new anchor on their next tick.
func UpdateLayout(ecs *ecs.ECS) {
	vp := GetOrCreateViewport(ecs)
	if !vp.Changed {
		return
	}
	centreBear(ecs.World, vp)
}

func centreBear(w donburi.World, vp *components.ViewportData) {
	tags.Bear.Each(w, func(e *donburi.Entry) {
		t := components.Transform.Get(e)
		t.X = float64(vp.Width) / 2
		t.Y = float64(vp.Height) / 2
	})
}
