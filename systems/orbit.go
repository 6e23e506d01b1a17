package systems

import (
	"github.com/automoto/dancing-bear/components"
	cfg "github.com/automoto/dancing-bear/config"
	"github.com/automoto/dancing-bear/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	zBehind   = -1
	zInFront  = 1
	minShade  = 0.7
	behindCut = 0.5
)

// UpdateOrbits ticks every orbiting entity once and writes the resulting transform.
func UpdateOrbits(ecs *ecs.ECS) {
	updateOrbits(ecs.World, FrameDelta(), cfg.Orbit.OccludeWhenBehind, cfg.Orbit.ShadeByDepth)
}

func updateOrbits(w donburi.World, delta float64, occlude, shade bool) {
	components.Orbit.Each(w, func(e *donburi.Entry) {
		od := components.Orbit.Get(e)
		if od.Orbit == nil {
			return
		}

		// The anchor may move (viewport resize), so follow it every tick
		if od.Anchor != nil && od.Anchor.Valid() && od.Anchor.HasComponent(components.Transform) {
			at := components.Transform.Get(od.Anchor)
			od.Orbit.SetAnchor(gamemath.Vec2{X: at.X, Y: at.Y})
		}

		ft := od.Orbit.Tick(delta)

		t := components.Transform.Get(e)
		t.X = ft.X
		t.Y = ft.Y
		t.Scale = ft.Scale

		od.Behind = ft.Depth < behindCut
		if !e.HasComponent(components.Sprite) {
			return
		}
		sprite := components.Sprite.Get(e)
		sprite.Shade = 1
		if shade {
			sprite.Shade = float32(gamemath.Lerp(minShade, 1, ft.Depth))
		}
		sprite.ZIndex = zInFront
		if occlude && od.Behind {
			sprite.ZIndex = zBehind
		}
	})
}
