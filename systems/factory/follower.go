package factory

import (
	"github.com/automoto/dancing-bear/archetypes"
	"github.com/automoto/dancing-bear/components"
	cfg "github.com/automoto/dancing-bear/config"
	"github.com/automoto/dancing-bear/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OrbitParams builds orbit parameters from config around anchor.
func OrbitParams(anchor gamemath.Vec2) gamemath.OrbitParams {
	return gamemath.OrbitParams{
		Anchor:             anchor,
		RadiusX:            cfg.Orbit.RadiusX,
		RadiusY:            cfg.Orbit.RadiusY,
		MinScale:           cfg.Orbit.MinScale,
		MaxScale:           cfg.Orbit.MaxScale,
		MinPeriod:          cfg.Orbit.MinPeriod,
		MaxPeriod:          cfg.Orbit.MaxPeriod,
		ReferenceFrameRate: cfg.Orbit.ReferenceFrameRate,
	}
}

// CreateFollower spawns a sprite that orbits anchor's transform.
func CreateFollower(ecs *ecs.ECS, img *ebiten.Image, anchor *donburi.Entry, rng gamemath.RandSource) *donburi.Entry {
	follower := archetypes.Follower.Spawn(ecs)

	at := components.Transform.Get(anchor)
	orbit := gamemath.NewOrbit(OrbitParams(gamemath.Vec2{X: at.X, Y: at.Y}), rng)
	start := orbit.Last()

	components.Orbit.SetValue(follower, components.OrbitData{
		Orbit:  orbit,
		Anchor: anchor,
	})
	components.Transform.SetValue(follower, components.TransformData{
		X:     start.X,
		Y:     start.Y,
		Scale: start.Scale,
	})
	components.Sprite.SetValue(follower, components.SpriteData{
		Image:  img,
		PivotX: 0.5,
		PivotY: 0.5,
		ZIndex: 1,
		Shade:  1,
	})

	return follower
}
