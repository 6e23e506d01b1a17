package factory

import (
	"math"

	"github.com/automoto/dancing-bear/archetypes"
	"github.com/automoto/dancing-bear/components"
	cfg "github.com/automoto/dancing-bear/config"
	"github.com/automoto/dancing-bear/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// CreateStarfield scatters count stars over the unit square. Positions are
// resolved against the viewport at draw time so a resize keeps the layout.
func CreateStarfield(ecs *ecs.ECS, count int, rng gamemath.RandSource) {
	for i := 0; i < count; i++ {
		star := archetypes.Star.Spawn(ecs)
		components.Star.SetValue(star, newStar(rng))
		components.Transform.SetValue(star, components.TransformData{Scale: 1})
	}
}

func newStar(rng gamemath.RandSource) components.StarData {
	sf := cfg.Starfield
	return components.StarData{
		U:            rng.Float64(),
		V:            rng.Float64(),
		Radius:       gamemath.Lerp(sf.MinRadius, sf.MaxRadius, rng.Float64()),
		Phase:        rng.Float64() * 2 * math.Pi,
		TwinkleSpeed: gamemath.Lerp(sf.MinTwinkle, sf.MaxTwinkle, rng.Float64()),
		HueOffset:    (rng.Float64() - 0.5) * 360,
	}
}
