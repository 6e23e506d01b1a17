package archetypes

import (
	"github.com/automoto/dancing-bear/components"
	cfg "github.com/automoto/dancing-bear/config"
	"github.com/automoto/dancing-bear/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Bear = newArchetype(
		tags.Bear,
		components.Transform,
		components.Sprite,
		components.Animation,
	)
	Follower = newArchetype(
		tags.Follower,
		components.Transform,
		components.Sprite,
		components.Orbit,
	)
	Star = newArchetype(
		tags.Star,
		components.Transform,
		components.Star,
	)
	Spark = newArchetype(
		tags.Spark,
		components.Transform,
		components.Spark,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
