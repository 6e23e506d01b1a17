package factory

import (
	"github.com/automoto/dancing-bear/archetypes"
	"github.com/automoto/dancing-bear/components"
	cfg "github.com/automoto/dancing-bear/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpark spawns one firework particle. Its life fades from 1 to 0 over
// the configured lifetime.
func CreateSpark(ecs *ecs.ECS, x, y, velX, velY, hueOffset float64) *donburi.Entry {
	spark := archetypes.Spark.Spawn(ecs)

	components.Transform.SetValue(spark, components.TransformData{
		X:     x,
		Y:     y,
		Scale: 1,
	})
	components.Spark.SetValue(spark, components.SparkData{
		VelX:      velX,
		VelY:      velY,
		HueOffset: hueOffset,
		Radius:    cfg.Fireworks.SparkRadius,
		Life:      1,
		Tween:     gween.New(1, 0, cfg.Fireworks.Lifetime, ease.OutQuad),
	})

	return spark
}
