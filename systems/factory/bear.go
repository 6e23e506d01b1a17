package factory

import (
	"github.com/automoto/dancing-bear/archetypes"
	"github.com/automoto/dancing-bear/components"
	cfg "github.com/automoto/dancing-bear/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBear spawns the dancing bear centred on (x, y). It pops in with an
// OutBack scale tween unless the intro is disabled in config.
func CreateBear(ecs *ecs.ECS, frames []*ebiten.Image, x, y float64) *donburi.Entry {
	bear := archetypes.Bear.Spawn(ecs)

	anim := GenerateAnimation(frames, cfg.Bear.FramesPerSecond)
	components.Animation.Set(bear, anim)

	components.Sprite.SetValue(bear, components.SpriteData{
		Image:  anim.CurrentFrame(),
		PivotX: 0.5,
		PivotY: 0.5,
		Shade:  1,
	})

	scale := 1.0
	if cfg.Bear.IntroDuration > 0 {
		scale = float64(cfg.Bear.IntroStartScale)
		bear.AddComponent(components.Intro)
		components.Intro.SetValue(bear, components.IntroData{
			Tween: gween.New(cfg.Bear.IntroStartScale, 1, cfg.Bear.IntroDuration, ease.OutBack),
		})
	}

	components.Transform.SetValue(bear, components.TransformData{
		X:     x,
		Y:     y,
		Scale: scale,
	})

	return bear
}
