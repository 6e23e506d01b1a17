package systems

import (
	"github.com/automoto/dancing-bear/components"
	cfg "github.com/automoto/dancing-bear/config"
	"github.com/automoto/dancing-bear/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHue turns the color wheel from the right stick or the hue keys.
func UpdateHue(ecs *ecs.ECS) {
	hue := GetOrCreateHue(ecs)
	input := getOrCreateInput(ecs)

	hue.Hue = stepHue(hue.Hue, hueAxis(input), cfg.Hue.DegreesPerTick, FrameDelta())
	setCurrentHue(hue.Hue)
}

// hueAxis merges the analog stick with the digital hue actions into [-1, 1].
func hueAxis(input *components.InputData) float64 {
	axis := input.HueAxis
	if input.Current[cfg.ActionHueLeft] {
		axis--
	}
	if input.Current[cfg.ActionHueRight] {
		axis++
	}
	return gamemath.ClampSpeed(axis, 1)
}

func stepHue(hue, axis, degreesPerTick, delta float64) float64 {
	return gamemath.WrapHue(hue + degreesPerTick*axis*delta)
}

// GetOrCreateHue returns the singleton Hue component, seeded from the shared hue.
func GetOrCreateHue(ecs *ecs.ECS) *components.HueData {
	if _, ok := components.Hue.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Hue))
		components.Hue.SetValue(ent, components.HueData{
			Hue: CurrentHue(),
		})
	}

	ent, _ := components.Hue.First(ecs.World)
	return components.Hue.Get(ent)
}
