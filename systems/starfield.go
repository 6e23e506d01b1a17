package systems

import (
	"math"

	"github.com/automoto/dancing-bear/components"
	cfg "github.com/automoto/dancing-bear/config"
	"github.com/automoto/dancing-bear/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStarfield advances the twinkle phase of every star.
func UpdateStarfield(ecs *ecs.ECS) {
	twinkle(ecs.World, FrameDelta())
}

func twinkle(w donburi.World, delta float64) {
	components.Star.Each(w, func(e *donburi.Entry) {
		star := components.Star.Get(e)
		star.Phase = gamemath.NormalizeAngle(star.Phase + star.TwinkleSpeed*delta)
	})
}

// starBrightness maps a twinkle phase onto [0.35, 1].
func starBrightness(phase float64) float64 {
	return 0.675 + 0.325*math.Sin(phase)
}

// DrawStarfield fills the screen with the night sky and draws the stars over it.
func DrawStarfield(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Night)

	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	hue := GetOrCreateHue(ecs).Hue

	components.Star.Each(ecs.World, func(e *donburi.Entry) {
		star := components.Star.Get(e)
		c := gamemath.HSVColor(hue+star.HueOffset, cfg.Starfield.Saturation, starBrightness(star.Phase))
		vector.DrawFilledCircle(screen, float32(star.U*w), float32(star.V*h), float32(star.Radius), c, true)
	})
}
