package systems

import (
	"fmt"
	"math"

	"github.com/automoto/dancing-bear/components"
	cfg "github.com/automoto/dancing-bear/config"
	"github.com/automoto/dancing-bear/fonts"
	"github.com/automoto/dancing-bear/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug overlays orbit paths and frame stats while debug mode is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	lines := []string{
		fmt.Sprintf("TPS %.0f  FPS %.1f  delta %.2f", ebiten.ActualTPS(), ebiten.ActualFPS(), FrameDelta()),
	}

	components.Orbit.Each(ecs.World, func(e *donburi.Entry) {
		od := components.Orbit.Get(e)
		if od.Orbit == nil {
			return
		}
		drawOrbitPath(screen, od.Orbit.Params(), cfg.Orbit.DebugSamples)
		lines = append(lines, orbitStats(od))
	})

	if _, ok := components.Hue.First(ecs.World); ok {
		lines = append(lines, fmt.Sprintf("hue %.1f  sparks %d", GetOrCreateHue(ecs).Hue, SparkCount(ecs.World)))
	}

	drawLines(screen, lines, fonts.Small.Get(), cfg.HUD.Margin, cfg.HUD.Margin, cfg.HUD.DebugColor)
}

func orbitStats(od *components.OrbitData) string {
	o := od.Orbit
	last := o.Last()
	return fmt.Sprintf("angle %5.1f°  period %4.1fs  laps %d  scale %.2f  behind %t",
		o.Angle()*180/math.Pi, o.Period(), o.Laps(), last.Scale, od.Behind)
}

// drawOrbitPath traces the ellipse with samples line segments and marks the anchor.
func drawOrbitPath(screen *ebiten.Image, p gamemath.OrbitParams, samples int) {
	if samples < 3 {
		samples = 3
	}
	px, py := ellipsePoint(p, 0)
	for i := 1; i <= samples; i++ {
		x, y := ellipsePoint(p, 2*math.Pi*float64(i)/float64(samples))
		vector.StrokeLine(screen, float32(px), float32(py), float32(x), float32(y), 1, cfg.HUD.PathColor, true)
		px, py = x, y
	}
	vector.DrawFilledCircle(screen, float32(p.Anchor.X), float32(p.Anchor.Y), 3, cfg.HUD.PathColor, true)
}

func ellipsePoint(p gamemath.OrbitParams, angle float64) (float64, float64) {
	return p.Anchor.X + math.Cos(angle)*p.RadiusX, p.Anchor.Y + math.Sin(angle)*p.RadiusY
}
