package systems

import (
	"math"

	"github.com/automoto/dancing-bear/components"
	cfg "github.com/automoto/dancing-bear/config"
	"github.com/automoto/dancing-bear/gamemath"
	"github.com/automoto/dancing-bear/systems/factory"
	"github.com/automoto/dancing-bear/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var sparkQuery = donburi.NewQuery(filter.Contains(tags.Spark))

// NewUpdateFireworks returns the system that launches bursts and moves sparks.
func NewUpdateFireworks(rng gamemath.RandSource) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionBurst).JustPressed {
			x, y := burstOrigin(input, GetOrCreateViewport(e), rng)
			SpawnBurst(e, x, y, rng)
		}

		updateSparks(e.World, FrameDelta(), FrameSeconds())
	}
}

// burstOrigin is the cursor for mouse bursts, otherwise a random point away from the edges.
func burstOrigin(input *components.InputData, vp *components.ViewportData, rng gamemath.RandSource) (float64, float64) {
	if input.LastInputMethod == components.InputMouse {
		return float64(input.CursorX), float64(input.CursorY)
	}

	margin := cfg.Fireworks.BurstMargin
	w := math.Max(float64(vp.Width)-2*margin, 0)
	h := math.Max(float64(vp.Height)-2*margin, 0)
	return margin + rng.Float64()*w, margin + rng.Float64()*h
}

// SpawnBurst launches up to SparksPerBurst sparks from (x, y) and returns how
// many were created. The total number of live sparks never exceeds MaxSparks.
func SpawnBurst(e *ecs.ECS, x, y float64, rng gamemath.RandSource) int {
	n := cfg.Fireworks.SparksPerBurst
	if free := cfg.Fireworks.MaxSparks - SparkCount(e.World); n > free {
		n = free
	}
	if n <= 0 {
		return 0
	}

	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		angle := float64(i)*step + (rng.Float64()-0.5)*step
		speed := gamemath.Lerp(cfg.Fireworks.MinSpeed, cfg.Fireworks.MaxSpeed, rng.Float64())
		velX, velY := gamemath.RadialVelocity(angle, speed)
		hueOffset := (rng.Float64() - 0.5) * cfg.Hue.Spread
		factory.CreateSpark(e, x, y, velX, velY, hueOffset)
	}
	return n
}

// SparkCount returns the number of live sparks.
func SparkCount(w donburi.World) int {
	return sparkQuery.Count(w)
}

// updateSparks integrates spark motion and removes sparks whose life ran out.
// delta is in reference frames and dt in seconds.
func updateSparks(w donburi.World, delta float64, dt float32) {
	var dead []*donburi.Entry

	sparkQuery.Each(w, func(e *donburi.Entry) {
		spark := components.Spark.Get(e)
		t := components.Transform.Get(e)

		life, finished := spark.Tween.Update(dt)
		spark.Life = float64(life)

		t.X, t.Y, spark.VelX, spark.VelY = gamemath.StepBallistic(
			t.X, t.Y, spark.VelX, spark.VelY,
			cfg.Fireworks.Gravity, cfg.Fireworks.Drag, delta)

		if finished || spark.Life <= 0 {
			dead = append(dead, e)
		}
	})

	for _, e := range dead {
		e.Remove()
	}
}

// DrawSparks renders sparks as hue-tinted dots that shrink and fade with their life.
func DrawSparks(ecs *ecs.ECS, screen *ebiten.Image) {
	hue := GetOrCreateHue(ecs).Hue

	sparkQuery.Each(ecs.World, func(e *donburi.Entry) {
		spark := components.Spark.Get(e)
		t := components.Transform.Get(e)

		c := fade(gamemath.HueColor(hue, spark.HueOffset), spark.Life)
		r := spark.Radius * (0.4 + 0.6*spark.Life)
		vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), float32(r), c, true)
	})
}
