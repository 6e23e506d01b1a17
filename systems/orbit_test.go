package systems

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/automoto/dancing-bear/archetypes"
	"github.com/automoto/dancing-bear/components"
	cfg "github.com/automoto/dancing-bear/config"
	"github.com/automoto/dancing-bear/gamemath"
	"github.com/automoto/dancing-bear/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newOrbitWorld(t *testing.T, anchorX, anchorY float64) (*ecs.ECS, *donburi.Entry, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())

	bear := archetypes.Bear.Spawn(e)
	components.Transform.SetValue(bear, components.TransformData{X: anchorX, Y: anchorY, Scale: 1})

	follower := factory.CreateFollower(e, nil, bear, rand.New(rand.NewPCG(1, 2)))
	return e, bear, follower
}

func TestUpdateOrbitsFollowsAnchor(t *testing.T) {
	e, bear, follower := newOrbitWorld(t, 100, 100)

	components.Transform.Get(bear).X = 400
	components.Transform.Get(bear).Y = 300
	updateOrbits(e.World, 1, false, false)

	od := components.Orbit.Get(follower)
	tr := components.Transform.Get(follower)
	p := od.Orbit.Params()

	if p.Anchor.X != 400 || p.Anchor.Y != 300 {
		t.Fatalf("anchor = (%v, %v), want (400, 300)", p.Anchor.X, p.Anchor.Y)
	}

	dx := (tr.X - 400) / p.RadiusX
	dy := (tr.Y - 300) / p.RadiusY
	if got := dx*dx + dy*dy; math.Abs(got-1) > 1e-9 {
		t.Errorf("follower off the ellipse: %v", got)
	}
	if tr.Scale < p.MinScale || tr.Scale > p.MaxScale {
		t.Errorf("scale %v outside [%v, %v]", tr.Scale, p.MinScale, p.MaxScale)
	}
}

func TestUpdateOrbitsOcclusion(t *testing.T) {
	tests := []struct {
		name       string
		angle      float64
		occlude    bool
		wantBehind bool
		wantZ      int
	}{
		{"front no occlusion", math.Pi / 2, false, false, zInFront},
		{"back no occlusion", 3 * math.Pi / 2, false, true, zInFront},
		{"front with occlusion", math.Pi / 2, true, false, zInFront},
		{"back with occlusion", 3 * math.Pi / 2, true, true, zBehind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, follower := newOrbitWorld(t, 0, 0)
			od := components.Orbit.Get(follower)
			od.Orbit.SetAngle(tt.angle)

			updateOrbits(e.World, 0, tt.occlude, false)

			if od.Behind != tt.wantBehind {
				t.Errorf("Behind = %v, want %v", od.Behind, tt.wantBehind)
			}
			if z := components.Sprite.Get(follower).ZIndex; z != tt.wantZ {
				t.Errorf("ZIndex = %d, want %d", z, tt.wantZ)
			}
		})
	}
}

func TestUpdateOrbitsShadesWithDepth(t *testing.T) {
	e, _, follower := newOrbitWorld(t, 0, 0)
	od := components.Orbit.Get(follower)

	od.Orbit.SetAngle(math.Pi / 2)
	updateOrbits(e.World, 0, false, true)
	if got := components.Sprite.Get(follower).Shade; math.Abs(float64(got)-1) > 1e-6 {
		t.Errorf("front shade = %v, want 1", got)
	}

	od.Orbit.SetAngle(3 * math.Pi / 2)
	updateOrbits(e.World, 0, false, true)
	if got := components.Sprite.Get(follower).Shade; math.Abs(float64(got)-minShade) > 1e-6 {
		t.Errorf("back shade = %v, want %v", got, minShade)
	}
}

func TestUpdateOrbitsNoShadeByDefault(t *testing.T) {
	if cfg.Orbit.ShadeByDepth {
		t.Fatal("depth shading should be off by default")
	}

	e, _, follower := newOrbitWorld(t, 0, 0)
	components.Orbit.Get(follower).Orbit.SetAngle(3 * math.Pi / 2)
	updateOrbits(e.World, 0, false, false)

	if got := components.Sprite.Get(follower).Shade; got != 1 {
		t.Errorf("shade = %v, want 1 with depth shading off", got)
	}
}

func TestUpdateOrbitsMatchesOrbit(t *testing.T) {
	e, _, follower := newOrbitWorld(t, 0, 0)

	ref := gamemath.NewOrbit(components.Orbit.Get(follower).Orbit.Params(), rand.New(rand.NewPCG(1, 2)))
	for i := 0; i < 50; i++ {
		want := ref.Tick(1)
		updateOrbits(e.World, 1, false, false)
		got := components.Transform.Get(follower)
		if got.X != want.X || got.Y != want.Y || got.Scale != want.Scale {
			t.Fatalf("tick %d: got (%v, %v, %v), want (%v, %v, %v)",
				i, got.X, got.Y, got.Scale, want.X, want.Y, want.Scale)
		}
	}
}
