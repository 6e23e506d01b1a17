package systems

import (
	"testing"

	"github.com/automoto/dancing-bear/archetypes"
	"github.com/automoto/dancing-bear/components"
	cfg "github.com/automoto/dancing-bear/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestViewportChangedOnlyOnResize(t *testing.T) {
	old := *cfg.C
	t.Cleanup(func() { *cfg.C = old })
	cfg.C.Width, cfg.C.Height = 640, 360

	e := ecs.NewECS(donburi.NewWorld())
	vp := GetOrCreateViewport(e)
	if !vp.Changed {
		t.Fatal("new viewport should start out changed")
	}

	UpdateViewport(e)
	if vp.Changed {
		t.Error("viewport changed without a resize")
	}

	cfg.C.Width, cfg.C.Height = 800, 600
	UpdateViewport(e)
	if !vp.Changed || vp.Width != 800 || vp.Height != 600 {
		t.Errorf("after resize: %+v", *vp)
	}

	UpdateViewport(e)
	if vp.Changed {
		t.Error("Changed should only last one tick")
	}
}

func TestUpdateLayoutCentresBear(t *testing.T) {
	old := *cfg.C
	t.Cleanup(func() { *cfg.C = old })
	cfg.C.Width, cfg.C.Height = 1000, 500

	e := ecs.NewECS(donburi.NewWorld())
	bear := archetypes.Bear.Spawn(e)
	components.Transform.SetValue(bear, components.TransformData{X: 1, Y: 2, Scale: 1})

	UpdateViewport(e)
	UpdateLayout(e)

	tr := components.Transform.Get(bear)
	if tr.X != 500 || tr.Y != 250 {
		t.Errorf("bear at (%v, %v), want (500, 250)", tr.X, tr.Y)
	}

	// Unchanged viewport leaves manual moves alone
	tr.X = 10
	UpdateViewport(e)
	UpdateLayout(e)
	if tr.X != 10 {
		t.Errorf("bear moved without a resize: x = %v", tr.X)
	}
}
