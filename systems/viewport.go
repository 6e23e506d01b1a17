package systems

import (
	"github.com/automoto/dancing-bear/components"
	cfg "github.com/automoto/dancing-bear/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateViewport mirrors the logical screen size recorded by Layout.
func UpdateViewport(ecs *ecs.ECS) {
	setViewport(GetOrCreateViewport(ecs), cfg.C.Width, cfg.C.Height)
}

func setViewport(vp *components.ViewportData, width, height int) {
	vp.Changed = vp.Width != width || vp.Height != height
	vp.Width = width
	vp.Height = height
}

// GetOrCreateViewport returns the singleton Viewport component, creating if needed.
// A new viewport starts out Changed so layout systems run on the first tick.
func GetOrCreateViewport(ecs *ecs.ECS) *components.ViewportData {
	return getOrCreateViewport(ecs.World)
}

func getOrCreateViewport(w donburi.World) *components.ViewportData {
	if _, ok := components.Viewport.First(w); !ok {
		ent := w.Entry(w.Create(components.Viewport))
		components.Viewport.SetValue(ent, components.ViewportData{
			Width:   cfg.C.Width,
			Height:  cfg.C.Height,
			Changed: true,
		})
	}

	ent, _ := components.Viewport.First(w)
	return components.Viewport.Get(ent)
}
