package scenes

import (
	"sync"

	cfg "github.com/automoto/dancing-bear/config"
	"github.com/automoto/dancing-bear/gamemath"
	"github.com/automoto/dancing-bear/systems"
	"github.com/automoto/dancing-bear/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var fireworksHints = systems.HUDHints{
	Keyboard:    "Space: Burst   Q/E: Hue   P: Pause   1: Orbit   Esc: Menu",
	Mouse:       "Click: Burst   Q/E: Hue   P: Pause   1: Orbit   Esc: Menu",
	Xbox:        "RT/A: Burst   Right Stick: Hue   Start: Pause   B: Menu",
	PlayStation: "R2/Cross: Burst   Right Stick: Hue   Options: Pause   Circle: Menu",
}

// FireworksScene is a starfield with firework bursts and hue cycling
type FireworksScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	rng          gamemath.RandSource
	once         sync.Once
}

// NewFireworksScene creates the fireworks scene. rng drives stars and bursts.
func NewFireworksScene(sc SceneChanger, rng gamemath.RandSource) *FireworksScene {
	return &FireworksScene{sceneChanger: sc, rng: rng}
}

func (fs *FireworksScene) Update() {
	fs.once.Do(fs.configure)
	fs.ecs.Update()
}

func (fs *FireworksScene) Draw(screen *ebiten.Image) {
	// The starfield renderer fills the background
	if fs.ecs == nil {
		screen.Fill(cfg.Night)
		return
	}
	fs.ecs.Draw(screen)
}

func (fs *FireworksScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateViewport)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePause)

	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateHue))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateStarfield))
	ecs.AddSystem(systems.WithPauseCheck(systems.NewUpdateFireworks(fs.rng)))

	// Pause options after gameplay so Select never reaches it
	ecs.AddSystem(systems.UpdatePauseMenu)

	ecs.AddSystem(systems.NewUpdateSceneKeys(fs.sceneChanger))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawStarfield)
	ecs.AddRenderer(cfg.Default, systems.DrawSparks)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.NewDrawHUD(fireworksHints))
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	fs.ecs = ecs

	systems.GetOrCreateHue(fs.ecs)
	factory.CreateStarfield(fs.ecs, cfg.Starfield.Count, fs.rng)

	systems.RememberScene(cfg.SceneFireworks)
}
