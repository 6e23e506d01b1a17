package scenes

import (
	"sync"

	"github.com/automoto/dancing-bear/assets"
	cfg "github.com/automoto/dancing-bear/config"
	"github.com/automoto/dancing-bear/gamemath"
	"github.com/automoto/dancing-bear/systems"
	"github.com/automoto/dancing-bear/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var orbitHints = systems.HUDHints{
	Keyboard:    "P: Pause   F3: Debug   F: Fullscreen   2: Fireworks   Esc: Menu",
	Xbox:        "Start: Pause   Back: Debug   B: Menu",
	PlayStation: "Options: Pause   Share: Debug   Circle: Menu",
}

// OrbitScene shows the dancing bear with a follower circling it
type OrbitScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	rng          gamemath.RandSource
	once         sync.Once
}

// NewOrbitScene creates the orbit scene. rng drives the follower's period draws.
func NewOrbitScene(sc SceneChanger, rng gamemath.RandSource) *OrbitScene {
	return &OrbitScene{sceneChanger: sc, rng: rng}
}

func (s *OrbitScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *OrbitScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Menu.BackgroundColor)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *OrbitScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateViewport)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateLayout)

	// Animation systems stop while paused
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateIntro))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateAnimations))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateOrbits))

	// Pause options after gameplay so Select never reaches it
	ecs.AddSystem(systems.UpdatePauseMenu)

	// Scene changes last so the frame finishes on the old world
	ecs.AddSystem(systems.NewUpdateSceneKeys(s.sceneChanger))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.NewDrawHUD(orbitHints))
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	s.ecs = ecs

	vp := systems.GetOrCreateViewport(s.ecs)
	bear := factory.CreateBear(s.ecs, assets.BearFrames(), float64(vp.Width)/2, float64(vp.Height)/2)
	factory.CreateFollower(s.ecs, assets.FollowerImage(), bear, s.rng)

	systems.RememberScene(cfg.SceneOrbit)
}
