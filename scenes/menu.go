package scenes

import (
	"sync"

	"github.com/automoto/dancing-bear/assets"
	cfg "github.com/automoto/dancing-bear/config"
	"github.com/automoto/dancing-bear/systems"
	"github.com/automoto/dancing-bear/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu using ebitenui
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once

	// Set by UI callbacks, applied after the UI update
	nextScene  string
	shouldExit bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	// Input, hotkeys and fullscreen toggle
	ms.ecs.Update()

	ms.menuUI.Update()

	// Handle scene transitions
	if ms.shouldExit {
		ms.sceneChanger.Quit()
		return
	}
	if ms.nextScene != "" {
		ms.sceneChanger.ChangeScene(ms.nextScene)
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Menu.BackgroundColor)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	// Upload sprites now so entering the orbit scene doesn't stall
	assets.Preload()

	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdateViewport)
	ms.ecs.AddSystem(systems.UpdateSettings)
	ms.ecs.AddSystem(systems.NewUpdateSceneKeys(systems.SceneChangerFunc(ms.selectScene)))

	ms.menuUI = ui.NewMenuUI(
		systems.LastScene(),
		ms.selectScene,
		func() { ms.shouldExit = true },
	)
}

// selectScene queues a transition. Back on the menu means exit.
func (ms *MenuScene) selectScene(name string) {
	if name == cfg.SceneMenu {
		ms.shouldExit = true
		return
	}
	ms.nextScene = name
}
