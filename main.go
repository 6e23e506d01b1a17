package main

import (
	"flag"
	"log"

	"github.com/automoto/dancing-bear/config"
	"github.com/automoto/dancing-bear/fonts"
	"github.com/automoto/dancing-bear/scenes"
	"github.com/automoto/dancing-bear/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene     scenes.Scene
	sceneName string
	quit      bool
}

// ChangeScene switches to a new scene by name
func (g *Game) ChangeScene(name string) {
	// Carry hue and last scene across transitions
	systems.SaveCurrentSettings()

	g.sceneName = name
	g.scene = scenes.New(name, g)
}

// Quit ends the game after the current update
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(startScene string) *Game {
	fonts.LoadDefaults()

	g := &Game{}
	g.ChangeScene(startScene)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		systems.SaveCurrentSettings()
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window so the scenes lay out against the real size
func (g *Game) Layout(width, height int) (int, int) {
	if width > 0 && height > 0 {
		config.C.Width = width
		config.C.Height = height
	}
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default configuration")
	startScene := flag.String("scene", "", "open this scene instead of the menu (orbit, fireworks)")
	seed := flag.Uint64("seed", 0, "random seed, 0 seeds from the clock")
	debug := flag.Bool("debug", false, "show the debug overlay")
	flag.Parse()

	if *configPath != "" {
		fc, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		fc.Apply()
	}

	if *startScene != "" && !scenes.Known(*startScene) {
		log.Fatalf("unknown scene %q", *startScene)
	}
	config.Debug.StartScene = *startScene
	config.Debug.Seed = *seed
	config.Debug.Enabled = *debug

	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetWindowTitle(config.Window.Title)
	if config.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	}
	ebiten.SetTPS(config.Window.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	if config.Debug.Enabled {
		systems.SetDebug(true)
	}

	scene := config.Debug.StartScene
	if scene == "" {
		scene = config.SceneMenu
	}

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}
