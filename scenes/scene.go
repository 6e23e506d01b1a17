package scenes

import (
	"math/rand/v2"
	"time"

	cfg "github.com/automoto/dancing-bear/config"
	"github.com/automoto/dancing-bear/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is a self-contained screen driven by the game loop
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// SceneChanger allows scenes to trigger transitions and quit the game
type SceneChanger interface {
	systems.SceneChanger
	Quit()
}

// New creates the scene registered under name, falling back to the menu.
func New(name string, sc SceneChanger) Scene {
	switch name {
	case cfg.SceneOrbit:
		return NewOrbitScene(sc, newRand())
	case cfg.SceneFireworks:
		return NewFireworksScene(sc, newRand())
	default:
		return NewMenuScene(sc)
	}
}

// Known reports whether name is a scene New can create.
func Known(name string) bool {
	switch name {
	case cfg.SceneMenu, cfg.SceneOrbit, cfg.SceneFireworks:
		return true
	}
	return false
}

// newRand returns a generator seeded from -seed, or from the clock when unset.
func newRand() *rand.Rand {
	seed := cfg.Debug.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
