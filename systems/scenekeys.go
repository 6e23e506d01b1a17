package systems

import (
	cfg "github.com/automoto/dancing-bear/config"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger switches the active scene by name.
type SceneChanger interface {
	ChangeScene(name string)
}

// SceneChangerFunc adapts a function to SceneChanger.
type SceneChangerFunc func(name string)

func (f SceneChangerFunc) ChangeScene(name string) { f(name) }

// NewUpdateSceneKeys returns a system mapping the back and scene hotkeys to scene changes.
// Back always leads to the menu.
func NewUpdateSceneKeys(sc SceneChanger) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if name := sceneForInput(input.Current, input.Previous); name != "" {
			sc.ChangeScene(name)
		}
	}
}

// sceneForInput returns the scene requested this frame, or "".
func sceneForInput(current, previous [cfg.ActionCount]bool) string {
	justPressed := func(a cfg.ActionID) bool {
		return current[a] && !previous[a]
	}
	switch {
	case justPressed(cfg.ActionBack):
		return cfg.SceneMenu
	case justPressed(cfg.ActionSceneOrbit):
		return cfg.SceneOrbit
	case justPressed(cfg.ActionSceneFireworks):
		return cfg.SceneFireworks
	}
	return ""
}
