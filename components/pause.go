package components

import "github.com/yohamta/donburi"

// PauseOption identifies an entry in the pause screen's options list
type PauseOption int

const (
	PauseResume PauseOption = iota
	PauseDebug
	PauseFullscreen
	PauseOcclude
	PauseShade
	PauseOptionCount // Must be last
)

// PauseData stores the pause state
type PauseData struct {
	IsPaused       bool
	SelectedOption PauseOption
}

var Pause = donburi.NewComponentType[PauseData]()
