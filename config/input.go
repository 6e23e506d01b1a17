package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical input action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionBurst
	ActionHueLeft
	ActionHueRight
	ActionPause
	ActionBack
	ActionToggleDebug
	ActionToggleFullscreen
	ActionSceneOrbit
	ActionSceneFireworks
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys, mouse buttons and gamepad buttons bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.2,
		Bindings: map[ActionID]InputBinding{
			ActionBurst: {
				Keys:         []ebiten.Key{ebiten.KeySpace},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
				// Right trigger / A / Cross
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomRight,
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionHueLeft: {
				// Right stick handled separately
				Keys: []ebiten.Key{ebiten.KeyQ, ebiten.KeyLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionHueRight: {
				Keys: []ebiten.Key{ebiten.KeyE, ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3, ebiten.KeyBackquote},
				// Back / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionToggleFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF, ebiten.KeyF11},
			},
			ActionSceneOrbit: {
				Keys: []ebiten.Key{ebiten.Key1, ebiten.KeyNumpad1},
			},
			ActionSceneFireworks: {
				Keys: []ebiten.Key{ebiten.Key2, ebiten.KeyNumpad2},
			},
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
		},
	}
}
