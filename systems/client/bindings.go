package client

import (
	cfg "github.com/automoto/puppethands/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents a single key or button binding for a controller button
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings for the local hand
type InputConfig struct {
	Bindings map[cfg.ButtonID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[cfg.ButtonID]InputBinding{
			cfg.ButtonTrigger: {
				Keys: []ebiten.Key{ebiten.KeyZ, ebiten.KeyJ},
				// Right trigger
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomRight,
				},
			},
			cfg.ButtonGrip: {
				Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyK},
				// Right bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			cfg.ButtonApplicationMenu: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// Back / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			cfg.ButtonSystem: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			cfg.ButtonA: {
				Keys: []ebiten.Key{ebiten.Key1},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			cfg.ButtonB: {
				Keys: []ebiten.Key{ebiten.KeyBackspace, ebiten.KeyDelete},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			cfg.ButtonX: {
				Keys: []ebiten.Key{ebiten.Key2},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			cfg.ButtonY: {
				Keys: []ebiten.Key{ebiten.Key3},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
		},
	}
}

// Movement keys feed the touchpad axis rather than a button.
var (
	keysLeft  = []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}
	keysRight = []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}
	keysUp    = []ebiten.Key{ebiten.KeyUp, ebiten.KeyW}
	keysDown  = []ebiten.Key{ebiten.KeyDown, ebiten.KeyS}
)
