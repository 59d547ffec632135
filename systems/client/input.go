// Package client holds the ebiten side of the demo: polling the local
// keyboard and gamepads into the local hand's controller and drawing the
// scene. The simulation in package systems never imports it.
package client

import (
	"github.com/automoto/puppethands/components"
	cfg "github.com/automoto/puppethands/config"
	"github.com/automoto/puppethands/recording"
	"github.com/automoto/puppethands/shared/gamemath"
	"github.com/automoto/puppethands/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateControllerInput polls the keyboard and gamepads into the controller
// of the local live hand, the one with no remote owner.
// Must run BEFORE UpdateHandMotion in the system order.
func UpdateControllerInput(ecs *ecs.ECS) {
	ctrl := localController(ecs.World)
	if ctrl == nil {
		return
	}
	ctrl.Begin()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for button, binding := range Input.Bindings {
		if bindingPressed(binding, gamepadIDs) {
			ctrl.Set(button, true, true, mgl64.Vec2{})
		}
	}

	axis := keyboardAxis()
	if stick := analogAxis(gamepadIDs); stick.Len() > 0 {
		axis = stick
	}
	if axis.Len() > 0 {
		ctrl.Set(cfg.ButtonTouchpad, false, true, axis)
	}
}

func localController(w donburi.World) *recording.Controller {
	var ctrl *recording.Controller
	tags.LiveHand.Each(w, func(e *donburi.Entry) {
		live := components.LiveInput.Get(e)
		if ctrl == nil && live.Owner == "" {
			ctrl = live.Controller
		}
	})
	return ctrl
}

func bindingPressed(binding InputBinding, gamepads []ebiten.GamepadID) bool {
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

func anyKey(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// keyboardAxis maps the movement keys onto a unit touchpad axis.
func keyboardAxis() mgl64.Vec2 {
	var axis mgl64.Vec2
	if anyKey(keysLeft) {
		axis[0]--
	}
	if anyKey(keysRight) {
		axis[0]++
	}
	if anyKey(keysUp) {
		axis[1]--
	}
	if anyKey(keysDown) {
		axis[1]++
	}
	if axis.Len() > 1 {
		axis = axis.Normalize()
	}
	return axis
}

// analogAxis reads the left stick of the first gamepad outside the deadzone.
func analogAxis(gamepads []ebiten.GamepadID) mgl64.Vec2 {
	deadzone := Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		axis := mgl64.Vec2{gamemath.ApplyDeadzone(h, deadzone), gamemath.ApplyDeadzone(v, deadzone)}
		if axis.Len() > 0 {
			return axis
		}
	}
	return mgl64.Vec2{}
}
