package recording

import (
	"github.com/automoto/puppethands/shared/netconfig"
	"github.com/go-gl/mathgl/mgl64"
)

// ButtonSet holds one boolean per known button.
type ButtonSet [netconfig.ButtonCount]bool

// AxisSet holds one 2D analog value per known button.
type AxisSet [netconfig.ButtonCount]mgl64.Vec2

// InputState is everything a controller reports about its buttons in one
// tick.
type InputState struct {
	Pressed   ButtonSet
	PressDown ButtonSet
	PressUp   ButtonSet
	Touched   ButtonSet
	TouchDown ButtonSet
	TouchUp   ButtonSet
	Axis      AxisSet
}

// Snapshot is the pose and input of a controller at one instant.
type Snapshot struct {
	Pose
	Timestamp float64
	InputState
}
