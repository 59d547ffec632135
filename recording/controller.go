package recording

import (
	"github.com/automoto/puppethands/shared/netconfig"
	"github.com/go-gl/mathgl/mgl64"
)

// Controller is a live Device fed with raw button state once per tick.
// Edges are computed on demand by comparing the current and previous tick.
type Controller struct {
	name string

	pressed     ButtonSet
	prevPressed ButtonSet
	touched     ButtonSet
	prevTouched ButtonSet
	axis        AxisSet
}

func NewController(name string) *Controller {
	return &Controller{name: name}
}

// Begin starts a new tick: current state becomes previous and current is
// cleared, ready for Set.
func (c *Controller) Begin() {
	c.prevPressed = c.pressed
	c.prevTouched = c.touched
	c.pressed = ButtonSet{}
	c.touched = ButtonSet{}
	c.axis = AxisSet{}
}

// Set records this tick's raw state for one button. A pressed button is
// always touched.
func (c *Controller) Set(b netconfig.ButtonID, pressed, touched bool, axis mgl64.Vec2) {
	if !b.Valid() {
		return
	}
	c.pressed[b] = pressed
	c.touched[b] = touched || pressed
	c.axis[b] = axis
}

// SetAll records this tick's raw state for every button at once.
func (c *Controller) SetAll(pressed, touched ButtonSet, axis AxisSet) {
	for b := range pressed {
		c.pressed[b] = pressed[b]
		c.touched[b] = touched[b] || pressed[b]
	}
	c.axis = axis
}

// Sample reports the full input state of this tick for the recorder.
func (c *Controller) Sample() InputState {
	var s InputState
	for b := netconfig.ButtonID(0); b < netconfig.ButtonCount; b++ {
		s.Pressed[b] = c.pressed[b]
		s.PressDown[b] = c.pressed[b] && !c.prevPressed[b]
		s.PressUp[b] = !c.pressed[b] && c.prevPressed[b]
		s.Touched[b] = c.touched[b]
		s.TouchDown[b] = c.touched[b] && !c.prevTouched[b]
		s.TouchUp[b] = !c.touched[b] && c.prevTouched[b]
	}
	s.Axis = c.axis
	return s
}

func (c *Controller) Name() string {
	return c.name
}

func (c *Controller) IsPressed(b netconfig.ButtonID) bool {
	return b.Valid() && c.pressed[b]
}

func (c *Controller) PressDown(b netconfig.ButtonID) bool {
	return b.Valid() && c.pressed[b] && !c.prevPressed[b]
}

func (c *Controller) PressUp(b netconfig.ButtonID) bool {
	return b.Valid() && !c.pressed[b] && c.prevPressed[b]
}

func (c *Controller) IsTouched(b netconfig.ButtonID) bool {
	return b.Valid() && c.touched[b]
}

func (c *Controller) TouchDown(b netconfig.ButtonID) bool {
	return b.Valid() && c.touched[b] && !c.prevTouched[b]
}

func (c *Controller) TouchUp(b netconfig.ButtonID) bool {
	return b.Valid() && !c.touched[b] && c.prevTouched[b]
}

func (c *Controller) IsNearTouched(netconfig.ButtonID) bool { return false }
func (c *Controller) NearTouchDown(netconfig.ButtonID) bool { return false }
func (c *Controller) NearTouchUp(netconfig.ButtonID) bool   { return false }

func (c *Controller) Axis(b netconfig.ButtonID) mgl64.Vec2 {
	if !b.Valid() {
		return mgl64.Vec2{}
	}
	return c.axis[b]
}

func (c *Controller) Axis1D(b netconfig.ButtonID) float64 {
	return c.Axis(b).X()
}
