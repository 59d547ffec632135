package recording

import (
	"testing"

	"github.com/automoto/puppethands/shared/netconfig"
	"github.com/go-gl/mathgl/mgl64"
)

func TestControllerEdges(t *testing.T) {
	c := NewController("Hand")
	trig := netconfig.ButtonTrigger

	c.Begin()
	c.Set(trig, true, false, mgl64.Vec2{1, 0})
	if !c.PressDown(trig) || !c.IsPressed(trig) {
		t.Fatal("expected press down on first held tick")
	}
	if !c.IsTouched(trig) {
		t.Error("a pressed button is touched")
	}
	if c.Axis1D(trig) != 1 {
		t.Errorf("Axis1D = %v", c.Axis1D(trig))
	}

	c.Begin()
	c.Set(trig, true, true, mgl64.Vec2{})
	if c.PressDown(trig) {
		t.Error("press down must fire once")
	}

	c.Begin()
	if !c.PressUp(trig) || !c.TouchUp(trig) {
		t.Error("expected release edges after Begin with no Set")
	}
}

func TestControllerSample(t *testing.T) {
	c := NewController("Hand")
	var p, touch ButtonSet
	p[netconfig.ButtonGrip] = true
	touch[netconfig.ButtonTouchpad] = true
	var axis AxisSet
	axis[netconfig.ButtonTouchpad] = mgl64.Vec2{0.2, 0.4}

	c.Begin()
	c.SetAll(p, touch, axis)
	s := c.Sample()
	if !s.Pressed[netconfig.ButtonGrip] || !s.PressDown[netconfig.ButtonGrip] || !s.Touched[netconfig.ButtonGrip] {
		t.Error("grip state wrong")
	}
	if s.Pressed[netconfig.ButtonTouchpad] || !s.TouchDown[netconfig.ButtonTouchpad] {
		t.Error("touchpad state wrong")
	}
	if s.Axis[netconfig.ButtonTouchpad] != (mgl64.Vec2{0.2, 0.4}) {
		t.Errorf("axis = %v", s.Axis[netconfig.ButtonTouchpad])
	}

	c.Begin()
	s = c.Sample()
	if !s.PressUp[netconfig.ButtonGrip] || !s.TouchUp[netconfig.ButtonTouchpad] {
		t.Error("release edges missing from sample")
	}
}

func TestControllerIgnoresInvalidButton(t *testing.T) {
	c := NewController("Hand")
	c.Begin()
	c.Set(netconfig.ButtonCount, true, true, mgl64.Vec2{1, 1})
	if c.IsPressed(netconfig.ButtonCount) {
		t.Error("invalid button reported pressed")
	}
}
