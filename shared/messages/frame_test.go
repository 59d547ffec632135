package messages

import (
	"encoding/json"
	"testing"

	"github.com/automoto/puppethands/recording"
	"github.com/automoto/puppethands/shared/netconfig"
	"github.com/go-gl/mathgl/mgl64"
)

func TestApplyFrame(t *testing.T) {
	ctrl := recording.NewController("test")
	frame := ControllerFrame{
		Sequence: 1,
		Pressed:  []string{"trigger"},
		Touched:  []string{"touchpad"},
		Axes:     map[string][2]float64{"touchpad": {0.5, -1}},
	}
	if err := frame.Apply(ctrl); err != nil {
		t.Fatal(err)
	}
	if !ctrl.IsPressed(netconfig.ButtonTrigger) || !ctrl.PressDown(netconfig.ButtonTrigger) {
		t.Error("trigger should be pressed with a down edge")
	}
	if !ctrl.IsTouched(netconfig.ButtonTrigger) {
		t.Error("a pressed button is also touched")
	}
	if ctrl.IsPressed(netconfig.ButtonTouchpad) || !ctrl.IsTouched(netconfig.ButtonTouchpad) {
		t.Error("touchpad should be touched only")
	}
	if got := ctrl.Axis(netconfig.ButtonTouchpad); got != (mgl64.Vec2{0.5, -1}) {
		t.Errorf("axis = %v", got)
	}

	// next frame without the trigger releases it
	if err := (ControllerFrame{Sequence: 2}).Apply(ctrl); err != nil {
		t.Fatal(err)
	}
	if !ctrl.PressUp(netconfig.ButtonTrigger) {
		t.Error("trigger should report an up edge")
	}
}

func TestApplyFrameUnknownButton(t *testing.T) {
	ctrl := recording.NewController("test")
	err := ControllerFrame{Pressed: []string{"grip", "warp"}}.Apply(ctrl)
	if err == nil {
		t.Fatal("expected an error for an unknown button")
	}
	if !ctrl.IsPressed(netconfig.ButtonGrip) {
		t.Error("known buttons should still apply")
	}
}

func TestFrameFromInputRoundTrip(t *testing.T) {
	src := recording.NewController("src")
	src.Begin()
	src.Set(netconfig.ButtonGrip, true, true, mgl64.Vec2{})
	src.Set(netconfig.ButtonTouchpad, false, true, mgl64.Vec2{1, 0})

	frame := FrameFromInput(7, src.Sample(), 1234)
	data, err := json.Marshal(frame)
	if err != nil {
		t.Fatal(err)
	}
	var decoded ControllerFrame
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}

	dst := recording.NewController("dst")
	if err := decoded.Apply(dst); err != nil {
		t.Fatal(err)
	}
	if dst.Sample().Pressed != src.Sample().Pressed {
		t.Errorf("pressed differs: %v vs %v", dst.Sample().Pressed, src.Sample().Pressed)
	}
	if dst.Sample().Touched != src.Sample().Touched {
		t.Error("touched differs")
	}
	if dst.Axis(netconfig.ButtonTouchpad) != (mgl64.Vec2{1, 0}) {
		t.Error("axis lost")
	}
	if decoded.Sequence != 7 || decoded.Timestamp != 1234 {
		t.Errorf("header = %d/%d", decoded.Sequence, decoded.Timestamp)
	}
}
