package messages

import (
	"fmt"

	"github.com/automoto/puppethands/recording"
	"github.com/automoto/puppethands/shared/netconfig"
	"github.com/go-gl/mathgl/mgl64"
)

// ControllerFrame is one tick of controller state from a remote client or
// tracker. Buttons are named as netconfig.ButtonID.String so JSON feeds stay
// readable; buttons not listed are up.
type ControllerFrame struct {
	Sequence  uint32                `json:"seq"`
	Device    string                `json:"device,omitempty"` // set by the MQTT bridge from the topic
	Pressed   []string              `json:"pressed,omitempty"`
	Touched   []string              `json:"touched,omitempty"`
	Axes      map[string][2]float64 `json:"axes,omitempty"`
	Timestamp int64                 `json:"ts"` // sender clock, Unix ms
}

// Apply starts a new tick on ctrl and sets it from the frame. Unknown button
// names are skipped and returned in the error.
func (f ControllerFrame) Apply(ctrl *recording.Controller) error {
	var pressed, touched recording.ButtonSet
	var axis recording.AxisSet
	var unknown []string

	for _, name := range f.Pressed {
		if b, ok := netconfig.ButtonFromName(name); ok {
			pressed[b] = true
			touched[b] = true
		} else {
			unknown = append(unknown, name)
		}
	}
	for _, name := range f.Touched {
		if b, ok := netconfig.ButtonFromName(name); ok {
			touched[b] = true
		} else {
			unknown = append(unknown, name)
		}
	}
	for name, v := range f.Axes {
		if b, ok := netconfig.ButtonFromName(name); ok {
			axis[b] = mgl64.Vec2(v)
		} else {
			unknown = append(unknown, name)
		}
	}

	ctrl.Begin()
	ctrl.SetAll(pressed, touched, axis)
	if len(unknown) > 0 {
		return fmt.Errorf("unknown buttons in frame %d: %v", f.Sequence, unknown)
	}
	return nil
}

// FrameFromInput encodes a sampled controller state.
func FrameFromInput(seq uint32, in recording.InputState, timestamp int64) ControllerFrame {
	f := ControllerFrame{Sequence: seq, Timestamp: timestamp}
	for b := netconfig.ButtonID(0); b < netconfig.ButtonCount; b++ {
		name := b.String()
		switch {
		case in.Pressed[b]:
			f.Pressed = append(f.Pressed, name)
		case in.Touched[b]:
			f.Touched = append(f.Touched, name)
		}
		if in.Axis[b] != (mgl64.Vec2{}) {
			if f.Axes == nil {
				f.Axes = make(map[string][2]float64)
			}
			f.Axes[name] = [2]float64(in.Axis[b])
		}
	}
	return f
}
