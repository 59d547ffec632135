package recording

import (
	"errors"
	"testing"

	"github.com/automoto/puppethands/shared/netconfig"
	"github.com/go-gl/mathgl/mgl64"
)

func poseAt(x float64) Pose {
	p := IdentityPose()
	p.Position = mgl64.Vec3{x, 0, 0}
	return p
}

func TestRecorderToggleSealsAndClears(t *testing.T) {
	r := NewRecorder(0)
	if _, ok := r.Toggle(); ok {
		t.Fatal("starting a session must not seal a recording")
	}
	for i, ts := range []float64{0.0, 0.1, 0.2} {
		if err := r.Tick(poseAt(float64(i)), InputState{}, ts); err != nil {
			t.Fatalf("Tick(%v): %v", ts, err)
		}
	}
	rec, ok := r.Toggle()
	if !ok {
		t.Fatal("stopping a session must seal a recording")
	}
	if rec.Len() != 3 {
		t.Fatalf("sealed %d snapshots, want 3", rec.Len())
	}
	if r.Len() != 0 {
		t.Errorf("buffer holds %d snapshots after seal, want 0", r.Len())
	}
	for i := 0; i < rec.Len(); i++ {
		if got := rec.At(i).Position.X(); got != float64(i) {
			t.Errorf("snapshot %d x = %v, want %v", i, got, i)
		}
	}

	// a second session starts from scratch and leaves the first intact
	r.Toggle()
	_ = r.Tick(poseAt(9), InputState{}, 5)
	rec2, _ := r.Toggle()
	if rec2.Len() != 1 || rec.Len() != 3 {
		t.Errorf("second session len = %d, first = %d; want 1, 3", rec2.Len(), rec.Len())
	}
}

func TestRecorderIdleTickIgnored(t *testing.T) {
	r := NewRecorder(0)
	if err := r.Tick(poseAt(1), InputState{}, 1); err != nil {
		t.Fatal(err)
	}
	if r.Len() != 0 {
		t.Errorf("idle recorder captured %d snapshots", r.Len())
	}
}

func TestRecorderEmptySeal(t *testing.T) {
	r := NewRecorder(0)
	r.Toggle()
	rec, ok := r.Toggle()
	if !ok {
		t.Fatal("expected a sealed recording")
	}
	if !rec.Empty() {
		t.Errorf("len = %d, want empty", rec.Len())
	}
}

func TestRecorderCapturesInput(t *testing.T) {
	r := NewRecorder(0)
	r.Toggle()
	var in InputState
	in.Pressed[netconfig.ButtonTrigger] = true
	in.PressDown[netconfig.ButtonTrigger] = true
	in.Axis[netconfig.ButtonTouchpad] = mgl64.Vec2{0.5, -0.5}
	_ = r.Tick(IdentityPose(), in, 0)
	rec, _ := r.Toggle()
	s := rec.At(0)
	if !s.Pressed[netconfig.ButtonTrigger] || !s.PressDown[netconfig.ButtonTrigger] {
		t.Error("trigger state lost")
	}
	if s.Pressed[netconfig.ButtonGrip] {
		t.Error("grip should default to released")
	}
	if s.Axis[netconfig.ButtonTouchpad] != (mgl64.Vec2{0.5, -0.5}) {
		t.Errorf("axis = %v", s.Axis[netconfig.ButtonTouchpad])
	}
}

func TestRecorderRejectsOutOfOrder(t *testing.T) {
	r := NewRecorder(0)
	r.Toggle()
	_ = r.Tick(poseAt(0), InputState{}, 1.0)
	err := r.Tick(poseAt(1), InputState{}, 0.5)
	if !errors.Is(err, ErrTimestampOrder) {
		t.Fatalf("err = %v, want ErrTimestampOrder", err)
	}
	// equal timestamps are allowed
	if err := r.Tick(poseAt(2), InputState{}, 1.0); err != nil {
		t.Fatalf("equal timestamp rejected: %v", err)
	}
	if r.Len() != 2 {
		t.Errorf("len = %d, want 2", r.Len())
	}
}

func TestRecorderCapacityKeepsNewest(t *testing.T) {
	r := NewRecorder(3)
	r.Toggle()
	for i := 0; i < 5; i++ {
		_ = r.Tick(poseAt(float64(i)), InputState{}, float64(i))
	}
	path := r.Path()
	if len(path) != 3 {
		t.Fatalf("path len = %d, want 3", len(path))
	}
	rec, _ := r.Toggle()
	want := []float64{2, 3, 4}
	for i, ts := range want {
		if got := rec.At(i).Timestamp; got != ts {
			t.Errorf("snapshot %d ts = %v, want %v", i, got, ts)
		}
	}
	// the ring must still reject samples older than the newest one
	r.Toggle()
	for i := 0; i < 4; i++ {
		_ = r.Tick(poseAt(0), InputState{}, float64(10+i))
	}
	if err := r.Tick(poseAt(0), InputState{}, 12.5); !errors.Is(err, ErrTimestampOrder) {
		t.Errorf("err = %v, want ErrTimestampOrder after wrap", err)
	}
}
