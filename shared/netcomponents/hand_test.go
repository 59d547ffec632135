package netcomponents

import (
	"math"
	"testing"
)

func TestLerpNetHandPose(t *testing.T) {
	from := NetHandPoseData{X: 0, Y: 10, Yaw: 0.1}
	to := NetHandPoseData{X: 10, Y: 20, Yaw: 0.5, Kind: 1, Holding: true}

	got := LerpNetHandPose(from, to, 0.5)
	if got.X != 5 || got.Y != 15 {
		t.Errorf("position = %v,%v, want 5,15", got.X, got.Y)
	}
	if math.Abs(got.Yaw-0.3) > 1e-9 {
		t.Errorf("yaw = %v, want 0.3", got.Yaw)
	}
	if got.Kind != 1 || !got.Holding {
		t.Errorf("discrete fields should come from the target: %+v", *got)
	}
}

func TestLerpNetHandPoseWrapsYaw(t *testing.T) {
	from := NetHandPoseData{Yaw: math.Pi - 0.1}
	to := NetHandPoseData{Yaw: -math.Pi + 0.1}

	got := LerpNetHandPose(from, to, 0.5)
	// halfway across the seam, not back through zero
	if math.Abs(math.Abs(got.Yaw)-math.Pi) > 1e-9 {
		t.Errorf("yaw = %v, want ±pi", got.Yaw)
	}
}
