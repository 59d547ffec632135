package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var up = mgl64.Vec3{0, 0, 1}

// YawQuat is a rotation of yaw radians about +Z, the up axis of the top-down
// view.
func YawQuat(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, up)
}

// Yaw extracts the rotation about +Z from q.
func Yaw(q mgl64.Quat) float64 {
	heading := q.Rotate(mgl64.Vec3{1, 0, 0})
	return math.Atan2(heading.Y(), heading.X())
}

// TurnToward rotates current toward target by at most maxStep radians,
// taking the short way round.
func TurnToward(current, target, maxStep float64) float64 {
	diff := math.Remainder(target-current, 2*math.Pi)
	if math.Abs(diff) <= maxStep {
		return target
	}
	if diff < 0 {
		return current - maxStep
	}
	return current + maxStep
}
