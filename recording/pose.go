// Package recording captures timestamped controller snapshots and replays
// them on a looping time base. It has no dependency on the game engine: the
// host feeds it poses, button state and a clock once per tick.
package recording

import "github.com/go-gl/mathgl/mgl64"

// Pose is a rigid-body position and orientation.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// IdentityPose returns a pose at the origin with no rotation.
func IdentityPose() Pose {
	return Pose{Rotation: mgl64.QuatIdent()}
}

// Forward returns the unit vector the pose faces along (-Z rotated).
func (p Pose) Forward() mgl64.Vec3 {
	return p.Rotation.Rotate(mgl64.Vec3{0, 0, -1})
}
