package netcomponents

import (
	"math"

	"github.com/yohamta/donburi"
)

// NetHandPoseData is the synced view of a live hand or puppet.
type NetHandPoseData struct {
	X, Y      float64
	Yaw       float64 // radians about +Z
	Kind      int     // netconfig.HandLive or netconfig.HandPuppet
	Holding   bool
	Recording bool
}

var NetHandPose = donburi.NewComponentType[NetHandPoseData]()

// LerpNetHandPose interpolates position and yaw, taking the short way round.
func LerpNetHandPose(from, to NetHandPoseData, t float64) *NetHandPoseData {
	d := math.Remainder(to.Yaw-from.Yaw, 2*math.Pi)
	return &NetHandPoseData{
		X:         from.X + (to.X-from.X)*t,
		Y:         from.Y + (to.Y-from.Y)*t,
		Yaw:       from.Yaw + d*t,
		Kind:      to.Kind,
		Holding:   to.Holding,
		Recording: to.Recording,
	}
}
