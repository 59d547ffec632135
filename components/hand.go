package components

import (
	"github.com/automoto/puppethands/recording"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// PoseData is the world pose of an entity. Positions are scene units
// (pixels of the top-down view); rotation is a yaw about +Z.
type PoseData struct {
	recording.Pose
}

var Pose = donburi.NewComponentType[PoseData]()

// HandData is shared by live hands and puppets. Interaction systems read
// buttons only through Device, so they cannot tell the two apart.
type HandData struct {
	ID     string
	Kind   int // netconfig.HandLive or netconfig.HandPuppet
	Device recording.Device

	Holding    *donburi.Entry // nil when empty
	GrabOffset mgl64.Vec3
}

var Hand = donburi.NewComponentType[HandData]()

// LiveInputData belongs to hands driven by a real controller
type LiveInputData struct {
	Controller *recording.Controller
	Recorder   *recording.Recorder
	Owner      string // network client or tracker id, empty for the local hand
}

var LiveInput = donburi.NewComponentType[LiveInputData]()

// PuppetData belongs to hands driven by a sealed recording
type PuppetData struct {
	Playback *recording.Playback
	Input    *recording.SyntheticDevice
	Trail    []mgl64.Vec3
}

var Puppet = donburi.NewComponentType[PuppetData]()

// SealedEventData is attached to a new puppet for one tick so the recording
// it plays can be handed to storage.
type SealedEventData struct {
	ID        string
	Recording recording.Recording
}

var SealedEvent = donburi.NewComponentType[SealedEventData]()
