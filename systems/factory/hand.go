package factory

import (
	"fmt"

	"github.com/automoto/puppethands/archetypes"
	"github.com/automoto/puppethands/components"
	cfg "github.com/automoto/puppethands/config"
	"github.com/automoto/puppethands/recording"
	"github.com/automoto/puppethands/shared/netconfig"
	"github.com/automoto/puppethands/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLiveHand spawns a hand driven by a controller. Owner identifies the
// remote client or tracker feeding it; it is empty for the local hand.
func CreateLiveHand(ecs *ecs.ECS, x, y float64, owner string) *donburi.Entry {
	hand := archetypes.LiveHand.Spawn(ecs)

	name := "Hand"
	if owner != "" {
		name = "Hand " + owner
	}
	controller := recording.NewController(name)

	pose := recording.IdentityPose()
	pose.Position = mgl64.Vec3{x, y, 0}
	components.Pose.SetValue(hand, components.PoseData{Pose: pose})
	components.Hand.SetValue(hand, components.HandData{
		ID:     uuid.NewString(),
		Kind:   netconfig.HandLive,
		Device: controller,
	})
	components.LiveInput.SetValue(hand, components.LiveInputData{
		Controller: controller,
		Recorder:   recording.NewRecorder(cfg.Playback.MaxSnapshots),
		Owner:      owner,
	})

	attach(ecs, hand, handBox(pose, tags.ResolvHand))
	return hand
}

// CreatePuppet builds a playback driven hand straight from a sealed
// recording. Its own Pose is the sink the playback writes into, and its
// Device is a synthetic one reading the same playback, so grab and button
// logic treat it like any live hand. The puppet starts at start until the
// first tick resolves a cursor; an empty recording leaves it there.
func CreatePuppet(ecs *ecs.ECS, rec recording.Recording, loop recording.LoopConfig, clock recording.Clock, start recording.Pose) (*donburi.Entry, error) {
	playback, err := recording.NewPlayback(rec, loop, clock)
	if err != nil {
		return nil, fmt.Errorf("create puppet: %w", err)
	}
	id := uuid.NewString()
	input := recording.NewSyntheticDevice("Puppet "+id[:8], playback)

	puppet := archetypes.Puppet.Spawn(ecs)
	components.Pose.SetValue(puppet, components.PoseData{Pose: start})
	components.Hand.SetValue(puppet, components.HandData{
		ID:     id,
		Kind:   netconfig.HandPuppet,
		Device: input,
	})
	components.Puppet.SetValue(puppet, components.PuppetData{
		Playback: playback,
		Input:    input,
		Trail:    trail(rec),
	})

	attach(ecs, puppet, handBox(start, tags.ResolvHand))
	return puppet, nil
}

// handBox is a square of cfg.Hand.Size centred on the pose.
func handBox(pose recording.Pose, tag string) *resolv.Object {
	size := cfg.Hand.Size
	return newBox(pose.Position.X()-size/2, pose.Position.Y()-size/2, size, size, tag)
}

// trail samples the recorded path down to the configured length.
func trail(rec recording.Recording) []mgl64.Vec3 {
	path := rec.Positions()
	limit := cfg.Playback.TrailLength
	if limit < 2 || len(path) <= limit {
		return path
	}
	out := make([]mgl64.Vec3, 0, limit)
	step := float64(len(path)-1) / float64(limit-1)
	for i := 0; i < limit; i++ {
		out = append(out, path[int(float64(i)*step+0.5)])
	}
	return out
}
