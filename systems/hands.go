package systems

import (
	"log"
	"math"

	"github.com/automoto/puppethands/components"
	cfg "github.com/automoto/puppethands/config"
	"github.com/automoto/puppethands/recording"
	"github.com/automoto/puppethands/shared/gamemath"
	"github.com/automoto/puppethands/systems/factory"
	"github.com/automoto/puppethands/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHandMotion moves live hands from the touchpad axis and turns them
// toward the direction of travel.
// Must run AFTER controller input has been applied for this tick.
func UpdateHandMotion(ecs *ecs.ECS) {
	session, ok := GetSession(ecs.World)
	if !ok {
		return
	}
	bounds := sceneBounds()

	tags.LiveHand.Each(ecs.World, func(e *donburi.Entry) {
		live := components.LiveInput.Get(e)
		pose := components.Pose.Get(e)

		axis := live.Controller.Axis(cfg.ButtonTouchpad)
		if axis.Len() == 0 {
			return
		}
		if axis.Len() > 1 {
			axis = axis.Normalize()
		}

		step := cfg.Hand.MoveSpeed * session.Step
		x := gamemath.Clamp(pose.Position.X()+axis.X()*step, bounds.minX, bounds.maxX)
		y := gamemath.Clamp(pose.Position.Y()+axis.Y()*step, bounds.minY, bounds.maxY)
		pose.Position = mgl64.Vec3{x, y, pose.Position.Z()}

		target := math.Atan2(axis.Y(), axis.X())
		yaw := gamemath.TurnToward(gamemath.Yaw(pose.Rotation), target, cfg.Hand.TurnSpeed*session.Step)
		pose.Rotation = gamemath.YawQuat(yaw)

		syncHandObject(e)
	})
}

// UpdateRecording toggles each live hand's recorder on the record button and
// samples the hand while recording. Sealing a recording spawns a puppet that
// replays it.
func UpdateRecording(ecs *ecs.ECS) {
	session, ok := GetSession(ecs.World)
	if !ok {
		return
	}

	var sealed []sealedRecording
	tags.LiveHand.Each(ecs.World, func(e *donburi.Entry) {
		live := components.LiveInput.Get(e)
		hand := components.Hand.Get(e)

		if live.Controller.PressDown(cfg.Hand.RecordButton) {
			if rec, done := live.Recorder.Toggle(); done {
				sealed = append(sealed, sealedRecording{hand: e, rec: rec})
			} else {
				log.Printf("[recorder] %s: recording", hand.ID)
			}
		}

		if live.Recorder.IsRecording() {
			pose := components.Pose.Get(e)
			if err := live.Recorder.Tick(pose.Pose, live.Controller.Sample(), session.Clock.Now()); err != nil {
				log.Printf("Warning: dropped snapshot for %s: %v", hand.ID, err)
			}
		}
	})

	// Puppets are spawned after iterating so the live hand query is not
	// modified while it runs.
	for _, s := range sealed {
		spawnPuppet(ecs, session, s.hand, s.rec)
	}
}

type sealedRecording struct {
	hand *donburi.Entry
	rec  recording.Recording
}

func spawnPuppet(ecs *ecs.ECS, session *components.SessionData, e *donburi.Entry, rec recording.Recording) {
	pose := components.Pose.Get(e).Pose

	puppet, err := factory.CreatePuppet(ecs, rec, session.Loop, session.Clock, pose)
	if err != nil {
		log.Printf("Warning: could not create puppet: %v", err)
		return
	}
	id := components.Hand.Get(puppet).ID
	donburi.Add(puppet, components.SealedEvent, &components.SealedEventData{
		ID:        id,
		Recording: rec,
	})
	log.Printf("[recorder] puppet %s: %d snapshots over %.2fs", id, rec.Len(), rec.Span())
}

// UpdatePlayback resolves every puppet's cursor for this tick and writes the
// cursor pose into the puppet.
func UpdatePlayback(ecs *ecs.ECS) {
	tags.Puppet.Each(ecs.World, func(e *donburi.Entry) {
		puppet := components.Puppet.Get(e)
		cursor, ok := puppet.Playback.Advance()
		if !ok {
			return
		}
		components.Pose.Get(e).Pose = cursor.Pose
		syncHandObject(e)
	})
}

// UpdateSyntheticInput shifts every puppet's synthetic device onto this
// tick's cursor. Must run AFTER UpdatePlayback and BEFORE anything reads
// puppet buttons.
func UpdateSyntheticInput(ecs *ecs.ECS) {
	session, ok := GetSession(ecs.World)
	if !ok {
		return
	}
	tags.Puppet.Each(ecs.World, func(e *donburi.Entry) {
		components.Puppet.Get(e).Input.Update(session.Frame)
	})
}

// UpdatePuppetRemoval removes the puppet nearest to a live hand when its
// remove button goes down.
func UpdatePuppetRemoval(ecs *ecs.ECS) {
	var doomed []*donburi.Entry
	tags.LiveHand.Each(ecs.World, func(e *donburi.Entry) {
		hand := components.Hand.Get(e)
		if !hand.Device.PressDown(cfg.Hand.RemoveButton) {
			return
		}
		if p := nearestPuppet(ecs.World, components.Pose.Get(e).Position, doomed); p != nil {
			doomed = append(doomed, p)
		}
	})
	for _, p := range doomed {
		log.Printf("[recorder] puppet %s removed", components.Hand.Get(p).ID)
		RemoveEntity(ecs, p)
	}
}

func nearestPuppet(w donburi.World, from mgl64.Vec3, skip []*donburi.Entry) *donburi.Entry {
	var best *donburi.Entry
	bestDist := math.Inf(1)
	tags.Puppet.Each(w, func(p *donburi.Entry) {
		for _, s := range skip {
			if s.Entity() == p.Entity() {
				return
			}
		}
		if d := components.Pose.Get(p).Position.Sub(from).Len(); d < bestDist {
			best, bestDist = p, d
		}
	})
	return best
}

// syncHandObject moves the hand's collision box onto its pose.
func syncHandObject(e *donburi.Entry) {
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	pos := components.Pose.Get(e).Position
	gamemath.MoveCenter(obj.Object, pos.X(), pos.Y())
}

type bounds struct {
	minX, minY, maxX, maxY float64
}

func sceneBounds() bounds {
	return bounds{maxX: float64(cfg.C.Width), maxY: float64(cfg.C.Height)}
}
