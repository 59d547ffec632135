package core

import (
	"log"
	"time"

	"github.com/automoto/puppethands/bridge/mqtt"
	"github.com/automoto/puppethands/components"
	"github.com/automoto/puppethands/recording"
	"github.com/automoto/puppethands/shared/gamemath"
	"github.com/automoto/puppethands/shared/messages"
	"github.com/automoto/puppethands/shared/netcomponents"
	"github.com/automoto/puppethands/shared/netconfig"
	"github.com/automoto/puppethands/systems"
	"github.com/automoto/puppethands/tags"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// maxPendingFrames bounds each hand's frame backlog. Older frames are
// dropped so a stalled client catches up instead of replaying late input.
const maxPendingFrames = 4

// remoteHand is a live hand fed by frames from the network or a tracker.
type remoteHand struct {
	entry   *donburi.Entry
	pending []messages.ControllerFrame
	last    *messages.ControllerFrame
}

func (s *Server) queueFrame(owner string, frame messages.ControllerFrame) {
	hand, ok := s.hands[owner]
	if !ok {
		return
	}
	if len(hand.pending) >= maxPendingFrames {
		hand.pending = hand.pending[1:]
	}
	hand.pending = append(hand.pending, frame)
}

// applyFrames is the simulation's input system. Each remote hand consumes
// one frame per tick; with none waiting the last frame is held, so a late
// packet never reads as a release.
func (s *Server) applyFrames(ecs *ecs.ECS) {
	for owner, hand := range s.hands {
		if !hand.entry.Valid() {
			delete(s.hands, owner)
			continue
		}
		ctrl := components.LiveInput.Get(hand.entry).Controller

		if len(hand.pending) > 0 {
			frame := hand.pending[0]
			hand.pending = hand.pending[1:]
			hand.last = &frame
		}
		if hand.last == nil {
			ctrl.Begin()
			continue
		}
		if err := hand.last.Apply(ctrl); err != nil {
			log.Printf("Warning: %s: %v", owner, err)
		}
	}
}

// step advances the simulation one tick and refreshes the synced view.
func (s *Server) step() {
	s.ProcessCommands()
	s.ecs.Update()
	s.syncNet()
}

// syncNet copies simulation state into the net components and starts
// syncing anything new.
func (s *Server) syncNet() {
	w := s.world
	var fresh []*donburi.Entry

	tags.Hand.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(netcomponents.NetHandPose) {
			fresh = append(fresh, e)
			return
		}
		*netcomponents.NetHandPose.Get(e) = handView(e)
	})
	tags.Block.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(netcomponents.NetBlock) {
			fresh = append(fresh, e)
			return
		}
		*netcomponents.NetBlock.Get(e) = blockView(e)
	})
	tags.GoalZone.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(netcomponents.NetGoalZone) {
			fresh = append(fresh, e)
			return
		}
		*netcomponents.NetGoalZone.Get(e) = goalView(e)
	})

	// Structural changes wait until iteration is done
	for _, e := range fresh {
		s.startSync(e)
	}

	s.reapSynced()
	s.offerPoses()
}

func (s *Server) startSync(e *donburi.Entry) {
	entity := e.Entity()
	var err error
	var puppetID string

	switch {
	case e.HasComponent(components.Hand):
		view := handView(e)
		donburi.Add(e, netcomponents.NetHandPose, &view)
		err = srvsync.NetworkSync(s.world, &entity, srvsync.WithInterp(netcomponents.NetHandPose))
		if e.HasComponent(components.Puppet) {
			puppetID = components.Hand.Get(e).ID
		}
	case e.HasComponent(components.GoalZone):
		view := goalView(e)
		donburi.Add(e, netcomponents.NetGoalZone, &view)
		err = srvsync.NetworkSync(s.world, &entity, netcomponents.NetGoalZone)
	default:
		view := blockView(e)
		donburi.Add(e, netcomponents.NetBlock, &view)
		err = srvsync.NetworkSync(s.world, &entity, srvsync.WithInterp(netcomponents.NetBlock))
	}
	if err != nil {
		log.Printf("Failed to setup network sync: %v", err)
		return
	}
	s.synced[entity] = puppetID
}

// reapSynced forgets entities the simulation removed and announces
// removed puppets.
func (s *Server) reapSynced() {
	for entity, puppetID := range s.synced {
		if s.world.Valid(entity) {
			continue
		}
		delete(s.synced, entity)
		if puppetID != "" {
			log.Printf("[server] puppet %s removed", puppetID)
			s.broadcast(messages.PuppetRemovedEvent{PuppetID: puppetID})
		}
	}
}

func (s *Server) offerPoses() {
	if s.poses == nil {
		return
	}
	now := time.Now().UnixMilli()
	tags.Puppet.Each(s.world, func(e *donburi.Entry) {
		view := handView(e)
		s.poses.Offer(&mqtt.PuppetPose{
			ID:        components.Hand.Get(e).ID,
			X:         view.X,
			Y:         view.Y,
			Yaw:       view.Yaw,
			Holding:   view.Holding,
			Timestamp: now,
		})
	})
}

func handView(e *donburi.Entry) netcomponents.NetHandPoseData {
	pose := components.Pose.Get(e)
	hand := components.Hand.Get(e)
	view := netcomponents.NetHandPoseData{
		X:       pose.Position.X(),
		Y:       pose.Position.Y(),
		Yaw:     gamemath.Yaw(pose.Rotation),
		Kind:    hand.Kind,
		Holding: hand.Holding != nil,
	}
	if hand.Kind == netconfig.HandLive && e.HasComponent(components.LiveInput) {
		view.Recording = components.LiveInput.Get(e).Recorder.IsRecording()
	}
	return view
}

func blockView(e *donburi.Entry) netcomponents.NetBlockData {
	x, y := gamemath.Center(components.Object.Get(e).Object)
	item := components.Interactable.Get(e)
	return netcomponents.NetBlockData{
		X:     x,
		Y:     y,
		Scale: item.Scale,
		Score: item.Score,
		Held:  item.HeldBy != nil,
	}
}

func goalView(e *donburi.Entry) netcomponents.NetGoalZoneData {
	goal := components.GoalZone.Get(e)
	return netcomponents.NetGoalZoneData{
		Total:    goal.Total,
		LitWalls: systems.LitWalls(goal),
		Complete: goal.Complete,
	}
}

// sealedBroadcaster tells spectators about every new puppet.
type sealedBroadcaster struct {
	s *Server
}

func (b sealedBroadcaster) Save(id string, rec recording.Recording) error {
	b.s.broadcast(messages.PuppetSealedEvent{
		PuppetID:  id,
		Snapshots: rec.Len(),
		Span:      rec.Span(),
	})
	return nil
}
