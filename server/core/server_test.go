package core

import (
	"os"
	"testing"

	"github.com/automoto/puppethands/bridge/mqtt"
	"github.com/automoto/puppethands/components"
	cfg "github.com/automoto/puppethands/config"
	"github.com/automoto/puppethands/recording"
	"github.com/automoto/puppethands/shared/messages"
	"github.com/automoto/puppethands/shared/netcomponents"
	"github.com/automoto/puppethands/shared/protocol"
	"github.com/automoto/puppethands/shared/scenedata"
	"github.com/automoto/puppethands/tags"
	"github.com/yohamta/donburi"
)

func TestMain(m *testing.M) {
	if err := protocol.RegisterComponents(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type memorySink struct {
	saved map[string]recording.Recording
}

func (m *memorySink) Save(id string, rec recording.Recording) error {
	if m.saved == nil {
		m.saved = make(map[string]recording.Recording)
	}
	m.saved[id] = rec
	return nil
}

type posesSeen struct {
	poses []*mqtt.PuppetPose
}

func (p *posesSeen) Offer(pose *mqtt.PuppetPose) bool {
	p.poses = append(p.poses, pose)
	return true
}

func testLayout() *scenedata.Layout {
	return &scenedata.Layout{
		Width:     320,
		Height:    240,
		HandSpawn: scenedata.Point{X: 100, Y: 100},
		Blocks: []scenedata.Block{
			{Rect: scenedata.Rect{ID: 1, X: 200, Y: 100, W: 16, H: 16}, Score: true},
		},
		GoalZones: []scenedata.Rect{
			{ID: 2, X: 20, Y: 180, W: 64, H: 48},
		},
	}
}

func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()
	if opts.TickRate == 0 {
		opts.TickRate = 30
	}
	if opts.Layout == nil {
		opts.Layout = testLayout()
	}
	s, err := NewServer(opts)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s
}

func press(seq uint32, buttons ...cfg.ButtonID) messages.ControllerFrame {
	f := messages.ControllerFrame{Sequence: seq}
	for _, b := range buttons {
		f.Pressed = append(f.Pressed, b.String())
	}
	return f
}

func moveRight(seq uint32) messages.ControllerFrame {
	return messages.ControllerFrame{
		Sequence: seq,
		Axes:     map[string][2]float64{cfg.ButtonTouchpad.String(): {1, 0}},
	}
}

func TestNewServerRejectsBadOptions(t *testing.T) {
	if _, err := NewServer(Options{TickRate: 30}); err == nil {
		t.Error("expected an error without a layout")
	}
	if _, err := NewServer(Options{TickRate: 0, Layout: testLayout()}); err == nil {
		t.Error("expected an error for a zero tick rate")
	}
}

func TestTrackerFrameSpawnsHand(t *testing.T) {
	s := newTestServer(t, Options{})

	f := moveRight(1)
	f.Device = "esp-1"
	s.FeedTrackerFrame(&f)
	s.step()

	hand, ok := s.hands["tracker:esp-1"]
	if !ok {
		t.Fatal("tracker hand was not created")
	}
	x := components.Pose.Get(hand.entry).Position.X()
	if x <= 100 {
		t.Errorf("hand x = %v, want it to move right of the spawn point", x)
	}
	if owner := components.LiveInput.Get(hand.entry).Owner; owner != "tracker:esp-1" {
		t.Errorf("owner = %q", owner)
	}
}

func TestTrackerFrameWithoutDeviceIgnored(t *testing.T) {
	s := newTestServer(t, Options{})
	s.FeedTrackerFrame(&messages.ControllerFrame{Sequence: 1})
	s.FeedTrackerFrame(nil)
	s.step()

	if len(s.hands) != 0 {
		t.Errorf("hands = %d, want 0", len(s.hands))
	}
}

func TestLastFrameHeldWithoutEdges(t *testing.T) {
	s := newTestServer(t, Options{})
	s.addHand("client-1")
	s.queueFrame("client-1", press(1, cfg.ButtonTrigger))

	s.step()
	ctrl := components.LiveInput.Get(s.hands["client-1"].entry).Controller
	if !ctrl.PressDown(cfg.ButtonTrigger) {
		t.Fatal("first frame should press the trigger")
	}

	// No frame arrives: the trigger stays held without a new edge
	s.step()
	if !ctrl.IsPressed(cfg.ButtonTrigger) {
		t.Error("trigger released while waiting for the next frame")
	}
	if ctrl.PressDown(cfg.ButtonTrigger) || ctrl.PressUp(cfg.ButtonTrigger) {
		t.Error("held frame produced an edge")
	}

	s.queueFrame("client-1", press(2))
	s.step()
	if !ctrl.PressUp(cfg.ButtonTrigger) {
		t.Error("release frame should produce a press up")
	}
}

func TestPendingFramesBounded(t *testing.T) {
	s := newTestServer(t, Options{})
	s.addHand("client-1")
	for seq := uint32(1); seq <= 6; seq++ {
		s.queueFrame("client-1", press(seq))
	}

	pending := s.hands["client-1"].pending
	if len(pending) != maxPendingFrames {
		t.Fatalf("pending = %d, want %d", len(pending), maxPendingFrames)
	}
	if pending[0].Sequence != 3 {
		t.Errorf("oldest pending = %d, want 3", pending[0].Sequence)
	}
}

func TestFramesForUnknownHandDropped(t *testing.T) {
	s := newTestServer(t, Options{})
	s.queueFrame("nobody", press(1, cfg.ButtonTrigger))
	if len(s.hands) != 0 {
		t.Errorf("hands = %d, want 0", len(s.hands))
	}
}

func TestRecordedHandBecomesPuppet(t *testing.T) {
	sink := &memorySink{}
	poses := &posesSeen{}
	s := newTestServer(t, Options{Sinks: []components.RecordingSink{sink}, Poses: poses})
	s.addHand("client-1")

	frames := []messages.ControllerFrame{
		press(1, cfg.ButtonApplicationMenu),
		moveRight(2),
		moveRight(3),
		press(4, cfg.ButtonApplicationMenu),
	}
	for _, f := range frames {
		s.queueFrame("client-1", f)
		s.step()
	}

	if len(sink.saved) != 1 {
		t.Fatalf("saved recordings = %d, want 1", len(sink.saved))
	}
	var puppetID string
	for id, rec := range sink.saved {
		puppetID = id
		if rec.Len() != 3 {
			t.Errorf("snapshots = %d, want 3", rec.Len())
		}
	}

	if len(poses.poses) == 0 {
		t.Fatal("no puppet pose offered")
	}
	if got := poses.poses[len(poses.poses)-1].ID; got != puppetID {
		t.Errorf("pose id = %q, want %q", got, puppetID)
	}

	found := false
	for _, id := range s.synced {
		if id == puppetID {
			found = true
		}
	}
	if !found {
		t.Error("puppet is not network synced")
	}
}

func TestSyncNetMirrorsScene(t *testing.T) {
	s := newTestServer(t, Options{})
	s.addHand("client-1")
	s.step()

	blocks := 0
	tags.Block.Each(s.world, func(e *donburi.Entry) {
		blocks++
		if !e.HasComponent(netcomponents.NetBlock) {
			t.Error("block has no net component")
			return
		}
		view := netcomponents.NetBlock.Get(e)
		if view.X != 208 || view.Y != 108 || !view.Score {
			t.Errorf("block view = %+v, want centre 208,108 scoring", *view)
		}
	})
	if blocks != 1 {
		t.Errorf("blocks = %d, want 1", blocks)
	}

	entry := s.hands["client-1"].entry
	if !entry.HasComponent(netcomponents.NetHandPose) {
		t.Fatal("hand has no net component")
	}
	view := netcomponents.NetHandPose.Get(entry)
	if view.X != 100 || view.Y != 100 {
		t.Errorf("hand view = %v,%v, want 100,100", view.X, view.Y)
	}

	zones := 0
	tags.GoalZone.Each(s.world, func(e *donburi.Entry) {
		zones++
		if !e.HasComponent(netcomponents.NetGoalZone) {
			t.Error("goal zone has no net component")
		}
	})
	if zones != 1 {
		t.Errorf("goal zones = %d, want 1", zones)
	}
}

func TestRemoveHand(t *testing.T) {
	s := newTestServer(t, Options{})
	s.addHand("client-1")
	s.step()
	entry := s.hands["client-1"].entry
	entity := entry.Entity()

	s.enqueue(func() { s.removeHand("client-1") })
	s.step()

	if _, ok := s.hands["client-1"]; ok {
		t.Error("hand still tracked")
	}
	if s.world.Valid(entity) {
		t.Error("hand entity still in the world")
	}
	if _, ok := s.synced[entity]; ok {
		t.Error("removed hand still synced")
	}
}

func TestCommandQueueFullDrops(t *testing.T) {
	s := newTestServer(t, Options{})
	ran := 0
	for i := 0; i < cfg.Server.FrameChan+10; i++ {
		s.enqueue(func() { ran++ })
	}
	s.ProcessCommands()
	if ran != cfg.Server.FrameChan {
		t.Errorf("ran = %d, want %d", ran, cfg.Server.FrameChan)
	}
}
