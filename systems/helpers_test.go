package systems

import (
	"testing"

	"github.com/automoto/puppethands/components"
	cfg "github.com/automoto/puppethands/config"
	"github.com/automoto/puppethands/recording"
	"github.com/automoto/puppethands/shared/gamemath"
	"github.com/automoto/puppethands/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// step is exact in binary so loop boundaries land on whole ticks.
const step = 0.125

// frame is the controller state fed to the live hand for one tick.
type frame struct {
	pressed []cfg.ButtonID
	axis    mgl64.Vec2
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

type harness struct {
	t    *testing.T
	ecs  *ecs.ECS
	hand *donburi.Entry
	sink *memorySink
	next frame
}

func newHarness(t *testing.T, handX, handY float64) *harness {
	t.Helper()
	h := &harness{
		t:    t,
		ecs:  ecs.NewECS(donburi.NewWorld()),
		sink: &memorySink{},
	}
	factory.CreateSpace(h.ecs, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateSession(h.ecs, step, recording.LoopConfig{Policy: recording.LoopFixed, Period: 2}, h.sink)
	h.hand = factory.CreateLiveHand(h.ecs, handX, handY, "")
	AddSimulationSystems(h.ecs, h.applyInput)
	return h
}

func (h *harness) applyInput(_ *ecs.ECS) {
	ctrl := components.LiveInput.Get(h.hand).Controller
	ctrl.Begin()
	for _, b := range h.next.pressed {
		ctrl.Set(b, true, true, mgl64.Vec2{})
	}
	ctrl.Set(cfg.ButtonTouchpad, false, h.next.axis.Len() > 0, h.next.axis)
	h.next = frame{}
}

// tick runs one simulation tick with the given controller state.
func (h *harness) tick(f frame) {
	h.next = f
	h.ecs.Update()
}

func (h *harness) idle(n int) {
	for i := 0; i < n; i++ {
		h.tick(frame{})
	}
}

func (h *harness) now() float64 {
	s, _ := GetSession(h.ecs.World)
	return s.Clock.Now()
}

func press(b ...cfg.ButtonID) frame {
	return frame{pressed: b}
}

func right(b ...cfg.ButtonID) frame {
	return frame{pressed: b, axis: mgl64.Vec2{1, 0}}
}

func puppets(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	for e := range components.Puppet.Iter(w) {
		out = append(out, e)
	}
	return out
}

func countBlocks(w donburi.World) int {
	n := 0
	for range components.Interactable.Iter(w) {
		n++
	}
	return n
}

func centerOf(e *donburi.Entry) (float64, float64) {
	return gamemath.Center(components.Object.Get(e).Object)
}

func sameEntry(a, b *donburi.Entry) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Entity() == b.Entity()
}
