package scenes

import (
	"image/color"
	"io"
	"log"
	"os"
	"sync"

	"github.com/automoto/puppethands/assets"
	"github.com/automoto/puppethands/components"
	cfg "github.com/automoto/puppethands/config"
	"github.com/automoto/puppethands/network"
	"github.com/automoto/puppethands/persistence"
	"github.com/automoto/puppethands/recording"
	"github.com/automoto/puppethands/systems"
	"github.com/automoto/puppethands/systems/client"
	"github.com/automoto/puppethands/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LabScene is the single top-down scene of the demo: one live hand, the
// lab gadgets and every puppet recorded so far.
type LabScene struct {
	ecs   *ecs.ECS
	store *persistence.RecordingStore // nil when storage is unavailable
	net   *network.Client             // nil when playing offline
	once  sync.Once
}

func NewLabScene(store *persistence.RecordingStore, net *network.Client) *LabScene {
	return &LabScene{store: store, net: net}
}

func (ls *LabScene) Update() {
	ls.once.Do(ls.configure)
	ls.ecs.Update()

	if ls.net != nil {
		for _, evt := range ls.net.DrainSealedEvents() {
			systems.ScreenLogf(ls.ecs, "server: puppet %s sealed (%d snapshots, %.2fs)", shortID(evt.PuppetID), evt.Snapshots, evt.Span)
		}
		for _, evt := range ls.net.DrainRemovedEvents() {
			systems.ScreenLogf(ls.ecs, "server: puppet %s removed", shortID(evt.PuppetID))
		}
	}
}

func (ls *LabScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LabScene) configure() {
	layout, err := assets.LoadScene(cfg.Scene.Path)
	if err != nil {
		panic("failed to load scene: " + err.Error())
	}

	ecs := ecs.NewECS(donburi.NewWorld())
	ls.ecs = ecs

	// Log rows also show up on screen
	factory.CreateScreenLog(ecs)
	log.SetOutput(io.MultiWriter(os.Stderr, systems.ScreenLogWriter(ecs)))

	var sinks []components.RecordingSink
	if ls.store != nil {
		sinks = append(sinks, ls.store)
	}

	factory.CreateSpace(ecs, layout.Width, layout.Height, cfg.Scene.CellSize, cfg.Scene.CellSize)
	session := factory.CreateSession(ecs, cfg.C.TickSeconds(), cfg.Playback.Loop, sinks...)
	spawn := factory.CreateScene(ecs, layout)
	factory.CreateLiveHand(ecs, spawn.X, spawn.Y, "")

	ls.restorePuppets(components.Session.Get(session), spawn.X, spawn.Y)

	input := client.UpdateControllerInput
	if ls.net != nil {
		input = client.NewForwardInput(ls.net)
	}
	systems.AddSimulationSystems(ecs, input)

	// Add renderers
	ecs.AddRenderer(cfg.Default, client.DrawWalls)
	ecs.AddRenderer(cfg.Default, client.DrawGoalZones)
	ecs.AddRenderer(cfg.Default, client.DrawPushButtons)
	ecs.AddRenderer(cfg.Default, client.DrawTrails)
	ecs.AddRenderer(cfg.Default, client.DrawBlocks)
	ecs.AddRenderer(cfg.Default, client.DrawHands)
	ecs.AddRenderer(cfg.Default, client.DrawMetronome)
	ecs.AddRenderer(cfg.Default, client.DrawScreenLog)
}

// restorePuppets brings back the puppets saved by earlier runs.
func (ls *LabScene) restorePuppets(session *components.SessionData, x, y float64) {
	if ls.store == nil {
		return
	}
	saved := ls.store.LoadAll()
	restored := 0
	for _, id := range ls.store.List() {
		rec, ok := saved[id]
		if !ok {
			continue
		}
		start := recording.IdentityPose()
		if first, ok := rec.First(); ok {
			start = first.Pose
		} else {
			start.Position[0], start.Position[1] = x, y
		}
		if _, err := factory.CreatePuppet(ls.ecs, rec, session.Loop, session.Clock, start); err != nil {
			log.Printf("Warning: could not restore recording %s: %v", id, err)
			continue
		}
		restored++
	}
	if restored > 0 {
		log.Printf("[store] restored %d puppets", restored)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
