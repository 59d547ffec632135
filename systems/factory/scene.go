package factory

import (
	"log"

	"github.com/automoto/puppethands/shared/scenedata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScene places every object of a layout. The space must already
// exist. Returns the spawn point for hands.
func CreateScene(ecs *ecs.ECS, layout *scenedata.Layout) scenedata.Point {
	for _, w := range layout.Walls {
		CreateWall(ecs, w.X, w.Y, w.W, w.H)
	}

	blocks := make(map[uint32]*donburi.Entry, len(layout.Blocks))
	for _, b := range layout.Blocks {
		blocks[b.ID] = CreateBlock(ecs, b.X, b.Y, b.Score, false)
	}

	for _, g := range layout.GoalZones {
		CreateGoalZone(ecs, g.X, g.Y, g.W, g.H)
	}

	buttons := make(map[uint32]*donburi.Entry, len(layout.Buttons))
	for _, b := range layout.Buttons {
		buttons[b.ID] = CreatePushButton(ecs, b.X, b.Y)
	}

	for _, s := range layout.Spawners {
		button, ok := buttons[s.ButtonID]
		template, ok2 := blocks[s.TemplateID]
		if !ok || !ok2 {
			log.Printf("Warning: spawner references missing objects (button %d, template %d)", s.ButtonID, s.TemplateID)
			continue
		}
		CreateSpawner(ecs, button, template)
	}

	for _, k := range layout.KillVolumes {
		CreateKillVolume(ecs, k.X, k.Y, k.W, k.H)
	}

	if m := layout.Metronome; m != nil {
		CreateMetronome(ecs, m.X, m.Y, m.W, m.H)
	}

	return layout.HandSpawn
}
