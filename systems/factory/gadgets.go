package factory

import (
	"github.com/automoto/puppethands/archetypes"
	"github.com/automoto/puppethands/components"
	cfg "github.com/automoto/puppethands/config"
	"github.com/automoto/puppethands/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateGoalZone(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	goal := archetypes.GoalZone.Spawn(ecs)
	attach(ecs, goal, newBox(x, y, w, h, tags.ResolvGoal))
	components.GoalZone.SetValue(goal, components.GoalZoneData{
		Inside: make(map[donburi.Entity]struct{}),
	})
	return goal
}

func CreatePushButton(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	button := archetypes.PushButton.Spawn(ecs)
	size := cfg.PushButton.Size
	attach(ecs, button, newBox(x, y, size, size, tags.ResolvButton))
	return button
}

func CreateSpawner(ecs *ecs.ECS, button, template *donburi.Entry) *donburi.Entry {
	spawner := archetypes.Spawner.Spawn(ecs)
	components.Spawner.SetValue(spawner, components.SpawnerData{
		Button:   button,
		Template: template,
	})
	return spawner
}

func CreateMetronome(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	metronome := archetypes.Metronome.Spawn(ecs)
	attach(ecs, metronome, newBox(x, y, w, h))
	components.Metronome.SetValue(metronome, components.MetronomeData{
		Scale: cfg.Metronome.MaxScale,
	})
	return metronome
}
