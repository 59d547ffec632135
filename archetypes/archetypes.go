package archetypes

import (
	"github.com/automoto/puppethands/components"
	cfg "github.com/automoto/puppethands/config"
	"github.com/automoto/puppethands/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	LiveHand = newArchetype(
		tags.Hand,
		tags.LiveHand,
		components.Hand,
		components.Pose,
		components.Object,
		components.LiveInput,
	)
	Puppet = newArchetype(
		tags.Hand,
		tags.Puppet,
		components.Hand,
		components.Pose,
		components.Object,
		components.Puppet,
	)
	Block = newArchetype(
		tags.Block,
		components.Interactable,
		components.Object,
	)
	GoalZone = newArchetype(
		tags.GoalZone,
		components.GoalZone,
		components.Object,
	)
	PushButton = newArchetype(
		tags.PushButton,
		components.PushButton,
		components.Object,
	)
	Spawner = newArchetype(
		tags.Spawner,
		components.Spawner,
	)
	KillVolume = newArchetype(
		tags.KillVolume,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Metronome = newArchetype(
		tags.Metronome,
		components.Metronome,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Session = newArchetype(
		components.Session,
	)
	ScreenLog = newArchetype(
		components.ScreenLog,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
