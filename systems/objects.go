package systems

import (
	"github.com/automoto/puppethands/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}

// RemoveEntity takes an entity out of the space and the world, releasing
// anything it holds or is held by.
func RemoveEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Hand) {
		release(e)
	}
	if e.HasComponent(components.Interactable) {
		item := components.Interactable.Get(e)
		if item.HeldBy != nil && item.HeldBy.Valid() {
			release(item.HeldBy)
		}
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if spaceEntry, ok := components.Space.First(ecs.World); ok && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
