package systems

import (
	"math"

	"github.com/automoto/puppethands/components"
	cfg "github.com/automoto/puppethands/config"
	"github.com/automoto/puppethands/shared/gamemath"
	"github.com/automoto/puppethands/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGrab picks up, carries and drops interactables for every hand, live
// or puppet. The grab button going down takes the nearest interactable in
// reach, going up lets go. A hand can take an object from another hand.
func UpdateGrab(ecs *ecs.ECS) {
	tags.Hand.Each(ecs.World, func(e *donburi.Entry) {
		hand := components.Hand.Get(e)
		if hand.Holding != nil && !hand.Holding.Valid() {
			hand.Holding = nil
		}

		switch {
		case hand.Holding == nil && hand.Device.PressDown(cfg.Hand.GrabButton):
			if target := nearestInteractable(e); target != nil {
				grab(e, target)
			}
		case hand.Holding != nil && hand.Device.PressUp(cfg.Hand.GrabButton):
			release(e)
		}

		if hand.Holding != nil {
			carry(e)
		}
	})
}

func nearestInteractable(handEntry *donburi.Entry) *donburi.Entry {
	handObj := components.Object.Get(handEntry).Object
	check := handObj.Check(0, 0, tags.ResolvInteractable)
	if check == nil {
		return nil
	}

	reach := cfg.Hand.Size * cfg.Hand.Size
	var best *donburi.Entry
	bestDist := math.Inf(1)
	for _, obj := range check.ObjectsByTags(tags.ResolvInteractable) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		d := gamemath.DistanceSq(handObj, obj)
		if d <= reach && d < bestDist {
			best, bestDist = entry, d
		}
	}
	return best
}

func grab(handEntry, target *donburi.Entry) {
	item := components.Interactable.Get(target)
	if item.HeldBy != nil && item.HeldBy.Valid() {
		release(item.HeldBy)
	}

	hand := components.Hand.Get(handEntry)
	pose := components.Pose.Get(handEntry)
	tx, ty := gamemath.Center(components.Object.Get(target).Object)

	// offset kept in the hand's frame so the object turns with the hand
	world := mgl64.Vec3{tx, ty, 0}.Sub(pose.Position)
	hand.GrabOffset = pose.Rotation.Inverse().Rotate(world)
	hand.Holding = target
	item.HeldBy = handEntry
}

// release drops whatever the hand holds.
func release(handEntry *donburi.Entry) {
	hand := components.Hand.Get(handEntry)
	if hand.Holding != nil && hand.Holding.Valid() && hand.Holding.HasComponent(components.Interactable) {
		components.Interactable.Get(hand.Holding).HeldBy = nil
	}
	hand.Holding = nil
	hand.GrabOffset = mgl64.Vec3{}
}

func carry(handEntry *donburi.Entry) {
	hand := components.Hand.Get(handEntry)
	pose := components.Pose.Get(handEntry)
	target := pose.Position.Add(pose.Rotation.Rotate(hand.GrabOffset))
	moveObject(hand.Holding, target.X(), target.Y())
}

func moveObject(e *donburi.Entry, x, y float64) {
	gamemath.MoveCenter(components.Object.Get(e).Object, x, y)
}
