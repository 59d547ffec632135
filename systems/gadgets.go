package systems

import (
	"log"

	"github.com/automoto/puppethands/components"
	cfg "github.com/automoto/puppethands/config"
	"github.com/automoto/puppethands/shared/gamemath"
	"github.com/automoto/puppethands/systems/factory"
	"github.com/automoto/puppethands/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePushButtons presses a button while any hand overlapping it holds the
// push button, and derives the down/up edges for this tick. Released
// plungers tween back to rest.
func UpdatePushButtons(ecs *ecs.ECS) {
	session, ok := GetSession(ecs.World)
	if !ok {
		return
	}
	tags.PushButton.Each(ecs.World, func(e *donburi.Entry) {
		button := components.PushButton.Get(e)
		obj := components.Object.Get(e).Object

		pushed := false
		for _, h := range overlapping(obj, tags.ResolvHand) {
			if h.HasComponent(components.Hand) && components.Hand.Get(h).Device.IsPressed(cfg.Hand.PushButton) {
				pushed = true
				break
			}
		}

		button.WasPushed = button.IsPushed
		button.IsPushed = pushed
		button.ButtonDown = button.IsPushed && !button.WasPushed
		button.ButtonUp = !button.IsPushed && button.WasPushed

		switch {
		case button.IsPushed:
			button.Depth = cfg.PushButton.TravelDepth
			button.Return = nil
		case button.ButtonUp:
			button.Return = gween.New(float32(button.Depth), 0, float32(cfg.PushButton.ReturnSeconds), ease.OutQuad)
		}
		if button.Return != nil {
			depth, done := button.Return.Update(float32(session.Step))
			button.Depth = float64(depth)
			if done {
				button.Return = nil
			}
		}
	})
}

// UpdateSpawners duplicates each spawner's template when its button goes
// down. Must run AFTER UpdatePushButtons.
func UpdateSpawners(ecs *ecs.ECS) {
	var spawn []*donburi.Entry
	tags.Spawner.Each(ecs.World, func(e *donburi.Entry) {
		spawner := components.Spawner.Get(e)
		if spawner.Button == nil || !spawner.Button.Valid() {
			return
		}
		if !components.PushButton.Get(spawner.Button).ButtonDown {
			return
		}
		if spawner.Template == nil || !spawner.Template.Valid() {
			log.Printf("Warning: spawner template is gone, nothing to duplicate")
			return
		}
		spawn = append(spawn, spawner.Template)
	})
	for _, template := range spawn {
		factory.DuplicateBlock(ecs, template, cfg.Spawner.OffsetX, cfg.Spawner.OffsetY)
	}
}

// UpdateGoalZones scores score blocks entering a zone, decays the score
// while the zone is below target, and latches completion.
func UpdateGoalZones(ecs *ecs.ECS) {
	session, ok := GetSession(ecs.World)
	if !ok {
		return
	}
	tags.GoalZone.Each(ecs.World, func(e *donburi.Entry) {
		goal := components.GoalZone.Get(e)
		obj := components.Object.Get(e).Object

		inside := make(map[donburi.Entity]struct{}, len(goal.Inside))
		for _, b := range overlapping(obj, tags.ResolvScoreBlock) {
			inside[b.Entity()] = struct{}{}
			if _, was := goal.Inside[b.Entity()]; !was {
				goal.Total++
			}
		}
		goal.Inside = inside

		if goal.Complete {
			return
		}
		if goal.Total >= cfg.GoalZone.Target {
			goal.Complete = true
			goal.Decay = 0
			log.Printf("[goal] zone complete")
			return
		}
		stepGoalDecay(goal, session.Step)
	})
}

func stepGoalDecay(goal *components.GoalZoneData, dt float64) {
	if goal.Total <= 0 || cfg.GoalZone.DecaySeconds <= 0 {
		goal.Decay = 0
		return
	}
	goal.Decay += dt
	for goal.Decay >= cfg.GoalZone.DecaySeconds && goal.Total > 0 {
		goal.Decay -= cfg.GoalZone.DecaySeconds
		goal.Total--
	}
	if goal.Total == 0 {
		goal.Decay = 0
	}
}

// LitWalls is how many of the zone's wall segments show progress.
func LitWalls(goal *components.GoalZoneData) int {
	if goal.Total > cfg.GoalZone.Walls {
		return cfg.GoalZone.Walls
	}
	if goal.Total < 0 {
		return 0
	}
	return goal.Total
}

// UpdateKillVolumes destroys interactables that touch a kill volume.
func UpdateKillVolumes(ecs *ecs.ECS) {
	var doomed []*donburi.Entry
	tags.KillVolume.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e).Object
		doomed = append(doomed, overlapping(obj, tags.ResolvInteractable)...)
	})
	for _, e := range doomed {
		RemoveEntity(ecs, e)
	}
}

// UpdateBlocks runs the grow-in tween of freshly spawned blocks.
func UpdateBlocks(ecs *ecs.ECS) {
	session, ok := GetSession(ecs.World)
	if !ok {
		return
	}
	tags.Block.Each(ecs.World, func(e *donburi.Entry) {
		item := components.Interactable.Get(e)
		if item.Grow == nil {
			return
		}
		scale, done := item.Grow.Update(float32(session.Step))
		item.Scale = float64(scale)
		if done {
			item.Scale = 1
			item.Grow = nil
		}
	})
}

// UpdateMetronome follows the shared loop: the bar shrinks over each beat
// and warns near its end.
func UpdateMetronome(ecs *ecs.ECS) {
	session, ok := GetSession(ecs.World)
	if !ok {
		return
	}
	progress := session.Loop.Progress(session.Clock.Now())
	tags.Metronome.Each(ecs.World, func(e *donburi.Entry) {
		m := components.Metronome.Get(e)
		m.Progress = progress
		m.Scale = (1 - progress) * cfg.Metronome.MaxScale
		m.Warning = progress > cfg.Metronome.WarnAt
	})
}

// overlapping returns the entries whose objects carry tag and actually
// intersect obj.
func overlapping(obj *resolv.Object, tag string) []*donburi.Entry {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	var out []*donburi.Entry
	seen := make(map[donburi.Entity]bool)
	for _, other := range check.ObjectsByTags(tag) {
		entry, ok := other.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || seen[entry.Entity()] {
			continue
		}
		if gamemath.Overlaps(obj, other) {
			seen[entry.Entity()] = true
			out = append(out, entry)
		}
	}
	return out
}
