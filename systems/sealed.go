package systems

import (
	"log"

	"github.com/automoto/puppethands/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSealedRecordings hands each newly sealed recording to the session's
// sinks, then clears the event. Must run AFTER UpdateRecording.
func UpdateSealedRecordings(ecs *ecs.ECS) {
	session, ok := GetSession(ecs.World)
	if !ok {
		return
	}

	var events []*donburi.Entry
	for e := range components.SealedEvent.Iter(ecs.World) {
		events = append(events, e)
	}

	for _, e := range events {
		evt := components.SealedEvent.Get(e)
		for _, sink := range session.Sinks {
			if err := sink.Save(evt.ID, evt.Recording); err != nil {
				log.Printf("Warning: could not store recording %s: %v", evt.ID, err)
			}
		}
		donburi.Remove[components.SealedEventData](e, components.SealedEvent)
	}
}
