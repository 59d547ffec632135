package systems

import (
	"github.com/automoto/puppethands/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession advances the shared clock by one tick.
// Must run FIRST in the system order.
func UpdateSession(ecs *ecs.ECS) {
	session, ok := GetSession(ecs.World)
	if !ok {
		return
	}
	session.Frame++
	session.Clock.Advance(session.Step)
}

// GetSession returns the singleton session, if the scene has one.
func GetSession(w donburi.World) (*components.SessionData, bool) {
	entry, ok := components.Session.First(w)
	if !ok {
		return nil, false
	}
	return components.Session.Get(entry), true
}
