package factory

import (
	"github.com/automoto/puppethands/archetypes"
	"github.com/automoto/puppethands/components"
	cfg "github.com/automoto/puppethands/config"
	"github.com/automoto/puppethands/recording"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession creates the singleton time base. The clock starts at the
// loop reference so every puppet and the metronome begin on the beat.
func CreateSession(ecs *ecs.ECS, step float64, loop recording.LoopConfig, sinks ...components.RecordingSink) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		Clock: recording.NewManualClock(loop.Reference),
		Step:  step,
		Loop:  loop,
		Sinks: sinks,
	})
	return session
}

func CreateScreenLog(ecs *ecs.ECS) *donburi.Entry {
	screenLog := archetypes.ScreenLog.Spawn(ecs)
	components.ScreenLog.SetValue(screenLog, components.ScreenLogData{
		RowLog: components.NewRowLog(cfg.ScreenLog.TotalRows),
	})
	return screenLog
}
