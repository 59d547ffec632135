package components

import (
	"github.com/automoto/puppethands/recording"
	"github.com/yohamta/donburi"
)

// RecordingSink stores sealed recordings outside the scene.
type RecordingSink interface {
	Save(id string, rec recording.Recording) error
}

// SessionData is the singleton time base shared by every hand and gadget.
type SessionData struct {
	Clock *recording.ManualClock
	Step  float64 // seconds per tick
	Frame uint64
	Loop  recording.LoopConfig
	Sinks []RecordingSink
}

var Session = donburi.NewComponentType[SessionData]()
