package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// InteractableData marks something hands can pick up
type InteractableData struct {
	Score  bool           // counts toward goal zones
	HeldBy *donburi.Entry // hand holding it, nil when free
	Scale  float64        // draw scale, 1 once fully grown
	Grow   *gween.Tween   // nil once grown
}

var Interactable = donburi.NewComponentType[InteractableData]()

type GoalZoneData struct {
	Total    int
	Decay    float64 // seconds accumulated toward the next decay step
	Complete bool
	Inside   map[donburi.Entity]struct{} // score blocks overlapping last tick
}

var GoalZone = donburi.NewComponentType[GoalZoneData]()

type PushButtonData struct {
	WasPushed  bool
	IsPushed   bool
	ButtonDown bool // became pushed this tick
	ButtonUp   bool // released this tick
	Depth      float64
	Return     *gween.Tween // plunger travel back to rest
}

var PushButton = donburi.NewComponentType[PushButtonData]()

// SpawnerData duplicates Template each time Button goes down
type SpawnerData struct {
	Button   *donburi.Entry
	Template *donburi.Entry
}

var Spawner = donburi.NewComponentType[SpawnerData]()

type MetronomeData struct {
	Progress float64 // position within the beat, [0, 1)
	Scale    float64
	Warning  bool
}

var Metronome = donburi.NewComponentType[MetronomeData]()
