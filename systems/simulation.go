package systems

import "github.com/yohamta/donburi/ecs"

// AddSimulationSystems registers the headless simulation in tick order.
// input applies this tick's controller state to live hands; the demo client
// polls the keyboard, the server drains network frames.
func AddSimulationSystems(e *ecs.ECS, input ecs.System) {
	e.AddSystem(UpdateSession)
	e.AddSystem(input)
	e.AddSystem(UpdateHandMotion)
	e.AddSystem(UpdateRecording)
	e.AddSystem(UpdatePlayback)
	e.AddSystem(UpdateSyntheticInput)
	e.AddSystem(UpdatePuppetRemoval)
	e.AddSystem(UpdateGrab)
	e.AddSystem(UpdatePushButtons)
	e.AddSystem(UpdateSpawners)
	e.AddSystem(UpdateBlocks)
	e.AddSystem(UpdateGoalZones)
	e.AddSystem(UpdateKillVolumes)
	e.AddSystem(UpdateMetronome)
	e.AddSystem(UpdateSealedRecordings)
	e.AddSystem(UpdateObjects)
}
