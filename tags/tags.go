package tags

import "github.com/yohamta/donburi"

var (
	Hand         = donburi.NewTag().SetName("Hand")
	LiveHand     = donburi.NewTag().SetName("LiveHand")
	Puppet       = donburi.NewTag().SetName("Puppet")
	Block        = donburi.NewTag().SetName("Block")
	GoalZone     = donburi.NewTag().SetName("GoalZone")
	PushButton   = donburi.NewTag().SetName("PushButton")
	Spawner      = donburi.NewTag().SetName("Spawner")
	KillVolume   = donburi.NewTag().SetName("KillVolume")
	Metronome    = donburi.NewTag().SetName("Metronome")
	Wall         = donburi.NewTag().SetName("Wall")
)

// Resolv tags for overlap checks
const (
	ResolvSolid        = "solid"
	ResolvHand         = "Hand"
	ResolvInteractable = "interactable"
	ResolvScoreBlock   = "score"
	ResolvButton       = "button"
	ResolvGoal         = "goal"
	ResolvKill         = "kill"
)
