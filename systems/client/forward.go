package client

import (
	"log"

	"github.com/automoto/puppethands/recording"
	"github.com/yohamta/donburi/ecs"
)

// InputSender forwards one tick of controller state to a puppet server.
type InputSender interface {
	SendInput(in recording.InputState) error
}

// NewForwardInput polls the local controller like UpdateControllerInput and
// also forwards the sampled state, so the server's copy of the hand moves
// with the local one.
func NewForwardInput(sender InputSender) ecs.System {
	return func(ecs *ecs.ECS) {
		UpdateControllerInput(ecs)

		ctrl := localController(ecs.World)
		if ctrl == nil {
			return
		}
		if err := sender.SendInput(ctrl.Sample()); err != nil {
			log.Printf("Warning: input not forwarded: %v", err)
		}
	}
}
