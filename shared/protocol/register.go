package protocol

import (
	"github.com/automoto/puppethands/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetHandPose uint = 10
	SyncIDNetBlock    uint = 11
	SyncIDNetGoalZone uint = 12
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetHandPose uint8 = 10
	InterpIDNetBlock    uint8 = 11
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetHandPose,
		netcomponents.NetHandPoseData{},
		netcomponents.NetHandPose,
		esync.WithInterpFn(InterpIDNetHandPose, netcomponents.LerpNetHandPose),
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetBlock,
		netcomponents.NetBlockData{},
		netcomponents.NetBlock,
		esync.WithInterpFn(InterpIDNetBlock, netcomponents.LerpNetBlock),
	); err != nil {
		return err
	}

	// GoalZone: no interpolation (discrete score)
	if err := esync.RegisterComponent(
		SyncIDNetGoalZone,
		netcomponents.NetGoalZoneData{},
		netcomponents.NetGoalZone,
	); err != nil {
		return err
	}

	return nil
}
