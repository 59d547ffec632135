package config

import "github.com/automoto/puppethands/shared/netconfig"

// Type alias so scene code can keep using config.ButtonID.
type ButtonID = netconfig.ButtonID

// Re-export button constants.
const (
	ButtonNone            = netconfig.ButtonNone
	ButtonTouchpad        = netconfig.ButtonTouchpad
	ButtonTrigger         = netconfig.ButtonTrigger
	ButtonGrip            = netconfig.ButtonGrip
	ButtonSystem          = netconfig.ButtonSystem
	ButtonApplicationMenu = netconfig.ButtonApplicationMenu
	ButtonA               = netconfig.ButtonA
	ButtonB               = netconfig.ButtonB
	ButtonX               = netconfig.ButtonX
	ButtonY               = netconfig.ButtonY
	ButtonCount           = netconfig.ButtonCount
)
