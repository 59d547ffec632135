// Package netconfig defines lightweight types shared between client and server
// for network serialization. It must have zero dependencies on ebiten or any
// graphics library so the dedicated server binary stays headless.
package netconfig

// ButtonID identifies a controller button.
type ButtonID int

const (
	ButtonNone ButtonID = iota
	ButtonTouchpad
	ButtonTrigger
	ButtonGrip
	ButtonSystem
	ButtonApplicationMenu
	ButtonA
	ButtonB
	ButtonX
	ButtonY
	ButtonCount // Must be last - used for array sizing
)

// ButtonToName maps ButtonID to the name used in logs and wire payloads.
var ButtonToName = map[ButtonID]string{
	ButtonNone:            "none",
	ButtonTouchpad:        "touchpad",
	ButtonTrigger:         "trigger",
	ButtonGrip:            "grip",
	ButtonSystem:          "system",
	ButtonApplicationMenu: "application_menu",
	ButtonA:               "a",
	ButtonB:               "b",
	ButtonX:               "x",
	ButtonY:               "y",
}

func (b ButtonID) String() string {
	if name, ok := ButtonToName[b]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether b can index a per-button array.
func (b ButtonID) Valid() bool {
	return b >= 0 && b < ButtonCount
}

// ButtonFromName is the inverse of ButtonID.String.
func ButtonFromName(name string) (ButtonID, bool) {
	for id, n := range ButtonToName {
		if n == name {
			return id, true
		}
	}
	return ButtonNone, false
}

// Hand kinds carried in NetHandPose.
const (
	HandLive   = 0
	HandPuppet = 1
)
