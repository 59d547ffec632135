package recording

import (
	"github.com/automoto/puppethands/shared/netconfig"
	"github.com/go-gl/mathgl/mgl64"
)

// Device is the query surface of a hand controller. Interaction code reads
// buttons only through this interface so it runs the same against live
// hardware and recorded playback.
type Device interface {
	Name() string

	// IsPressed is true whenever the button is held down.
	IsPressed(b netconfig.ButtonID) bool
	// PressDown is true only on the tick the button goes down.
	PressDown(b netconfig.ButtonID) bool
	// PressUp is true only on the tick the button is released.
	PressUp(b netconfig.ButtonID) bool

	IsTouched(b netconfig.ButtonID) bool
	TouchDown(b netconfig.ButtonID) bool
	TouchUp(b netconfig.ButtonID) bool

	IsNearTouched(b netconfig.ButtonID) bool
	NearTouchDown(b netconfig.ButtonID) bool
	NearTouchUp(b netconfig.ButtonID) bool

	// Axis is the 2D analog value, generally the touchpad.
	Axis(b netconfig.ButtonID) mgl64.Vec2
	// Axis1D is the x component of Axis; the trigger reports here.
	Axis1D(b netconfig.ButtonID) float64
}

// SyntheticDevice answers Device queries from playback instead of hardware.
// It keeps the cursor snapshot of the current and the previous tick and
// derives press and touch edges by comparing the two.
type SyntheticDevice struct {
	name   string
	source CursorSource

	current     Snapshot
	hasCurrent  bool
	previous    Snapshot
	hasPrevious bool

	tick    uint64
	started bool
}

func NewSyntheticDevice(name string, source CursorSource) *SyntheticDevice {
	return &SyntheticDevice{name: name, source: source}
}

// Update shifts the current snapshot into previous and fetches a new one
// from the source. It does so at most once per tick: repeated calls with
// the same tick, or with an older one, change nothing.
func (d *SyntheticDevice) Update(tick uint64) {
	if d.started && tick <= d.tick {
		return
	}
	d.previous, d.hasPrevious = d.current, d.hasCurrent
	d.current, d.hasCurrent = d.source.Cursor()
	d.tick = tick
	d.started = true
}

// Tick is the tick of the last accepted Update.
func (d *SyntheticDevice) Tick() uint64 {
	return d.tick
}

// Current returns the snapshot fetched on the last Update.
func (d *SyntheticDevice) Current() (Snapshot, bool) {
	return d.current, d.hasCurrent
}

func (d *SyntheticDevice) Name() string {
	return d.name
}

func (d *SyntheticDevice) IsPressed(b netconfig.ButtonID) bool {
	return d.hasCurrent && b.Valid() && d.current.Pressed[b]
}

func (d *SyntheticDevice) wasPressed(b netconfig.ButtonID) bool {
	return d.hasPrevious && b.Valid() && d.previous.Pressed[b]
}

func (d *SyntheticDevice) PressDown(b netconfig.ButtonID) bool {
	return d.IsPressed(b) && !d.wasPressed(b)
}

func (d *SyntheticDevice) PressUp(b netconfig.ButtonID) bool {
	return !d.IsPressed(b) && d.wasPressed(b)
}

func (d *SyntheticDevice) IsTouched(b netconfig.ButtonID) bool {
	return d.hasCurrent && b.Valid() && d.current.Touched[b]
}

func (d *SyntheticDevice) wasTouched(b netconfig.ButtonID) bool {
	return d.hasPrevious && b.Valid() && d.previous.Touched[b]
}

func (d *SyntheticDevice) TouchDown(b netconfig.ButtonID) bool {
	return d.IsTouched(b) && !d.wasTouched(b)
}

func (d *SyntheticDevice) TouchUp(b netconfig.ButtonID) bool {
	return !d.IsTouched(b) && d.wasTouched(b)
}

// Recordings carry no near-touch data.
func (d *SyntheticDevice) IsNearTouched(netconfig.ButtonID) bool { return false }
func (d *SyntheticDevice) NearTouchDown(netconfig.ButtonID) bool { return false }
func (d *SyntheticDevice) NearTouchUp(netconfig.ButtonID) bool   { return false }

func (d *SyntheticDevice) Axis(b netconfig.ButtonID) mgl64.Vec2 {
	if !d.hasCurrent || !b.Valid() {
		return mgl64.Vec2{}
	}
	return d.current.Axis[b]
}

func (d *SyntheticDevice) Axis1D(b netconfig.ButtonID) float64 {
	return d.Axis(b).X()
}
