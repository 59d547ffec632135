package recording

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Recorder samples a live controller once per tick while recording is
// enabled and seals the result when recording is switched off.
type Recorder struct {
	recording bool
	buf       *snapshotRing
}

// NewRecorder returns an idle recorder. A capacity above zero bounds the
// session to the most recent capacity snapshots; zero leaves it unbounded.
func NewRecorder(capacity int) *Recorder {
	return &Recorder{buf: newSnapshotRing(capacity)}
}

// IsRecording reports whether Tick currently appends snapshots.
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// Len is the number of snapshots captured in the current session.
func (r *Recorder) Len() int {
	return r.buf.len()
}

// Toggle flips recording on or off. Switching off seals the captured
// snapshots into a Recording, returned with ok set, and empties the buffer
// for the next session. Switching on starts from an empty buffer.
func (r *Recorder) Toggle() (rec Recording, ok bool) {
	r.recording = !r.recording
	if r.recording {
		r.buf.reset()
		return Recording{}, false
	}
	rec = Recording{snapshots: r.buf.ordered()}
	r.buf.reset()
	return rec, true
}

// Tick appends one snapshot when recording. Samples older than the previous
// one are rejected.
func (r *Recorder) Tick(pose Pose, input InputState, now float64) error {
	if !r.recording {
		return nil
	}
	if last, ok := r.buf.last(); ok && now < last.Timestamp {
		return fmt.Errorf("%w: %.6f after %.6f", ErrTimestampOrder, now, last.Timestamp)
	}
	r.buf.push(Snapshot{Pose: pose, Timestamp: now, InputState: input})
	return nil
}

// Path returns the positions captured so far in this session.
func (r *Recorder) Path() []mgl64.Vec3 {
	snaps := r.buf.ordered()
	out := make([]mgl64.Vec3, len(snaps))
	for i, s := range snaps {
		out[i] = s.Position
	}
	return out
}
