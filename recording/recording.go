package recording

import (
	"encoding/json"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Recording is a sealed, ordered sequence of snapshots. The zero value is an
// empty recording. A Recording is never modified once built, so it can be
// shared between consumers.
type Recording struct {
	snapshots []Snapshot
}

// NewRecording copies snaps into a sealed recording. It fails if the
// timestamps decrease anywhere in the sequence.
func NewRecording(snaps []Snapshot) (Recording, error) {
	for i := 1; i < len(snaps); i++ {
		if snaps[i].Timestamp < snaps[i-1].Timestamp {
			return Recording{}, fmt.Errorf("%w: snapshot %d at %.6f follows %.6f",
				ErrTimestampOrder, i, snaps[i].Timestamp, snaps[i-1].Timestamp)
		}
	}
	out := make([]Snapshot, len(snaps))
	copy(out, snaps)
	return Recording{snapshots: out}, nil
}

// Len returns the number of snapshots.
func (r Recording) Len() int {
	return len(r.snapshots)
}

// Empty reports whether the recording holds no snapshots.
func (r Recording) Empty() bool {
	return len(r.snapshots) == 0
}

// At returns the i'th snapshot. It panics if i is out of range.
func (r Recording) At(i int) Snapshot {
	return r.snapshots[i]
}

// First returns the earliest snapshot.
func (r Recording) First() (Snapshot, bool) {
	if len(r.snapshots) == 0 {
		return Snapshot{}, false
	}
	return r.snapshots[0], true
}

// Last returns the latest snapshot.
func (r Recording) Last() (Snapshot, bool) {
	if len(r.snapshots) == 0 {
		return Snapshot{}, false
	}
	return r.snapshots[len(r.snapshots)-1], true
}

// Span is the time between the first and last snapshot.
func (r Recording) Span() float64 {
	if len(r.snapshots) < 2 {
		return 0
	}
	return r.snapshots[len(r.snapshots)-1].Timestamp - r.snapshots[0].Timestamp
}

// Snapshots returns a copy of the recorded sequence.
func (r Recording) Snapshots() []Snapshot {
	out := make([]Snapshot, len(r.snapshots))
	copy(out, r.snapshots)
	return out
}

// Positions returns the recorded path, used for drawing the trail.
func (r Recording) Positions() []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(r.snapshots))
	for i, s := range r.snapshots {
		out[i] = s.Position
	}
	return out
}

type recordingJSON struct {
	Snapshots []Snapshot `json:"snapshots"`
}

func (r Recording) MarshalJSON() ([]byte, error) {
	snaps := r.snapshots
	if snaps == nil {
		snaps = []Snapshot{}
	}
	return json.Marshal(recordingJSON{Snapshots: snaps})
}

func (r *Recording) UnmarshalJSON(data []byte) error {
	var raw recordingJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	rec, err := NewRecording(raw.Snapshots)
	if err != nil {
		return err
	}
	*r = rec
	return nil
}
