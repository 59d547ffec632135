package recording

// snapshotRing buffers snapshots for the recorder. With a capacity of zero
// it grows without bound; otherwise the oldest snapshot is overwritten once
// the buffer is full.
type snapshotRing struct {
	capacity int
	buf      []Snapshot
	start    int
}

func newSnapshotRing(capacity int) *snapshotRing {
	if capacity < 0 {
		capacity = 0
	}
	return &snapshotRing{capacity: capacity}
}

func (r *snapshotRing) push(s Snapshot) {
	if r.capacity == 0 || len(r.buf) < r.capacity {
		r.buf = append(r.buf, s)
		return
	}
	r.buf[r.start] = s
	r.start = (r.start + 1) % r.capacity
}

func (r *snapshotRing) len() int {
	return len(r.buf)
}

func (r *snapshotRing) last() (Snapshot, bool) {
	if len(r.buf) == 0 {
		return Snapshot{}, false
	}
	idx := r.start - 1
	if idx < 0 {
		idx = len(r.buf) - 1
	}
	return r.buf[idx], true
}

// ordered returns a copy of the buffer, oldest first.
func (r *snapshotRing) ordered() []Snapshot {
	out := make([]Snapshot, 0, len(r.buf))
	out = append(out, r.buf[r.start:]...)
	out = append(out, r.buf[:r.start]...)
	return out
}

func (r *snapshotRing) reset() {
	r.buf = nil
	r.start = 0
}
