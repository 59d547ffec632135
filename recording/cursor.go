package recording

import "sort"

// Resolver picks the active snapshot of a recording for a point in time,
// looping the recording continuously. Its result depends only on the
// recording and the time passed in.
type Resolver struct {
	rec       Recording
	period    float64
	reference float64
}

// NewResolver validates cfg and binds it to rec.
func NewResolver(rec Recording, cfg LoopConfig) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{
		rec:       rec,
		period:    cfg.PeriodFor(rec),
		reference: cfg.Reference,
	}, nil
}

// Recording returns the recording being resolved.
func (r *Resolver) Recording() Recording {
	return r.rec
}

// Period is the loop length in effect for this recording.
func (r *Resolver) Period() float64 {
	return r.period
}

// Resolve returns the latest snapshot not after the looped position of now.
// It returns false for an empty recording.
func (r *Resolver) Resolve(now float64) (Snapshot, bool) {
	snaps := r.rec.snapshots
	if len(snaps) == 0 {
		return Snapshot{}, false
	}
	target := snaps[0].Timestamp + loopElapsed(now, r.reference, r.period)

	// first snapshot strictly after target; the one before it is the cursor
	i := sort.Search(len(snaps), func(i int) bool {
		return snaps[i].Timestamp > target
	})
	if i == 0 {
		return snaps[0], true
	}
	return snaps[i-1], true
}

// CursorSource is anything that can report the current playback snapshot.
type CursorSource interface {
	Cursor() (Snapshot, bool)
}

// Playback resolves a recording against a clock once per tick and caches
// the result for the rest of the tick.
type Playback struct {
	resolver *Resolver
	clock    Clock

	cursor Snapshot
	ok     bool
}

// NewPlayback builds a playback consumer for a sealed recording.
func NewPlayback(rec Recording, cfg LoopConfig, clock Clock) (*Playback, error) {
	res, err := NewResolver(rec, cfg)
	if err != nil {
		return nil, err
	}
	return &Playback{resolver: res, clock: clock}, nil
}

// Advance recomputes the cursor from the clock.
func (p *Playback) Advance() (Snapshot, bool) {
	p.cursor, p.ok = p.resolver.Resolve(p.clock.Now())
	return p.cursor, p.ok
}

// Cursor returns the snapshot computed by the last Advance.
func (p *Playback) Cursor() (Snapshot, bool) {
	return p.cursor, p.ok
}

// Resolver exposes the underlying resolver.
func (p *Playback) Resolver() *Resolver {
	return p.resolver
}
