package recording

import (
	"errors"
	"math"
	"testing"
)

func mustRecording(t *testing.T, ts ...float64) Recording {
	t.Helper()
	snaps := make([]Snapshot, len(ts))
	for i, v := range ts {
		snaps[i] = Snapshot{Pose: poseAt(float64(i)), Timestamp: v}
	}
	rec, err := NewRecording(snaps)
	if err != nil {
		t.Fatal(err)
	}
	return rec
}

func fixed(period float64) LoopConfig {
	return LoopConfig{Policy: LoopFixed, Period: period}
}

func TestResolveFixedPeriod(t *testing.T) {
	rec := mustRecording(t, 0, 1, 2)
	res, err := NewResolver(rec, fixed(2))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		now  float64
		want float64
	}{
		{0, 0},
		{0.5, 0},
		{1.0, 1},
		{1.5, 1},
		{1.9, 1},
		{2.0, 0},
		{2.5, 0},
		{3.5, 1},
		{4.0, 0},
		{-0.5, 1},
	}
	for _, tt := range tests {
		s, ok := res.Resolve(tt.now)
		if !ok {
			t.Fatalf("Resolve(%v) returned no snapshot", tt.now)
		}
		if s.Timestamp != tt.want {
			t.Errorf("Resolve(%v) = %v, want %v", tt.now, s.Timestamp, tt.want)
		}
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	rec := mustRecording(t, 0, 0.3, 0.7, 1.1)
	res, _ := NewResolver(rec, fixed(1.5))
	for _, now := range []float64{0.1, 0.8, 2.2, 17.3} {
		a, _ := res.Resolve(now)
		b, _ := res.Resolve(now)
		if a.Timestamp != b.Timestamp {
			t.Errorf("Resolve(%v) not repeatable: %v vs %v", now, a.Timestamp, b.Timestamp)
		}
	}
}

func TestResolveEmptyAndSingle(t *testing.T) {
	res, err := NewResolver(Recording{}, fixed(2))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.Resolve(1); ok {
		t.Error("empty recording should resolve to nothing")
	}

	single := mustRecording(t, 5)
	res, _ = NewResolver(single, fixed(2))
	for _, now := range []float64{0, 1.3, 99} {
		s, ok := res.Resolve(now)
		if !ok || s.Timestamp != 5 {
			t.Errorf("Resolve(%v) = %v, %v; want the single snapshot", now, s.Timestamp, ok)
		}
	}
}

func TestResolveOffsetRecording(t *testing.T) {
	// timestamps need not start at zero; the loop is anchored on the first
	rec := mustRecording(t, 10, 10.5, 11)
	res, _ := NewResolver(rec, fixed(2))
	s, _ := res.Resolve(0.6)
	if s.Timestamp != 10.5 {
		t.Errorf("got %v, want 10.5", s.Timestamp)
	}
	s, _ = res.Resolve(1.7)
	if s.Timestamp != 11 {
		t.Errorf("got %v, want 11", s.Timestamp)
	}
}

func TestResolveTiesPickLatest(t *testing.T) {
	rec := mustRecording(t, 0, 1, 1, 2)
	res, _ := NewResolver(rec, fixed(3))
	s, _ := res.Resolve(1)
	if s.Position.X() != 2 {
		t.Errorf("tie resolved to index %v, want 2", s.Position.X())
	}
}

func TestResolveInvalidPeriod(t *testing.T) {
	for _, p := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := NewResolver(Recording{}, fixed(p)); !errors.Is(err, ErrInvalidPeriod) {
			t.Errorf("period %v: err = %v, want ErrInvalidPeriod", p, err)
		}
	}
}

func TestResolveDerivedPeriod(t *testing.T) {
	cfg := LoopConfig{Policy: LoopDerived, BasePeriod: 2}
	rec := mustRecording(t, 0, 1, 2.5)
	res, err := NewResolver(rec, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if res.Period() != 4 {
		t.Fatalf("period = %v, want 4", res.Period())
	}
	s, _ := res.Resolve(3)
	if s.Timestamp != 2.5 {
		t.Errorf("Resolve(3) = %v, want 2.5", s.Timestamp)
	}
	s, _ = res.Resolve(4.2)
	if s.Timestamp != 0 {
		t.Errorf("Resolve(4.2) = %v, want 0", s.Timestamp)
	}

	res, _ = NewResolver(mustRecording(t, 3), cfg)
	if res.Period() != 2 {
		t.Errorf("zero span period = %v, want base 2", res.Period())
	}
}

func TestPlaybackRoundTrip(t *testing.T) {
	// record a session, then replay it on a period longer than its span:
	// every tick of the replay must land on the snapshot taken at that time
	r := NewRecorder(0)
	r.Toggle()
	const dt = 0.1
	for i := 0; i < 10; i++ {
		_ = r.Tick(poseAt(float64(i)), InputState{}, float64(i)*dt)
	}
	rec, _ := r.Toggle()

	clock := NewManualClock(0)
	pb, err := NewPlayback(rec, LoopConfig{Policy: LoopFixed, Period: 2}, clock)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		clock.Set(float64(i)*dt + dt/2)
		s, ok := pb.Advance()
		if !ok {
			t.Fatal("no cursor")
		}
		if s.Position.X() != float64(i) {
			t.Errorf("tick %d replayed snapshot %v", i, s.Position.X())
		}
		if c, _ := pb.Cursor(); c.Timestamp != s.Timestamp {
			t.Error("Cursor differs from Advance")
		}
	}
}
