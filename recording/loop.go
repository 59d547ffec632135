package recording

import (
	"fmt"
	"math"
	"strings"
)

// LoopPolicy selects how the loop period of a recording is chosen.
type LoopPolicy int

const (
	// LoopFixed loops every recording on the same configured period.
	LoopFixed LoopPolicy = iota
	// LoopDerived loops on the recording's own span, rounded up to a
	// multiple of the base period so it stays in phase with other loops.
	LoopDerived
)

func (p LoopPolicy) String() string {
	switch p {
	case LoopFixed:
		return "fixed"
	case LoopDerived:
		return "derived"
	}
	return "unknown"
}

// ParseLoopPolicy accepts the names produced by LoopPolicy.String.
func ParseLoopPolicy(s string) (LoopPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed":
		return LoopFixed, nil
	case "derived":
		return LoopDerived, nil
	}
	return LoopFixed, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// LoopConfig describes the shared playback time base.
type LoopConfig struct {
	Policy LoopPolicy

	// Period is the loop length for LoopFixed, in seconds.
	Period float64

	// BasePeriod is the rounding unit for LoopDerived, in seconds.
	BasePeriod float64

	// Reference is the clock time at which every loop starts.
	Reference float64
}

// Validate fails for a period that would make the loop undefined.
func (c LoopConfig) Validate() error {
	switch c.Policy {
	case LoopFixed:
		if !validPeriod(c.Period) {
			return fmt.Errorf("%w: period %v", ErrInvalidPeriod, c.Period)
		}
	case LoopDerived:
		if !validPeriod(c.BasePeriod) {
			return fmt.Errorf("%w: base period %v", ErrInvalidPeriod, c.BasePeriod)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownPolicy, int(c.Policy))
	}
	if math.IsNaN(c.Reference) || math.IsInf(c.Reference, 0) {
		return fmt.Errorf("%w: reference %v", ErrInvalidPeriod, c.Reference)
	}
	return nil
}

func validPeriod(p float64) bool {
	return p > 0 && !math.IsInf(p, 0) && !math.IsNaN(p)
}

// BeatPeriod is the period of the shared beat: the fixed period, or the
// base period that derived loops are multiples of.
func (c LoopConfig) BeatPeriod() float64 {
	if c.Policy == LoopDerived {
		return c.BasePeriod
	}
	return c.Period
}

// PeriodFor returns the loop length used for rec.
func (c LoopConfig) PeriodFor(rec Recording) float64 {
	if c.Policy != LoopDerived {
		return c.Period
	}
	span := rec.Span()
	if span <= 0 {
		return c.BasePeriod
	}
	return math.Ceil(span/c.BasePeriod) * c.BasePeriod
}

// Progress is the position within the current beat, in [0, 1).
func (c LoopConfig) Progress(now float64) float64 {
	beat := c.BeatPeriod()
	if !validPeriod(beat) {
		return 0
	}
	return loopElapsed(now, c.Reference, beat) / beat
}

// loopElapsed folds now into [0, period) relative to reference.
func loopElapsed(now, reference, period float64) float64 {
	e := math.Mod(now-reference, period)
	if e < 0 {
		e += period
	}
	if e >= period {
		e = 0
	}
	return e
}
