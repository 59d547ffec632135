package recording

import "errors"

var (
	// ErrInvalidPeriod is returned for a loop period that is zero, negative
	// or not finite.
	ErrInvalidPeriod = errors.New("recording: loop period must be positive")

	// ErrTimestampOrder is returned when a snapshot would be older than the
	// one before it.
	ErrTimestampOrder = errors.New("recording: timestamps must not decrease")

	// ErrUnknownPolicy is returned when a loop policy name cannot be parsed.
	ErrUnknownPolicy = errors.New("recording: unknown loop policy")
)
