// Package zone provides a thin zone-offset attach/detach helper: the
// rounding core only ever sees an opaque offset in minutes, carried
// unchanged through a sandwich value; this package is where that offset is
// produced from (and re-attached to) a real IANA zone name.
package zone

import (
	"fmt"
	"time"
)

// Validate reports an error if name cannot be resolved as an IANA zone. An
// empty name is always valid (no --from-zone given). It is meant to be
// called once at startup so a bad --from-zone fails fast rather than on
// the first matched value.
func Validate(name string) error {
	if name == "" {
		return nil
	}
	_, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("zone %q: %w", name, err)
	}
	return nil
}

// OffsetMinutes returns the UTC offset, in minutes, that the named zone
// observes at instant t. An empty name means UTC (offset 0).
func OffsetMinutes(name string, t time.Time) (int, error) {
	if name == "" {
		return 0, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return 0, fmt.Errorf("zone %q: %w", name, err)
	}
	_, offsetSec := t.In(loc).Zone()
	return offsetSec / 60, nil
}

// Forget detaches a sandwich value from its originating zone rule by
// freezing it to a fixed offset. It is a pure bookkeeping step: the
// minutes value itself is untouched, only documented as no-longer-tied to
// a mutable rule.
func Forget(offsetMinutes int) int {
	return offsetMinutes
}
