// Package composite rounds a combined date+time value: it applies a
// rounding duration (or an ordered list of them) to a sandwich value,
// sequencing time rounding — carrying into the date on overflow — then
// date rounding, while preserving the sandwich's flags verbatim.
package composite

import (
	"github.com/dround/dround/internal/calendar"
	"github.com/dround/dround/internal/roundate"
	"github.com/dround/dround/internal/roundtime"
)

// Sandwich is a combined date+time value: a date and a time-of-day, each
// possibly absent, plus the parser's clamp flag and an opaque zone offset
// that rounding never interprets, only carries. HasZone distinguishes "no
// zone was ever attached" from "the zone offset is 0 minutes" (UTC).
type Sandwich struct {
	Date              calendar.Value
	Time              calendar.TimeOfDay
	HasDate           bool
	HasTime           bool
	FixFlag           bool
	HasZone           bool
	ZoneOffsetMinutes int
}

// Round applies a single rounding duration d to s: if d is a
// time duration, round s.Time and fold any carry into s.Date via the
// date-add primitive; then run the date rounder (a no-op for time
// durations, since roundate.Round dispatches only on d's own tag). All
// sandwich flags other than Date/Time are preserved verbatim.
func Round(s Sandwich, d calendar.Duration, nextp bool) Sandwich {
	out := s
	if d.Tag.IsTimeDuration() {
		t2, carry := roundtime.Round(s.Time, d, nextp)
		out.Time = t2
		if carry != 0 {
			out.Date = calendar.AddDays(out.Date, carry)
		}
	}
	out.Date = roundate.Round(out.Date, d, nextp)
	return out
}

// RoundList left-folds Round over ds, in caller-given order. The order is
// significant and non-commutative: rounding to the next Monday and then
// the next 15-minute mark is not the same as the reverse.
func RoundList(s Sandwich, ds []calendar.Duration, nextp bool) Sandwich {
	for _, d := range ds {
		s = Round(s, d, nextp)
	}
	return s
}
