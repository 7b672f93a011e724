package roundtime

import (
	"testing"

	"github.com/dround/dround/internal/calendar"
)

func mkT(h, m, s int) calendar.TimeOfDay { return calendar.TimeOfDay{H: h, M: m, S: s} }

func TestRound_FifteenMinuteGrain_FloorOnNegativeDV(t *testing.T) {
	// a negative grain always floors to the previous boundary.
	d := calendar.Duration{Tag: calendar.DurMinute, DV: -15}
	got, carry := Round(mkT(12, 17, 33), d, false)
	want := mkT(12, 15, 0)
	if got != want || carry != 0 {
		t.Errorf("got (%v, %d), want (%v, 0)", got, carry, want)
	}
}

func TestRound_FifteenMinuteGrain_NextBoundary(t *testing.T) {
	// a positive grain always advances to the next boundary.
	d := calendar.Duration{Tag: calendar.DurMinute, DV: 15}
	got, carry := Round(mkT(12, 17, 33), d, false)
	want := mkT(12, 30, 0)
	if got != want || carry != 0 {
		t.Errorf("got (%v, %d), want (%v, 0)", got, carry, want)
	}
}

func TestRound_CarryIntoNextDay(t *testing.T) {
	// rounding 23:58:00 to the next 5-minute mark carries into the next day.
	d := calendar.Duration{Tag: calendar.DurMinute, DV: 5}
	got, carry := Round(mkT(23, 58, 0), d, false)
	want := mkT(0, 0, 0)
	if got != want || carry != 1 {
		t.Errorf("got (%v, %d), want (%v, 1)", got, carry, want)
	}
}

func TestRound_IdempotentOnBoundary(t *testing.T) {
	d := calendar.Duration{Tag: calendar.DurMinute, DV: 15}
	got, carry := Round(mkT(12, 30, 0), d, false)
	want := mkT(12, 30, 0)
	if got != want || carry != 0 {
		t.Errorf("already-on-boundary round should be identity: got (%v, %d)", got, carry)
	}
}

func TestRound_NextForcesAdvanceOnBoundary(t *testing.T) {
	d := calendar.Duration{Tag: calendar.DurMinute, DV: 15}
	got, _ := Round(mkT(12, 30, 0), d, true)
	want := mkT(12, 45, 0)
	if got != want {
		t.Errorf("--next on exact boundary should still advance: got %v, want %v", got, want)
	}
}

func TestRound_NonTimeDurationIsNoop(t *testing.T) {
	d := calendar.Duration{Tag: calendar.DurDay, DV: 31}
	in := mkT(9, 30, 0)
	got, carry := Round(in, d, false)
	if got != in || carry != 0 {
		t.Errorf("non-time duration must be a no-op: got (%v, %d)", got, carry)
	}
}

func TestRound_ZeroGrainIsNoop(t *testing.T) {
	d := calendar.Duration{Tag: calendar.DurMinute, DV: 0}
	in := mkT(9, 30, 0)
	got, carry := Round(in, d, true)
	if got != in || carry != 0 {
		t.Errorf("zero grain must be a no-op: got (%v, %d)", got, carry)
	}
}

func TestRound_HourGrain(t *testing.T) {
	d := calendar.Duration{Tag: calendar.DurHour, DV: 1}
	got, _ := Round(mkT(13, 45, 0), d, false)
	if want := mkT(14, 0, 0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRound_SecondGrainWithNanos(t *testing.T) {
	in := calendar.TimeOfDay{H: 1, M: 0, S: 0, Ns: 500}
	d := calendar.Duration{Tag: calendar.DurSecond, DV: 1}
	got, carry := Round(in, d, false)
	// exactly on the second boundary, but Ns != 0, so it is not "already
	// exactly on a boundary" and still advances one grain forward.
	if want := mkT(1, 0, 1); got != want || carry != 0 {
		t.Errorf("got (%v, %d), want (%v, 0)", got, carry, want)
	}
}
