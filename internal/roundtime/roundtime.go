// Package roundtime rounds a clock time to a multiple of an hour/minute/
// second grain, reporting a day carry of -1, 0, or +1 when the rounded
// value crosses midnight.
package roundtime

import "github.com/dround/dround/internal/calendar"

// Round snaps t to the nearest boundary implied by d (an hour/minute/
// second/nanosecond grain), biased to the next boundary when nextp is
// true. If d is not a time duration, t is returned unchanged with carry 0.
//
// The algorithm reduces d to a signed number of nanoseconds modulo a full
// day, then finds the distance from t back to the most recent multiple of
// that grain. A positive grain always advances to the next multiple
// (ceiling), except when t already sits exactly on one and nextp is false,
// in which case it is an identity. A negative grain always floors to the
// previous multiple, moving back one extra grain only when nextp forces it.
// One code path covers both: the result always differs from the input by
// at most one grain step and lands on an exact multiple of the grain.
func Round(t calendar.TimeOfDay, d calendar.Duration, nextp bool) (calendar.TimeOfDay, int) {
	if !d.Tag.IsTimeDuration() {
		return t, 0
	}

	const dayNanos = int64(86400) * 1_000_000_000
	sdur := grainNanos(d) % dayNanos
	if sdur == 0 {
		return t, 0
	}

	tunp := int64(t.H)*3600_000_000_000 + int64(t.M)*60_000_000_000 + int64(t.S)*1_000_000_000 + int64(t.Ns)

	// tunp is always in [0, dayNanos), so Go's truncating % already leaves
	// diff in [0, |sdur|) regardless of sdur's sign.
	diff := tunp % sdur

	if sdur > 0 && diff == 0 && t.Ns == 0 && !nextp {
		return t, 0
	}

	tunpPrime := tunp - diff
	if sdur > 0 || nextp {
		tunpPrime += sdur
	}

	carry := 0
	if tunpPrime < 0 {
		tunpPrime += dayNanos
		carry = -1
	} else if tunpPrime >= dayNanos {
		tunpPrime -= dayNanos
		carry = 1
	}

	h := int(tunpPrime / 3600_000_000_000)
	rem := tunpPrime % 3600_000_000_000
	m := int(rem / 60_000_000_000)
	rem %= 60_000_000_000
	s := int(rem / 1_000_000_000)

	return calendar.TimeOfDay{H: h, M: m, S: s, Ns: 0}, carry
}

// grainNanos reduces d to a signed nanosecond grain, preserving the sign of
// DV as the rounding direction.
func grainNanos(d calendar.Duration) int64 {
	switch d.Tag {
	case calendar.DurHour:
		return d.DV * 3600_000_000_000
	case calendar.DurMinute:
		return d.DV * 60_000_000_000
	case calendar.DurSecond:
		return d.DV * 1_000_000_000
	case calendar.DurNano:
		return d.DV
	default:
		return 0
	}
}

