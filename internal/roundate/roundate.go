// Package roundate rounds a calendar date to a duration target under its
// current representation, choosing the month/year adjustment by direction
// and nextp.
package roundate

import "github.com/dround/dround/internal/calendar"

// Round dispatches on d's tag and rounds v in place, preserving v's
// representation tag. Any (tag, representation) combination the duration
// doesn't apply to is returned unchanged — the rounder is total and never
// errors.
func Round(v calendar.Value, d calendar.Duration, nextp bool) calendar.Value {
	switch d.Tag {
	case calendar.DurDay:
		return roundDay(v, d, nextp)
	case calendar.DurBizda:
		return roundBizda(v, d, nextp)
	case calendar.DurWeek:
		return roundWeek(v, d, nextp)
	case calendar.DurYMD:
		return roundYMD(v, d, nextp)
	case calendar.DurYMCW:
		return roundYMCW(v, d, nextp)
	default:
		return v
	}
}

// advance is the shared four-branch control flow for deciding a rounding
// step: given the current position cur against target tgt (with direction
// forw), decide whether a month/period change is needed, returning
// (needsChange, identity) where identity means "already on the target and
// !nextp".
func advance(cur, tgt int, forw, nextp bool) (change bool, identity bool) {
	if (forw && cur < tgt) || (!forw && cur > tgt) {
		return false, false
	}
	if cur == tgt && !nextp {
		return false, true
	}
	return true, false
}

func roundDay(v calendar.Value, d calendar.Duration, nextp bool) calendar.Value {
	if v.Tag != calendar.YMD {
		return v
	}
	tgt := absInt(int(d.DV))
	forw := d.DV > 0
	change, identity := advance(v.D, tgt, forw, nextp)
	if identity {
		return v
	}
	y, m := v.Y, v.M
	if change {
		if forw {
			m++
			if m > 12 {
				m = 1
				y++
			}
		} else {
			m--
			if m < 1 {
				m = 12
				y--
			}
		}
	}
	return calendar.NewYMD(y, m, minInt(tgt, calendar.Ultimo(y, m)))
}

func roundBizda(v calendar.Value, d calendar.Duration, nextp bool) calendar.Value {
	if v.Tag != calendar.Bizda {
		return v
	}
	tgt := absInt(int(d.DV))
	forw := d.DV > 0
	change, identity := advance(v.BD, tgt, forw, nextp)
	if identity {
		return v
	}
	y, m := v.Y, v.M
	if change {
		if forw {
			m++
			if m > 12 {
				m = 1
				y++
			}
		} else {
			m--
			if m < 1 {
				m = 12
				y--
			}
		}
	}
	return calendar.NewBizda(y, m, minInt(tgt, calendar.BdaysInMonth(y, m)))
}

func roundWeek(v calendar.Value, d calendar.Duration, nextp bool) calendar.Value {
	if v.Tag != calendar.YWD {
		return v
	}
	tgt := absInt(int(d.DV))
	forw := d.DV > 0
	change, identity := advance(v.C, tgt, forw, nextp)
	if identity {
		return v
	}
	y := v.Y
	if change {
		if forw {
			y++
		} else {
			y--
		}
	}
	return calendar.NewYWD(y, minInt(tgt, calendar.IsoWeeksInYear(y)), v.W)
}

func roundYMD(v calendar.Value, d calendar.Duration, nextp bool) calendar.Value {
	if v.Tag != calendar.YMD {
		return v
	}
	tgt := d.TargetMonth
	forw := !d.Neg
	change, identity := advance(v.M, tgt, forw, nextp)
	if identity {
		return v
	}
	y := v.Y
	if change {
		if forw {
			y++
		} else {
			y--
		}
	}
	return calendar.NewYMD(y, tgt, minInt(v.D, calendar.Ultimo(y, tgt)))
}

func roundYMCW(v calendar.Value, d calendar.Duration, nextp bool) calendar.Value {
	daisy, ok := calendar.ToDaisy(v)
	if !ok {
		return v
	}
	tgt := d.TargetWeekday
	forw := !d.Neg
	wday := calendar.IsoWeekday(daisy.Serial)

	var diff int
	switch {
	case (forw && wday < tgt) || (!forw && wday > tgt):
		diff = tgt - wday
	case wday == tgt && !nextp:
		diff = 0
	case forw:
		diff = tgt - wday + 7
	default:
		diff = tgt - wday - 7
	}

	return calendar.FromDaisy(daisy.Serial+int32(diff), v.Tag)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
