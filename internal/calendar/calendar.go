// Package calendar implements the tagged calendar value that flows through
// the rounding engine, and the calendar arithmetic (Gregorian civil-date
// conversion, ISO week numbering, business-day counting) that the date
// rounder needs to move between representations.
//
// The civil-date <-> day-number conversion follows the same low-level
// algorithm the standard library's time package and packages like
// Merovius-go-date and go-chrono/chrono implement variants of: days are
// counted from a fixed epoch (here, 1970-01-01, so a Serial of 0 is the
// Unix epoch date) using the era/year-of-era decomposition that avoids
// the usual February-length special case.
package calendar

import "fmt"

// Tag identifies which fields of a Value are meaningful.
type Tag int

const (
	// Unknown marks an unrecognized or absent value.
	Unknown Tag = iota
	// YMD is a Gregorian year/month/day.
	YMD
	// YMCW is the nth weekday of a month (e.g. "3rd Tuesday of March").
	YMCW
	// Bizda is the nth business day (Mon-Fri) of a month.
	Bizda
	// YWD is an ISO-8601 week-numbering date.
	YWD
	// Daisy is a dense day-count since the fixed epoch.
	Daisy
	// MD is a month/day with no year.
	MD
)

func (t Tag) String() string {
	switch t {
	case YMD:
		return "ymd"
	case YMCW:
		return "ymcw"
	case Bizda:
		return "bizda"
	case YWD:
		return "ywd"
	case Daisy:
		return "daisy"
	case MD:
		return "md"
	default:
		return "unknown"
	}
}

// Value is a tagged calendar value: a single struct carrying every
// representation's fields, discriminated by Tag. Only the fields relevant
// to Tag are meaningful; others are zero.
//
//	YMD:   Y, M, D
//	YMCW:  Y, M, C, W
//	Bizda: Y, M, BD
//	YWD:   Y, C, W
//	Daisy: Serial
//	MD:    M, D
type Value struct {
	Tag    Tag
	Y      int   // year
	M      int   // month, 1-12
	D      int   // day of month, 1-31
	C      int   // YMCW: week-of-month (1-5); YWD: ISO week number (1-53)
	W      int   // ISO weekday, 1 (Monday) - 7 (Sunday)
	BD     int   // business-day-of-month, 1-23
	Serial int32 // days since 1970-01-01
}

// NewYMD builds a YMD value, clamping D to the month's ultimo.
func NewYMD(y, m, d int) Value {
	if u := Ultimo(y, m); d > u {
		d = u
	}
	if d < 1 {
		d = 1
	}
	return Value{Tag: YMD, Y: y, M: m, D: d}
}

// NewYMCW builds a YMCW value.
func NewYMCW(y, m, c, w int) Value {
	return Value{Tag: YMCW, Y: y, M: m, C: c, W: w}
}

// NewBizda builds a Bizda value, clamping BD to the month's business-day count.
func NewBizda(y, m, bd int) Value {
	if mx := BdaysInMonth(y, m); bd > mx {
		bd = mx
	}
	if bd < 1 {
		bd = 1
	}
	return Value{Tag: Bizda, Y: y, M: m, BD: bd}
}

// NewYWD builds a YWD value, clamping C to the ISO year's week count.
func NewYWD(y, c, w int) Value {
	if mx := IsoWeeksInYear(y); c > mx {
		c = mx
	}
	if c < 1 {
		c = 1
	}
	return Value{Tag: YWD, Y: y, C: c, W: w}
}

// NewDaisy builds a Daisy value from a serial day count.
func NewDaisy(serial int32) Value {
	return Value{Tag: Daisy, Serial: serial}
}

func (v Value) String() string {
	switch v.Tag {
	case YMD:
		return fmt.Sprintf("%04d-%02d-%02d", v.Y, v.M, v.D)
	case YMCW:
		return fmt.Sprintf("%04d-%02d-%d-%d", v.Y, v.M, v.C, v.W)
	case Bizda:
		return fmt.Sprintf("%04d-%02d-%02dB", v.Y, v.M, v.BD)
	case YWD:
		return fmt.Sprintf("%04d-W%02d-%d", v.Y, v.C, v.W)
	case Daisy:
		return fmt.Sprintf("daisy:%d", v.Serial)
	case MD:
		return fmt.Sprintf("--%02d-%02d", v.M, v.D)
	default:
		return "unknown"
	}
}

// TimeOfDay is the clock-time part of a sandwich value.
type TimeOfDay struct {
	H  int
	M  int
	S  int
	Ns int
}

// Seconds returns the time-of-day as seconds since midnight, ignoring Ns.
func (t TimeOfDay) Seconds() int {
	return t.H*3600 + t.M*60 + t.S
}

func (t TimeOfDay) String() string {
	if t.Ns != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%09d", t.H, t.M, t.S, t.Ns)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.H, t.M, t.S)
}
