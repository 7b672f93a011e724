package scanner

import (
	"fmt"

	"github.com/dround/dround/internal/calendar"
	"github.com/dround/dround/internal/composite"
)

// format renders sw back to text mirroring the dialect it was matched
// under. Since rounding preserves a value's representation tag, the
// sandwich's own Date.Tag is always the dialect to mirror, even after
// rounding.
func format(sw composite.Sandwich) string {
	var datePart string
	if sw.HasDate {
		v := sw.Date
		switch v.Tag {
		case calendar.YWD:
			datePart = fmt.Sprintf("%04d-W%02d-%d", v.Y, v.C, v.W)
		case calendar.Bizda:
			datePart = fmt.Sprintf("%04d-%02d-%02dB", v.Y, v.M, v.BD)
		case calendar.YMCW:
			datePart = fmt.Sprintf("%04d-%02d-%d-%d", v.Y, v.M, v.C, v.W)
		default: // YMD, or any date produced via a duration roundtrip
			datePart = fmt.Sprintf("%04d-%02d-%02d", v.Y, v.M, v.D)
		}
	}

	var out string
	switch {
	case !sw.HasTime:
		out = datePart
	case datePart == "":
		out = fmt.Sprintf("%02d:%02d:%02d", sw.Time.H, sw.Time.M, sw.Time.S)
	default:
		out = datePart + "T" + fmt.Sprintf("%02d:%02d:%02d", sw.Time.H, sw.Time.M, sw.Time.S)
	}

	if sw.HasZone {
		out += formatOffset(sw.ZoneOffsetMinutes)
	}
	return out
}

// formatOffset renders a zone offset in minutes as a signed "+HH:MM"/
// "-HH:MM" suffix, the form --from-zone attaches to a rounded value once
// it has been pinned to a fixed offset.
func formatOffset(mins int) string {
	sign := "+"
	if mins < 0 {
		sign = "-"
		mins = -mins
	}
	return fmt.Sprintf("%s%02d:%02d", sign, mins/60, mins%60)
}
