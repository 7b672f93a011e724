package scanner

import (
	"time"

	"github.com/dround/dround/internal/calendar"
	"github.com/dround/dround/internal/composite"
	"github.com/dround/dround/internal/zone"
)

// attachZone resolves zoneName's offset at the instant sw represents and
// records it on sw. zoneName is assumed already validated (see
// zone.Validate, called once at startup), so a resolution error here is
// treated as "no zone" rather than propagated per value.
func attachZone(sw composite.Sandwich, zoneName string) composite.Sandwich {
	if zoneName == "" {
		return sw
	}
	off, err := zone.OffsetMinutes(zoneName, referenceTime(sw))
	if err != nil {
		return sw
	}
	sw.ZoneOffsetMinutes = off
	sw.HasZone = true
	return sw
}

// forgetZone detaches sw from the zone rule it was attached under once the
// rounding list includes a time duration — the driver "forgets" the zone
// after rounding rather than carrying it through further arithmetic that
// depends on a zone rule the core itself never interprets.
func forgetZone(sw composite.Sandwich, durs []calendar.Duration) composite.Sandwich {
	if !sw.HasZone {
		return sw
	}
	for _, d := range durs {
		if d.Tag.IsTimeDuration() {
			sw.ZoneOffsetMinutes = zone.Forget(sw.ZoneOffsetMinutes)
			return sw
		}
	}
	return sw
}

// referenceTime builds the instant a zone offset should be resolved
// against: sw's own date/time when present (so DST transitions resolve
// correctly), falling back to the current instant when sw carries no date
// (a bare time-of-day match) or a date that cannot be placed on the
// absolute timeline.
func referenceTime(sw composite.Sandwich) time.Time {
	if !sw.HasDate {
		return time.Now()
	}
	daisy, ok := calendar.ToDaisy(sw.Date)
	if !ok {
		return time.Now()
	}
	y, m, d := calendar.CivilFromDays(daisy.Serial)
	h, mi, s := 0, 0, 0
	if sw.HasTime {
		h, mi, s = sw.Time.H, sw.Time.M, sw.Time.S
	}
	return time.Date(y, time.Month(m), d, h, mi, s, 0, time.UTC)
}
