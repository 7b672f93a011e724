// Package durparse is the extended rounding-duration parser: a small
// numeric grammar for day/business-day/week/time grains, falling back to
// a fuzzy, locale-normalized weekday or month token match (producing a
// weekday- or month-targeted duration) when the numeric grammar doesn't
// apply.
package durparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dround/dround/internal/calendar"
)

// date-target grammar: an optional sign, a single-letter target kind, then
// a count — sign-letter-digits, e.g. +d31, -b12, w5 — matching the
// day-of-month/business-day-of-month/ISO-week target tokens dround accepts.
//
//	d  day-of-month target      (DURD)
//	b  business-day-of-month    (DURBD)
//	w  ISO-week-number target   (DURWK)
var dateTargetRe = regexp.MustCompile(`^([+-]?)([dbw])(\d+)$`)

// time-grain grammar: a leading slash marks a time-rounding grain, then an
// optional sign, a count, and a single-letter unit — /15m, /1H, /-30S.
//
//	H  hours       (DURH)
//	m  minutes     (DURM)
//	S  seconds     (DURS)
//	N  nanoseconds (DURNANO)
var timeGrainRe = regexp.MustCompile(`^/([+-]?)(\d+)([HmSN])$`)

var caser = cases.Lower(language.Und)

// Parse parses a single rounding-duration token, trying the date-target
// grammar, then the time-grain grammar, and finally falling back to a
// fuzzy weekday/month match.
func Parse(tok string) (calendar.Duration, error) {
	if m := dateTargetRe.FindStringSubmatch(tok); m != nil {
		return parseDateTarget(m)
	}
	if m := timeGrainRe.FindStringSubmatch(tok); m != nil {
		return parseTimeGrain(m)
	}
	return parseFallback(tok)
}

func parseDateTarget(m []string) (calendar.Duration, error) {
	sign, unit, numStr := m[1], m[2], m[3]
	n, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return calendar.Duration{}, fmt.Errorf("duration %q: %w", sign+unit+numStr, err)
	}
	if sign == "-" {
		n = -n
	}
	switch unit {
	case "d":
		return calendar.Duration{Tag: calendar.DurDay, DV: n}, nil
	case "b":
		return calendar.Duration{Tag: calendar.DurBizda, DV: n}, nil
	case "w":
		return calendar.Duration{Tag: calendar.DurWeek, DV: n}, nil
	default:
		return calendar.Duration{}, fmt.Errorf("unrecognized duration unit %q", unit)
	}
}

func parseTimeGrain(m []string) (calendar.Duration, error) {
	sign, numStr, unit := m[1], m[2], m[3]
	n, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return calendar.Duration{}, fmt.Errorf("duration %q: %w", "/"+sign+numStr+unit, err)
	}
	if sign == "-" {
		n = -n
	}
	switch unit {
	case "H":
		return calendar.Duration{Tag: calendar.DurHour, DV: n}, nil
	case "m":
		return calendar.Duration{Tag: calendar.DurMinute, DV: n}, nil
	case "S":
		return calendar.Duration{Tag: calendar.DurSecond, DV: n}, nil
	case "N":
		return calendar.Duration{Tag: calendar.DurNano, DV: n}, nil
	default:
		return calendar.Duration{}, fmt.Errorf("unrecognized duration unit %q", unit)
	}
}

// parseFallback is the third-tier match: strip an optional leading sign,
// locale-fold the remaining token, and fuzzy-match it against the weekday
// table, then the month table.
func parseFallback(tok string) (calendar.Duration, error) {
	neg := false
	rest := tok
	if strings.HasPrefix(rest, "+") {
		rest = rest[1:]
	} else if strings.HasPrefix(rest, "-") {
		neg = true
		rest = rest[1:]
	}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return calendar.Duration{}, fmt.Errorf("duration %q: empty token after sign", tok)
	}
	folded := caser.String(rest)

	if w, ok := fuzzyWeekday(folded); ok {
		return calendar.Duration{Tag: calendar.DurYMCW, TargetWeekday: w, Neg: neg}, nil
	}
	if mo, ok := fuzzyMonth(folded); ok {
		return calendar.Duration{Tag: calendar.DurYMD, TargetMonth: mo, Neg: neg}, nil
	}
	return calendar.Duration{}, fmt.Errorf("duration %q: unparsed tail %q", tok, rest)
}

func fuzzyWeekday(folded string) (int, bool) {
	if exact, ok := weekdayNumber(folded); ok {
		return exact, true
	}
	matches := fuzzy.Find(folded, weekdayNames)
	if len(matches) == 0 {
		return 0, false
	}
	return weekdayNumber(weekdayNames[matches[0].Index])
}

func fuzzyMonth(folded string) (int, bool) {
	if exact, ok := monthNumber(folded); ok {
		return exact, true
	}
	matches := fuzzy.Find(folded, monthNames)
	if len(matches) == 0 {
		return 0, false
	}
	return monthNumber(monthNames[matches[0].Index])
}
