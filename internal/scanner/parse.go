package scanner

import (
	"fmt"
	"strconv"

	"github.com/dround/dround/internal/calendar"
	"github.com/dround/dround/internal/composite"
)

// parseMatch turns one needle match into a sandwich value, reporting
// whether the parser had to clamp an out-of-range field.
func parseMatch(n needle, text string) (composite.Sandwich, error) {
	m := n.field.FindStringSubmatch(text)
	if m == nil {
		return composite.Sandwich{}, fmt.Errorf("scanner: needle %q did not match %q on reclassification", n.tag, text)
	}

	var sw composite.Sandwich
	var timeGroups []string

	switch n.tag {
	case "ywd":
		y, w, wd := atoi(m[1]), atoi(m[2]), atoi(m[3])
		raw := calendar.Value{Tag: calendar.YWD, Y: y, C: w, W: wd}
		sw.Date = calendar.NewYWD(y, w, wd)
		sw.HasDate = true
		sw.FixFlag = sw.Date.C != raw.C
		timeGroups = m[4:]
	case "bizda":
		y, mo, bd := atoi(m[1]), atoi(m[2]), atoi(m[3])
		raw := calendar.Value{Tag: calendar.Bizda, Y: y, M: mo, BD: bd}
		sw.Date = calendar.NewBizda(y, mo, bd)
		sw.HasDate = true
		sw.FixFlag = sw.Date.BD != raw.BD
		timeGroups = m[4:]
	case "ymcw":
		y, mo, c, wd := atoi(m[1]), atoi(m[2]), atoi(m[3]), atoi(m[4])
		sw.Date = calendar.NewYMCW(y, mo, c, wd)
		sw.HasDate = true
		timeGroups = m[5:]
	case "ymd":
		y, mo, d := atoi(m[1]), atoi(m[2]), atoi(m[3])
		raw := calendar.Value{Tag: calendar.YMD, Y: y, M: mo, D: d}
		sw.Date = calendar.NewYMD(y, mo, d)
		sw.HasDate = true
		sw.FixFlag = sw.Date.D != raw.D
		timeGroups = m[4:]
	case "time":
		timeGroups = m[1:]
	default:
		return composite.Sandwich{}, fmt.Errorf("scanner: unrecognized needle tag %q", n.tag)
	}

	if h := firstNonEmpty(timeGroups); h != "" {
		sw.HasTime = true
		sw.Time = calendar.TimeOfDay{
			H: atoiDefault(timeGroups, 0, 0),
			M: atoiDefault(timeGroups, 1, 0),
			S: atoiDefault(timeGroups, 2, 0),
		}
	}

	return sw, nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func atoiDefault(groups []string, i, def int) int {
	if i >= len(groups) || groups[i] == "" {
		return def
	}
	return atoi(groups[i])
}

func firstNonEmpty(groups []string) string {
	for _, g := range groups {
		if g != "" {
			return g
		}
	}
	return ""
}
