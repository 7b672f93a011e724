package scanner

import "regexp"

// needle is one entry in the pattern needle table: a compiled regexp
// recognizing one calendar dialect, ordered most- to least-specific so the
// combined alternation prefers the more specific dialect when two patterns
// could both start at the same position.
type needle struct {
	tag   string
	field *regexp.Regexp // extracts the tag's numbered fields from a match
}

const timeSuffix = `(?:T(\d{2}):(\d{2})(?::(\d{2}))?)?`

var needles = []needle{
	{tag: "ywd", field: regexp.MustCompile(`^(\d{4})-W(\d{2})-(\d)` + timeSuffix + `$`)},
	{tag: "bizda", field: regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})B` + timeSuffix + `$`)},
	{tag: "ymcw", field: regexp.MustCompile(`^(\d{4})-(\d{2})-(\d)-(\d)` + timeSuffix + `$`)},
	{tag: "ymd", field: regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})` + timeSuffix + `$`)},
	{tag: "time", field: regexp.MustCompile(`^(\d{2}):(\d{2})(?::(\d{2}))?$`)},
}

// combined is the single needle table: one alternation over every dialect,
// most-specific first, so Go's leftmost-first regexp semantics pick the
// right dialect when patterns overlap at the same starting position.
var combined = regexp.MustCompile(
	`\d{4}-W\d{2}-\d(?:T\d{2}:\d{2}(?::\d{2})?)?` +
		`|\d{4}-\d{2}-\d{2}B(?:T\d{2}:\d{2}(?::\d{2})?)?` +
		`|\d{4}-\d{2}-\d-\d(?:T\d{2}:\d{2}(?::\d{2})?)?` +
		`|\d{4}-\d{2}-\d{2}(?:T\d{2}:\d{2}(?::\d{2})?)?` +
		`|\d{2}:\d{2}(?::\d{2})?`,
)

// classify finds which needle a matched substring belongs to, trying them
// in the same most-specific-first order as combined.
func classify(s string) (needle, bool) {
	for _, n := range needles {
		if n.field.MatchString(s) {
			return n, true
		}
	}
	return needle{}, false
}
