// Package scanner implements the stream-mode line scanner: it reads stdin
// line by line, finds embedded date/time substrings with a compiled
// regexp needle table, and calls the composite rounder on each match.
//
// Its own correctness (which wire dialects it recognizes) is secondary to
// the rounding core; it exists so the core can be driven end-to-end, not
// as a general date-parsing library.
package scanner

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dround/dround/internal/calendar"
	"github.com/dround/dround/internal/composite"
)

// Result is the outcome of rounding one matched value.
type Result struct {
	Matched string // the original matched substring
	Output  string // the replacement text
	FixFlag bool   // the parser had to clamp an out-of-range field
}

// ParsePoint classifies a single whole token as a point-mode DATE
// argument. ok is false if tok doesn't match any recognized calendar
// dialect at all.
func ParsePoint(tok string) (sw composite.Sandwich, ok bool) {
	n, matched := classify(tok)
	if !matched {
		return composite.Sandwich{}, false
	}
	sw, err := parseMatch(n, tok)
	if err != nil {
		return composite.Sandwich{}, false
	}
	return sw, true
}

// RoundPoint rounds a single point-mode value and formats the result.
// zoneName, if non-empty, attaches an opaque zone offset to the value
// before rounding (see internal/zone); the offset is forgotten after
// rounding if durs includes a time duration.
func RoundPoint(tok string, durs []calendar.Duration, nextp bool, zoneName string) (Result, bool) {
	sw, ok := ParsePoint(tok)
	if !ok {
		return Result{}, false
	}
	sw = attachZone(sw, zoneName)
	rounded := composite.RoundList(sw, durs, nextp)
	rounded = forgetZone(rounded, durs)
	return Result{Matched: tok, Output: format(rounded), FixFlag: sw.FixFlag}, true
}

// LineResult is what scanning a single stream-mode line produced.
type LineResult struct {
	Line     string // the rewritten line to emit
	Matches  int
	FixFlags int
}

// ScanLine finds every embedded date/time value in line left to right,
// rounds each one, and rewrites the line. In sed mode unmatched tails are
// copied verbatim and only matched spans are replaced in place; otherwise
// one output line is produced per match. zoneName attaches an opaque zone
// offset to each matched value before rounding (see RoundPoint).
func ScanLine(line string, durs []calendar.Duration, nextp, sed bool, zoneName string) LineResult {
	spans := combined.FindAllStringIndex(line, -1)
	if len(spans) == 0 {
		return LineResult{Line: line, Matches: 0}
	}

	var lr LineResult
	if sed {
		var b []byte
		last := 0
		for _, sp := range spans {
			text := line[sp[0]:sp[1]]
			n, matched := classify(text)
			if !matched {
				continue
			}
			sw, err := parseMatch(n, text)
			if err != nil {
				continue
			}
			sw = attachZone(sw, zoneName)
			rounded := composite.RoundList(sw, durs, nextp)
			rounded = forgetZone(rounded, durs)
			b = append(b, line[last:sp[0]]...)
			b = append(b, format(rounded)...)
			last = sp[1]
			lr.Matches++
			if sw.FixFlag {
				lr.FixFlags++
			}
		}
		b = append(b, line[last:]...)
		lr.Line = string(b)
		return lr
	}

	var outLines []string
	for _, sp := range spans {
		text := line[sp[0]:sp[1]]
		n, matched := classify(text)
		if !matched {
			continue
		}
		sw, err := parseMatch(n, text)
		if err != nil {
			continue
		}
		sw = attachZone(sw, zoneName)
		rounded := composite.RoundList(sw, durs, nextp)
		rounded = forgetZone(rounded, durs)
		outLines = append(outLines, format(rounded))
		lr.Matches++
		if sw.FixFlag {
			lr.FixFlags++
		}
	}
	lr.Line = strings.Join(outLines, "\n")
	return lr
}

// StreamStats accumulates the exit-code-relevant outcomes of a full
// stream-mode pass: unmatched lines and clamped fields bias the exit
// code; the scanner is single-threaded, so plain counters are enough.
type StreamStats struct {
	LinesRead    int
	LinesNoMatch int
	FixFlags     int
}

// Stream reads r line by line, rounds every embedded date/time value with
// durs, and writes the result to w. It returns bookkeeping for the
// caller's exit-code decision; it does not decide the exit code itself.
func Stream(r io.Reader, w io.Writer, durs []calendar.Duration, nextp, sed bool, zoneName string) (StreamStats, error) {
	var stats StreamStats
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		stats.LinesRead++
		line := sc.Text()
		lr := ScanLine(line, durs, nextp, sed, zoneName)
		if lr.Matches == 0 {
			stats.LinesNoMatch++
		}
		stats.FixFlags += lr.FixFlags
		if _, err := fmt.Fprintln(w, lr.Line); err != nil {
			return stats, err
		}
	}
	if err := sc.Err(); err != nil {
		return stats, err
	}
	return stats, nil
}
