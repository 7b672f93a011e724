package cmd

import (
	"fmt"

	"github.com/dround/dround/internal/composite"
	"github.com/dround/dround/internal/config"
	"github.com/dround/dround/internal/durparse"
	"github.com/dround/dround/internal/scanner"
)

// tryPointMode reports whether tok is itself a date/time value. When it
// is, the command rounds that single value; otherwise every argument is a
// duration and input comes from stdin (see runStream).
func tryPointMode(tok string) (composite.Sandwich, bool) {
	return scanner.ParsePoint(tok)
}

func runPoint(tok string, durTokens []string, opts config.Options) error {
	durs, err := durparse.ParseList(durTokens)
	if err != nil {
		return exitError{code: exitFatal, err: err}
	}
	if len(durs) == 0 {
		return exitError{code: exitFatal, err: fmt.Errorf("no durations given")}
	}

	res, ok := scanner.RoundPoint(tok, durs, opts.Next, opts.FromZone)
	if !ok {
		return exitError{code: exitFatal, err: fmt.Errorf("cannot parse date %q", tok)}
	}
	fmt.Fprintln(Stdout, res.Output)

	if res.FixFlag {
		return exitError{code: exitSoftFlag, err: fmt.Errorf("an out-of-range field was clamped")}
	}
	return nil
}
