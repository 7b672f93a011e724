package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/dround/dround/internal/config"
	"github.com/dround/dround/internal/durparse"
	"github.com/dround/dround/internal/scanner"
)

// Stdin, Stdout and Stderr are the stream-mode endpoints; tests swap them
// for in-memory buffers.
var (
	Stdin          io.Reader = os.Stdin
	Stdout         io.Writer = os.Stdout
	Stderr         io.Writer = os.Stderr
	stdinIsTTY               = func() bool { return isatty.IsTerminal(os.Stdin.Fd()) }
)

// runStream treats every argument as a duration and rounds each embedded
// date/time value found on stdin, writing the rewritten lines to stdout.
func runStream(durTokens []string, opts config.Options) error {
	durs, err := durparse.ParseList(durTokens)
	if err != nil {
		return exitError{code: exitFatal, err: err}
	}
	if len(durs) == 0 {
		return exitError{code: exitFatal, err: fmt.Errorf("no durations given")}
	}

	if stdinIsTTY() && !opts.Quiet {
		fmt.Fprintln(Stderr, "dround: reading from terminal, press ^D to end input")
	}

	stats, err := scanner.Stream(Stdin, Stdout, durs, opts.Next, opts.Sed, opts.FromZone)
	if err != nil {
		return exitError{code: exitFatal, err: err}
	}

	switch {
	case stats.LinesNoMatch > 0 && !opts.Quiet:
		return exitError{code: exitSoftFlag, err: fmt.Errorf("%d line(s) had no recognizable date", stats.LinesNoMatch)}
	case stats.FixFlags > 0:
		return exitError{code: exitSoftFlag, err: fmt.Errorf("%d value(s) required clamping", stats.FixFlags)}
	}
	return nil
}
