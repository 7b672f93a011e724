// Package cmd wires the Cobra CLI surface around the rounding core: a
// single command (no subcommands — dround has one verb) that dispatches to
// point mode or stream mode depending on whether its first positional
// argument parses as a date.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dround/dround/internal/config"
	"github.com/dround/dround/internal/zone"
)

var (
	flagFormat           string
	flagInputFormats     []string
	flagSed              bool
	flagQuiet            bool
	flagNext             bool
	flagFromZone         string
	flagBase             string
	flagBackslashEscapes bool
)

var rootCmd = &cobra.Command{
	Use:   "dround [OPTIONS] DATE DURATION...",
	Short: "dround — round date/time values to a duration boundary",
	Long: "dround snaps an embedded date/time value to the nearest boundary implied\n" +
		"by one or more rounding durations (the next Monday, the end of the month,\n" +
		"the next 15-minute mark). Given a leading DATE argument it rounds that one\n" +
		"value; otherwise it reads dates from stdin and rounds every match on each line.",
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "output format")
	rootCmd.Flags().StringArrayVarP(&flagInputFormats, "input-format", "i", nil, "input format hint (repeatable)")
	rootCmd.Flags().BoolVarP(&flagSed, "sed-mode", "S", false, "sed-style in-place replacement in stream mode")
	rootCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress diagnostics (still biases exit code)")
	rootCmd.Flags().BoolVarP(&flagNext, "next", "n", false, "force advance even when already on a boundary")
	rootCmd.Flags().StringVarP(&flagFromZone, "from-zone", "z", "", "interpret naive input in this zone")
	rootCmd.Flags().StringVar(&flagBase, "base", "", "fallback date for underspecified parses")
	rootCmd.Flags().BoolVar(&flagBackslashEscapes, "backslash-escapes", false, `unescape \n\t... in -f/-i formats`)
}

// Execute runs the root command and exits the process with the exit code
// each error kind maps to. Cobra's own "bad flag" failures map to the fatal
// band (1); everything past flag parsing is mapped explicitly by run() via
// exitError.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if ee, ok := err.(exitError); ok {
			if !flagQuiet || ee.code < 2 {
				fmt.Fprintf(os.Stderr, "dround: %v\n", ee.err)
			}
			os.Exit(ee.code)
		}
		fmt.Fprintf(os.Stderr, "dround: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cobra.Command, args []string) error {
	opts := config.Resolve(config.Options{
		OutputFormat:     flagFormat,
		InputFormats:     flagInputFormats,
		Sed:              flagSed,
		Quiet:            flagQuiet,
		Next:             flagNext,
		FromZone:         flagFromZone,
		Base:             flagBase,
		BackslashEscapes: flagBackslashEscapes,
	})
	if opts.OutputFormat != "" && opts.BackslashEscapes {
		opts.OutputFormat = config.UnescapeFormat(opts.OutputFormat)
	}

	if err := zone.Validate(opts.FromZone); err != nil {
		return exitError{code: exitFatal, err: err}
	}

	if len(args) == 0 {
		return exitError{code: 1, err: fmt.Errorf("no durations given")}
	}

	if _, ok := tryPointMode(args[0]); ok {
		return runPoint(args[0], args[1:], opts)
	}

	return runStream(args, opts)
}
