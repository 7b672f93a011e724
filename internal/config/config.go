// Package config loads dround's startup options: flags plus an optional
// ~/.dround/config.yaml layer of defaults, read once via spf13/viper.
// Options is then threaded explicitly through the driver instead of read
// back out of viper globals at point of use, so a global mutable "base"
// setting never leaks into the rounding core.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Options are the fully-resolved startup settings for one dround
// invocation.
type Options struct {
	OutputFormat     string   // -f
	InputFormats     []string // -i, repeatable
	Sed              bool     // -S
	Quiet            bool     // -q
	Next             bool     // -n, --next
	FromZone         string   // --from-zone, -z
	Base             string   // --base
	BackslashEscapes bool     // --backslash-escapes
}

// defaults reads ~/.dround/config.yaml (if present) and seeds an Options
// with whatever it supplies, leaving fields unset when the file is absent
// or silent on them; a missing or unreadable config file is not an error.
func defaults() Options {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("config")

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".dround"))
	}
	v.SetDefault("format", "")
	v.SetDefault("quiet", false)
	v.SetDefault("from_zone", "")
	_ = v.ReadInConfig()

	return Options{
		OutputFormat: v.GetString("format"),
		Quiet:        v.GetBool("quiet"),
		FromZone:     v.GetString("from_zone"),
		Base:         v.GetString("base"),
	}
}

// Resolve merges flag-supplied values over the config-file defaults. A
// zero-value string flag (empty string) does not override a config-file
// value; quiet/next are booleans that default to false in both layers, so
// true in either wins.
func Resolve(flags Options) Options {
	opt := defaults()

	if flags.OutputFormat != "" {
		opt.OutputFormat = flags.OutputFormat
	}
	if len(flags.InputFormats) > 0 {
		opt.InputFormats = flags.InputFormats
	}
	opt.Sed = flags.Sed
	opt.Quiet = opt.Quiet || flags.Quiet
	opt.Next = flags.Next
	if flags.FromZone != "" {
		opt.FromZone = flags.FromZone
	}
	if flags.Base != "" {
		opt.Base = flags.Base
	}
	opt.BackslashEscapes = flags.BackslashEscapes

	return opt
}
