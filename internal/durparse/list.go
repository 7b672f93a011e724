package durparse

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/dround/dround/internal/calendar"
)

// ParseList parses every token in toks as a rounding duration. Unlike
// Parse, it does not stop at the first bad token: every unparseable
// duration is collected and reported together, since a single combined
// diagnostic is more useful than aborting on the first typo in a long
// argument list.
func ParseList(toks []string) ([]calendar.Duration, error) {
	if len(toks) == 0 {
		return nil, fmt.Errorf("empty duration list")
	}
	durs := make([]calendar.Duration, 0, len(toks))
	var errs error
	for _, tok := range toks {
		d, err := Parse(tok)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		durs = append(durs, d)
	}
	if errs != nil {
		return nil, errs
	}
	return durs, nil
}
