package config

import (
	"time"

	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// Validate checks the file-level fields and the dates of seed loans. The
// remaining catalog entries are validated by the library when applied.
func (c FileConfig) Validate() error {
	if c.Version != 0 && c.Version != 1 {
		return errors.Errorf("unsupported config version %d", c.Version)
	}
	if c.Today != "" {
		if err := ValidateDate(c.Today); err != nil {
			return errors.Wrap(err, "today")
		}
	}
	switch c.Output.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Errorf("output.color: unknown mode %q", c.Output.Color)
	}
	for i, l := range c.Catalog.Loans {
		if err := ValidateDate(l.Start); err != nil {
			return errors.Wrapf(err, "catalog.loans[%d].start", i)
		}
		if err := ValidateDate(l.Due); err != nil {
			return errors.Wrapf(err, "catalog.loans[%d].due", i)
		}
	}
	return nil
}

// ValidateDate accepts only zero-padded YYYY-MM-DD dates, the only form in
// which string order equals date order.
func ValidateDate(s string) error {
	if _, err := time.Parse(dateLayout, s); err != nil || len(s) != len(dateLayout) {
		return errors.Errorf("%q is not a YYYY-MM-DD date", s)
	}
	return nil
}

// ResolveToday returns c.Today, or now formatted as YYYY-MM-DD.
func (c FileConfig) ResolveToday(now time.Time) string {
	if c.Today != "" {
		return c.Today
	}
	return now.Format(dateLayout)
}
