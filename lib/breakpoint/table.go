package breakpoint

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidTable is returned when a Table's bounds are not strictly increasing.
var ErrInvalidTable = errors.New("breakpoint: invalid table")

// Table maps each tier to its inclusive upper width bound in CSS pixels.
// XL has no upper bound and therefore no field.
type Table struct {
	XS int `yaml:"xs" mapstructure:"xs" validate:"gt=0,ltfield=S"`
	S  int `yaml:"s" mapstructure:"s" validate:"gt=0,ltfield=M"`
	M  int `yaml:"m" mapstructure:"m" validate:"gt=0,ltfield=L"`
	L  int `yaml:"l" mapstructure:"l" validate:"gt=0"`
}

// DefaultTable is the stock breakpoint table.
var DefaultTable = Table{XS: 480, S: 768, M: 1024, L: 1440}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func tableValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Validate checks that every bound is positive and the bounds are strictly
// increasing.
func (tb Table) Validate() error {
	if err := tableValidator().Struct(tb); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	return nil
}

// Bound returns the upper bound of tier t. The second result is false for XL
// (and for invalid tiers), which have no bound.
func (tb Table) Bound(t Tier) (int, bool) {
	switch t {
	case XS:
		return tb.XS, true
	case S:
		return tb.S, true
	case M:
		return tb.M, true
	case L:
		return tb.L, true
	}
	return 0, false
}

// Tier returns the first tier whose bound is >= width, or XL.
func (tb Table) Tier(width int) Tier {
	for _, t := range Tiers[:len(Tiers)-1] {
		bound, _ := tb.Bound(t)
		if width <= bound {
			return t
		}
	}
	return XL
}
