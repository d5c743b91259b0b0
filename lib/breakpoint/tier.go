// Package breakpoint tracks the named viewport tier a page is rendered at.
//
// Tiers are ordered by ascending width bound:
//
//	xs < s < m < l < xl
//
// A Table maps each tier to its inclusive upper bound; xl is unbounded. The
// Tracker owns the measured width and the active tier and notifies
// subscribers when the tier changes.
package breakpoint

import (
	"errors"
	"fmt"
)

// Tier is one of the five named breakpoints.
type Tier int

const (
	XS Tier = iota
	S
	M
	L
	XL
)

// Tiers lists every tier in ascending order.
var Tiers = []Tier{XS, S, M, L, XL}

var tierNames = [...]string{"xs", "s", "m", "l", "xl"}

// ErrUnknownTier is returned when parsing a tier name fails.
var ErrUnknownTier = errors.New("breakpoint: unknown tier")

// Valid reports whether t is one of the five tiers.
func (t Tier) Valid() bool {
	return t >= XS && t <= XL
}

func (t Tier) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tierNames[t]
}

// ParseTier parses a tier name ("xs", "s", "m", "l", "xl").
func ParseTier(name string) (Tier, error) {
	for i, n := range tierNames {
		if n == name {
			return Tier(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTier, name)
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTier, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
