// Package dimension converts size tokens into CSS lengths.
//
// A Value is either a number of root ems, a named spacing step, or a named
// responsive size. Parse never fails: a token it does not recognize resolves
// to no value, and callers fall back to the inherited default.
package dimension

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// Axis selects the responsive variable namespace for named sizes.
type Axis string

const (
	Width  Axis = "width"
	Height Axis = "height"
)

// SpacingSteps is the fixed, ordered set of static spacing steps.
var SpacingSteps = []string{
	"0", "1", "2", "4", "8", "12", "16", "20", "24",
	"32", "40", "48", "56", "64", "80", "104", "128", "160",
}

// Sizes is the ordered set of named responsive sizes.
var Sizes = []string{"xs", "s", "m", "l", "xl"}

// Value is a dimension token. The zero Value is absent.
type Value struct {
	num   float64
	token string
	isNum bool
}

// Rem returns a numeric Value interpreted as n root ems.
func Rem(n float64) Value {
	return Value{num: n, isNum: true}
}

// Token returns a string token Value.
func Token(s string) Value {
	return Value{token: s}
}

// IsZero reports whether v is absent.
func (v Value) IsZero() bool {
	return !v.isNum && v.token == ""
}

// Number returns the numeric value and whether v is numeric.
func (v Value) Number() (float64, bool) {
	return v.num, v.isNum
}

// String returns the token as written: the number or the token name.
func (v Value) String() string {
	if v.isNum {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.token
}

// IsSpacingStep reports whether s is one of SpacingSteps.
func IsSpacingStep(s string) bool {
	return contains(SpacingSteps, s)
}

// IsSize reports whether s is one of Sizes.
func IsSize(s string) bool {
	return contains(Sizes, s)
}

// Known reports whether Parse would produce a length for v on any axis.
func Known(v Value) bool {
	_, ok := Parse(v, Width)
	return ok
}

// Parse converts v into a CSS length for axis.
//
//	Rem(42)             -> "42rem"
//	Token("16")         -> "var(--static-space-16)"
//	Token("xl"), Height -> "var(--responsive-height-xl)"
//	Token("unknown")    -> "", false
func Parse(v Value, axis Axis) (string, bool) {
	switch {
	case v.isNum:
		return strconv.FormatFloat(v.num, 'f', -1, 64) + "rem", true
	case IsSpacingStep(v.token):
		return "var(--static-space-" + v.token + ")", true
	case IsSize(v.token):
		return "var(--responsive-" + string(axis) + "-" + v.token + ")", true
	}
	return "", false
}

// UnmarshalYAML decodes YAML numbers as Rem and anything else as Token.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && (node.Tag == "!!int" || node.Tag == "!!float") {
		n, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return err
		}
		*v = Rem(n)
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	*v = Token(s)
	return nil
}

// MarshalYAML encodes v back to its YAML form.
func (v Value) MarshalYAML() (any, error) {
	if v.isNum {
		return v.num, nil
	}
	return v.token, nil
}

func contains(set []string, s string) bool {
	for _, item := range set {
		if item == s {
			return true
		}
	}
	return false
}
