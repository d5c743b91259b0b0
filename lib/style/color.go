package style

import "strings"

// Schemes lists the recognized color schemes.
var Schemes = []string{"neutral", "brand", "accent", "info", "danger", "warning", "success"}

// Weights lists the recognized color weights.
var Weights = []string{"weak", "medium", "strong"}

// namedColors are surface tokens that materialize as "{name}-{type}".
var namedColors = []string{"surface", "page", "overlay"}

// Color is a structured color token: "{scheme}-{weight}",
// "{scheme}-alpha-{weight}", a named surface, or "transparent".
type Color struct {
	Scheme      string
	Weight      string
	Alpha       bool
	Named       string
	Transparent bool
}

// ParseColor decomposes a color token. The second result is false for
// absent or unrecognized tokens.
func ParseColor(token string) (Color, bool) {
	switch {
	case token == "":
		return Color{}, false
	case token == "transparent":
		return Color{Transparent: true}, true
	case contains(namedColors, token):
		return Color{Named: token}, true
	}

	parts := strings.Split(token, "-")
	switch len(parts) {
	case 2:
		if contains(Schemes, parts[0]) && contains(Weights, parts[1]) {
			return Color{Scheme: parts[0], Weight: parts[1]}, true
		}
	case 3:
		if parts[1] == "alpha" && contains(Schemes, parts[0]) && contains(Weights, parts[2]) {
			return Color{Scheme: parts[0], Weight: parts[2], Alpha: true}, true
		}
	}
	return Color{}, false
}

// Class returns the class name for c painted as kind (background, solid,
// border, ...).
//
//	neutral-strong        -> neutral-{kind}-strong
//	brand-alpha-weak      -> brand-{kind}-alpha-weak
//	surface               -> surface-{kind}
//	transparent           -> transparent-border
func (c Color) Class(kind string) string {
	switch {
	case c.Transparent:
		return "transparent-border"
	case c.Named != "":
		return c.Named + "-" + kind
	case c.Alpha:
		return c.Scheme + "-" + kind + "-alpha-" + c.Weight
	}
	return c.Scheme + "-" + kind + "-" + c.Weight
}

// onClass returns the text color class for an on-background or on-solid
// token, e.g. "neutral-on-background-strong".
func onClass(token, surface string) (string, bool) {
	c, ok := ParseColor(token)
	if !ok || c.Scheme == "" || c.Alpha {
		return "", false
	}
	return c.Scheme + "-on-" + surface + "-" + c.Weight, true
}

func contains(set []string, s string) bool {
	for _, item := range set {
		if item == s {
			return true
		}
	}
	return false
}
