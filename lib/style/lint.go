package style

import (
	"strconv"

	"github.com/agnivade/levenshtein"

	"github.com/pthm/hxui/lib/dimension"
)

// maxSuggestDistance bounds how far a typo may be from a known token before
// no suggestion is offered.
const maxSuggestDistance = 3

var colorTokens = func() []string {
	var out []string
	for _, s := range Schemes {
		for _, w := range Weights {
			out = append(out, s+"-"+w, s+"-alpha-"+w)
		}
	}
	out = append(out, namedColors...)
	return append(out, "transparent")
}()

var dimensionTokens = append(append([]string{}, dimension.SpacingSteps...), dimension.Sizes...)

type lintField struct {
	name  string
	value string
}

// Lint checks every token in p against the known vocabularies and reports
// unknown ones with the closest known token as a suggestion. It also reports
// mutually exclusive props supplied together. Lint is advisory: Resolve
// already ignores whatever Lint flags.
func Lint(p Props) []Diagnostic {
	var diags []Diagnostic
	for _, d := range Resolve(Flex, p).Diagnostics {
		if d.Code == CodeConflict {
			diags = append(diags, d)
		}
	}

	colors := []lintField{
		{"background", p.Background},
		{"solid", p.Solid},
		{"border", p.Border},
		{"borderTop", p.BorderTop},
		{"borderRight", p.BorderRight},
		{"borderBottom", p.BorderBottom},
		{"borderLeft", p.BorderLeft},
		{"borderX", p.BorderX},
		{"borderY", p.BorderY},
		{"onBackground", p.OnBackground},
		{"onSolid", p.OnSolid},
	}
	for _, f := range colors {
		if f.value == "" {
			continue
		}
		if _, ok := ParseColor(f.value); !ok {
			diags = append(diags, unknown(CodeUnknownColor, f, colorTokens))
		}
	}

	spacing := []lintField{
		{"padding", p.Padding}, {"paddingLeft", p.PaddingLeft}, {"paddingRight", p.PaddingRight},
		{"paddingTop", p.PaddingTop}, {"paddingBottom", p.PaddingBottom},
		{"paddingX", p.PaddingX}, {"paddingY", p.PaddingY},
		{"margin", p.Margin}, {"marginLeft", p.MarginLeft}, {"marginRight", p.MarginRight},
		{"marginTop", p.MarginTop}, {"marginBottom", p.MarginBottom},
		{"marginX", p.MarginX}, {"marginY", p.MarginY},
		{"top", p.Top}, {"right", p.Right}, {"bottom", p.Bottom}, {"left", p.Left},
	}
	if p.Gap != "-1" {
		spacing = append(spacing, lintField{"gap", p.Gap})
	}
	for _, f := range spacing {
		if f.value != "" && !dimension.IsSpacingStep(f.value) {
			diags = append(diags, unknown(CodeUnknownToken, f, dimension.SpacingSteps))
		}
	}

	dims := []struct {
		name  string
		value dimension.Value
	}{
		{"width", p.Width}, {"height", p.Height},
		{"minWidth", p.MinWidth}, {"maxWidth", p.MaxWidth},
		{"minHeight", p.MinHeight}, {"maxHeight", p.MaxHeight},
	}
	for _, d := range dims {
		if !d.value.IsZero() && !dimension.Known(d.value) {
			diags = append(diags, unknown(CodeUnknownToken, lintField{d.name, d.value.String()}, dimensionTokens))
		}
	}

	return diags
}

func unknown(code string, f lintField, vocabulary []string) Diagnostic {
	return Diagnostic{
		Code:       code,
		Field:      f.name,
		Message:    "unrecognized token " + strconv.Quote(f.value),
		Suggestion: Suggest(f.value, vocabulary),
	}
}

// Suggest returns the entry of vocabulary closest to token by edit distance,
// or "" when nothing is within reach. Ties go to the earlier entry.
func Suggest(token string, vocabulary []string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, candidate := range vocabulary {
		if d := levenshtein.ComputeDistance(token, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}
