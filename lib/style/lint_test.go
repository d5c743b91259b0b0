package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/hxui/lib/dimension"
)

func TestLintClean(t *testing.T) {
	diags := Lint(Props{
		Background: "surface",
		Border:     "neutral-alpha-medium",
		Padding:    "16",
		Gap:        "-1",
		Width:      dimension.Token("m"),
		Height:     dimension.Rem(4),
	})
	assert.Empty(t, diags)
}

func TestLintSuggestsColor(t *testing.T) {
	diags := Lint(Props{Background: "nuetral-strong"})
	require.Len(t, diags, 1)
	assert.Equal(t, CodeUnknownColor, diags[0].Code)
	assert.Equal(t, "background", diags[0].Field)
	assert.Equal(t, "neutral-strong", diags[0].Suggestion)
	assert.Contains(t, diags[0].String(), `did you mean "neutral-strong"?`)
}

func TestLintSuggestsDimension(t *testing.T) {
	diags := Lint(Props{Width: dimension.Token("xxl")})
	require.Len(t, diags, 1)
	assert.Equal(t, CodeUnknownToken, diags[0].Code)
	assert.Equal(t, "xl", diags[0].Suggestion)
}

func TestLintNoSuggestionWhenFar(t *testing.T) {
	diags := Lint(Props{Padding: "enormous"})
	require.Len(t, diags, 1)
	assert.Equal(t, "padding", diags[0].Field)
	assert.Empty(t, diags[0].Suggestion)
	assert.Equal(t, `padding: unrecognized token "enormous"`, diags[0].String())
}

func TestLintReportsConflictsFirst(t *testing.T) {
	diags := Lint(Props{Background: "neutral-weak", Solid: "brand-strong", Margin: "7"})
	require.Len(t, diags, 2)
	assert.Equal(t, CodeConflict, diags[0].Code)
	assert.Equal(t, "margin", diags[1].Field)
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, "16", Suggest("166", dimension.SpacingSteps))
	assert.Equal(t, "", Suggest("zzzzzz", []string{"a"}))
}
