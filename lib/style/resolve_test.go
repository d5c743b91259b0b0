package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/hxui/lib/dimension"
)

func TestResolveEmpty(t *testing.T) {
	got := Resolve(Flex, Props{})
	assert.Equal(t, []string{"display-flex", "position-relative"}, got.Classes)
	assert.Empty(t, got.Style)
	assert.Empty(t, got.Diagnostics)

	got = Resolve(Grid, Props{Inline: true})
	assert.Equal(t, []string{"display-inline-grid", "position-relative"}, got.Classes)
}

func TestResolveCard(t *testing.T) {
	got := Resolve(Flex, Props{
		Background:   "surface",
		OnBackground: "neutral-strong",
		Transition:   "macro-medium",
		Border:       "neutral-medium",
		Cursor:       "interactive",
		Align:        "left",
	})

	assert.Equal(t, []string{
		"display-flex",
		"position-relative",
		"surface-background",
		"neutral-border-medium",
		"border-solid",
		"border-1",
		"transition-macro-medium",
		"cursor-interactive",
		"neutral-on-background-strong",
	}, got.Classes)
	assert.Equal(t, Style{"text-align": "left"}, got.Style)
}

func TestResolveBorderSides(t *testing.T) {
	tests := []struct {
		name  string
		props Props
		want  []string
	}{
		{
			name:  "single side defaults",
			props: Props{BorderTop: "brand-alpha-weak"},
			want: []string{
				"display-flex", "position-relative",
				"brand-border-alpha-weak", "border-solid", "border-reset", "border-top-1",
			},
		},
		{
			name: "explicit style and width",
			props: Props{
				BorderTop:   "brand-alpha-weak",
				BorderLeft:  "neutral-weak",
				BorderWidth: 2,
				BorderStyle: "dashed",
			},
			want: []string{
				"display-flex", "position-relative",
				"brand-border-alpha-weak", "border-reset", "border-top-1", "border-left-1",
				"border-2", "border-dashed",
			},
		},
		{
			name:  "unified border with width",
			props: Props{Border: "transparent", BorderWidth: 2},
			want: []string{
				"display-flex", "position-relative",
				"transparent-border", "border-solid", "border-2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(Flex, tt.props).Classes)
		})
	}
}

func TestResolveMutuallyExclusive(t *testing.T) {
	got := Resolve(Flex, Props{Background: "neutral-weak", Solid: "brand-strong"})
	assert.True(t, got.HasClass("neutral-background-weak"))
	assert.False(t, got.HasClass("brand-solid-strong"))
	require.Len(t, got.Diagnostics, 1)
	assert.Equal(t, CodeConflict, got.Diagnostics[0].Code)
	assert.Equal(t, "background", got.Diagnostics[0].Field)

	got = Resolve(Flex, Props{OnBackground: "neutral-weak", OnSolid: "brand-strong"})
	assert.True(t, got.HasClass("neutral-on-background-weak"))
	assert.False(t, got.HasClass("brand-on-solid-strong"))
	assert.Equal(t, CodeConflict, got.Diagnostics[0].Code)

	got = Resolve(Flex, Props{OnSolid: "brand-strong"})
	assert.True(t, got.HasClass("brand-on-solid-strong"))
}

func TestResolveMutuallyExclusiveExactlyOne(t *testing.T) {
	tokens := []string{"neutral-weak", "brand-alpha-strong", "surface", "page", "danger-medium", "bogus"}

	for _, bg := range tokens {
		for _, solid := range tokens {
			got := Resolve(Grid, Props{Background: bg, Solid: solid})
			count := 0
			bgC, bgOK := ParseColor(bg)
			solidC, solidOK := ParseColor(solid)
			if bgOK && got.HasClass(bgC.Class("background")) {
				count++
			}
			if solidOK && got.HasClass(solidC.Class("solid")) {
				count++
			}
			if bgOK || solidOK {
				assert.Equal(t, 1, count, "background=%q solid=%q", bg, solid)
			} else {
				assert.Equal(t, 0, count, "background=%q solid=%q", bg, solid)
			}
		}
	}
}

func TestResolveMutuallyExclusiveReportsUnknownLoser(t *testing.T) {
	got := Resolve(Flex, Props{OnBackground: "x", OnSolid: "brand-weak"})
	assert.True(t, got.HasClass("brand-on-solid-weak"))
	require.Len(t, got.Diagnostics, 2)
	assert.Equal(t, CodeConflict, got.Diagnostics[0].Code)
	assert.Equal(t, CodeUnknownColor, got.Diagnostics[1].Code)
	assert.Equal(t, "onBackground", got.Diagnostics[1].Field)

	got = Resolve(Flex, Props{Background: "neutral-weak", Solid: "bogus"})
	assert.True(t, got.HasClass("neutral-background-weak"))
	require.Len(t, got.Diagnostics, 2)
	assert.Equal(t, CodeUnknownColor, got.Diagnostics[1].Code)
	assert.Equal(t, "solid", got.Diagnostics[1].Field)

	// Both unknown: the first is kept and reported by the color step, the
	// second is reported as the loser.
	got = Resolve(Flex, Props{Background: "nope", Solid: "bogus"})
	codes := make([]string, len(got.Diagnostics))
	for i, d := range got.Diagnostics {
		codes[i] = d.Field + ":" + d.Code
	}
	assert.Equal(t, []string{"background:conflict", "solid:unknown-color", "background:unknown-color"}, codes)
}

func TestResolveUnknownColorContributesNothing(t *testing.T) {
	got := Resolve(Flex, Props{Background: "purple-strong"})
	assert.Equal(t, []string{"display-flex", "position-relative"}, got.Classes)
	require.Len(t, got.Diagnostics, 1)
	assert.Equal(t, CodeUnknownColor, got.Diagnostics[0].Code)
}

func TestResolveResponsiveFlexClasses(t *testing.T) {
	got := Resolve(Flex, Props{
		Direction:  "column",
		Horizontal: "center",
		Tiers: Overlays{
			M: &Overlay{
				Direction:  "row",
				Horizontal: "start",
				Hide:       Bool(true),
				Position:   "absolute",
			},
			XS: &Overlay{Hide: Bool(true)},
			L:  &Overlay{Hide: Bool(false)},
		},
	})

	assert.Equal(t, []string{
		"display-flex",
		"position-relative",
		"m-position-absolute",
		"m-flex-hide",
		"flex-column",
		"m-flex-row",
		"align-center",
		"m-justify-start",
	}, got.Classes)
}

func TestResolveGrid(t *testing.T) {
	got := Resolve(Grid, Props{
		Columns: "3",
		Gap:     "16",
		Padding: "8",
		Top:     "8",
		Hide:    true,
		Fill:    true,
		Tiers: Overlays{
			S: &Overlay{Columns: "1", Top: "4"},
		},
	})

	assert.Equal(t, []string{
		"display-grid",
		"position-relative",
		"grid-hide",
		"p-8",
		"g-16",
		"top-8",
		"s-top-4",
		"columns-3",
		"s-columns-1",
		"fill",
	}, got.Classes)
}

func TestResolveGapCollapse(t *testing.T) {
	assert.True(t, Resolve(Flex, Props{Gap: "-1", Direction: "column"}).HasClass("g-vertical--1"))
	assert.True(t, Resolve(Flex, Props{Gap: "-1"}).HasClass("g-horizontal--1"))
	assert.True(t, Resolve(Grid, Props{Gap: "-1"}).HasClass("g--1"))
}

func TestResolveStickyDefaultsTop(t *testing.T) {
	got := Resolve(Flex, Props{Position: "sticky"})
	assert.Equal(t, []string{"display-flex", "position-sticky", "top-0"}, got.Classes)

	got = Resolve(Flex, Props{Position: "sticky", Top: "16"})
	assert.Equal(t, []string{"display-flex", "position-sticky", "top-16"}, got.Classes)
}

func TestResolveFillDeduplicates(t *testing.T) {
	got := Resolve(Flex, Props{Fill: true, FillWidth: true})
	assert.Equal(t, []string{
		"display-flex", "position-relative",
		"fill", "min-width-0", "min-height-0", "fill-width",
	}, got.Classes)
}

func TestResolveInlineStyle(t *testing.T) {
	got := Resolve(Flex, Props{
		Width:       dimension.Rem(42),
		MaxWidth:    dimension.Token("m"),
		Height:      dimension.Token("xl"),
		MinHeight:   dimension.Token("unknown"),
		AspectRatio: "16/9",
		Cursor:      "pointer",
		Style:       Style{"opacity": "0.5", "width": "10px"},
	})

	assert.Equal(t, Style{
		"max-width":    "var(--responsive-width-m)",
		"width":        "10px",
		"height":       "var(--responsive-height-xl)",
		"aspect-ratio": "16/9",
		"cursor":       "pointer",
		"opacity":      "0.5",
	}, got.Style)
	assert.True(t, got.HasClass("fill-width"))
	assert.True(t, got.HasClass("cursor-pointer"))
}

func TestResolveTypography(t *testing.T) {
	got := Resolve(Flex, Props{TextVariant: "body-default-xs", ClassName: "custom  extra"})
	n := len(got.Classes)
	assert.Equal(t, []string{"custom", "extra", "font-body", "font-default", "font-xs"}, got.Classes[n-5:])

	got = Resolve(Flex, Props{TextSize: "m", TextWeight: "strong", TextType: "label"})
	assert.Equal(t, []string{"display-flex", "position-relative", "font-label", "font-m", "font-strong"}, got.Classes)

	got = Resolve(Flex, Props{TextVariant: "bad"})
	require.Len(t, got.Diagnostics, 1)
	assert.Equal(t, CodeUnknownVariant, got.Diagnostics[0].Code)
}

func TestResolveNumericProps(t *testing.T) {
	got := Resolve(Flex, Props{ZIndex: Int(0), Opacity: Int(50)})
	assert.True(t, got.HasClass("z-index-0"))
	assert.True(t, got.HasClass("opacity-50"))
}

func TestResolveRadius(t *testing.T) {
	got := Resolve(Flex, Props{Radius: "full", TopLeftRadius: "l", BottomRadius: "s"})
	assert.Equal(t, []string{
		"display-flex", "position-relative",
		"radius-full", "radius-s-bottom", "radius-l-top-left",
	}, got.Classes)

	assert.True(t, Resolve(Flex, Props{Radius: "m-4"}).HasClass("radius-m-4"))
}

func TestResolveIsPure(t *testing.T) {
	inputs := []Props{
		{},
		{Background: "neutral-weak", Solid: "brand-strong", OnBackground: "x", OnSolid: "brand-weak"},
		{Direction: "row", Horizontal: "between", Vertical: "center", Tiers: Overlays{S: &Overlay{Direction: "column"}}},
		{Width: dimension.Rem(3), Style: Style{"color": "red"}, ClassName: "a b a"},
	}

	for _, p := range inputs {
		for _, layout := range []Layout{Flex, Grid} {
			first := Resolve(layout, p)
			for i := 0; i < 5; i++ {
				again := Resolve(layout, p)
				require.Equal(t, first, again)
				require.Equal(t, first.Class(), again.Class())
				require.Equal(t, first.Style.String(), again.Style.String())
			}
		}
	}
}

func TestStyleString(t *testing.T) {
	s := Style{"width": "1rem", "aspect-ratio": "1", "color": ""}
	assert.Equal(t, "aspect-ratio: 1; width: 1rem;", s.String())
	assert.Equal(t, "", Style(nil).String())

	clone := s.Clone()
	clone["width"] = "2rem"
	assert.Equal(t, "1rem", s["width"])
	assert.Nil(t, Style(nil).Clone())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		token string
		kind  string
		want  string
		ok    bool
	}{
		{"neutral-strong", "background", "neutral-background-strong", true},
		{"brand-alpha-weak", "border", "brand-border-alpha-weak", true},
		{"surface", "background", "surface-background", true},
		{"overlay", "solid", "overlay-solid", true},
		{"transparent", "background", "transparent-border", true},
		{"brand-bright", "background", "", false},
		{"brand-alpha", "background", "", false},
		{"", "background", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			c, ok := ParseColor(tt.token)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, c.Class(tt.kind))
			}
		})
	}
}
