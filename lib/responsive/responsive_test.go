package responsive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pthm/hxui/lib/breakpoint"
	"github.com/pthm/hxui/lib/style"
)

func TestHiddenLargeTierTricklesDown(t *testing.T) {
	overlays := style.Overlays{L: &style.Overlay{Hide: style.Bool(true)}}

	want := map[breakpoint.Tier]bool{
		breakpoint.XL: false,
		breakpoint.L:  true,
		breakpoint.M:  true,
		breakpoint.S:  true,
		breakpoint.XS: true,
	}
	for tier, hidden := range want {
		assert.Equal(t, hidden, Hidden(false, overlays, tier), "tier %s", tier)
	}
}

func TestHiddenSmallTierOverride(t *testing.T) {
	overlays := style.Overlays{S: &style.Overlay{Hide: style.Bool(false)}}

	want := map[breakpoint.Tier]bool{
		breakpoint.XL: true,
		breakpoint.L:  true,
		breakpoint.M:  true,
		breakpoint.S:  false,
		breakpoint.XS: false,
	}
	for tier, hidden := range want {
		assert.Equal(t, hidden, Hidden(true, overlays, tier), "tier %s", tier)
	}
}

func TestHiddenCheckOrder(t *testing.T) {
	tests := []struct {
		name     string
		base     bool
		overlays style.Overlays
		tier     breakpoint.Tier
		want     bool
	}{
		{
			name:     "xl ignores smaller tiers",
			overlays: style.Overlays{L: &style.Overlay{Hide: style.Bool(true)}, M: &style.Overlay{Hide: style.Bool(true)}},
			tier:     breakpoint.XL,
			want:     false,
		},
		{
			name:     "l ignores xl",
			overlays: style.Overlays{XL: &style.Overlay{Hide: style.Bool(true)}},
			tier:     breakpoint.L,
			want:     false,
		},
		{
			name:     "m inherits xl when l is silent",
			overlays: style.Overlays{XL: &style.Overlay{Hide: style.Bool(true)}},
			tier:     breakpoint.M,
			want:     true,
		},
		{
			name: "m prefers l over xl",
			overlays: style.Overlays{
				XL: &style.Overlay{Hide: style.Bool(true)},
				L:  &style.Overlay{Hide: style.Bool(false)},
			},
			tier: breakpoint.M,
			want: false,
		},
		{
			name: "xs own declaration wins",
			base: true,
			overlays: style.Overlays{
				XS: &style.Overlay{Hide: style.Bool(false)},
				S:  &style.Overlay{Hide: style.Bool(true)},
			},
			tier: breakpoint.XS,
			want: false,
		},
		{
			name:     "overlay without hide is skipped",
			base:     true,
			overlays: style.Overlays{S: &style.Overlay{Columns: "2"}, M: &style.Overlay{Hide: style.Bool(false)}},
			tier:     breakpoint.S,
			want:     false,
		},
		{
			name: "nothing declared uses base",
			base: true,
			tier: breakpoint.XS,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hidden(tt.base, tt.overlays, tt.tier))
		})
	}
}

type panickingSource struct{}

func (panickingSource) CurrentBreakpoint() breakpoint.Tier { panic("provider missing") }
func (panickingSource) Measured() bool                    { return true }

type fixedSource breakpoint.Tier

func (f fixedSource) CurrentBreakpoint() breakpoint.Tier { return breakpoint.Tier(f) }
func (fixedSource) Measured() bool                       { return true }

func TestHiddenFromFailsSoft(t *testing.T) {
	overlays := style.Overlays{L: &style.Overlay{Hide: style.Bool(true)}}

	assert.False(t, HiddenFrom(nil, false, overlays))
	assert.True(t, HiddenFrom(nil, true, overlays))
	assert.False(t, HiddenFrom(panickingSource{}, false, overlays))
	assert.False(t, HiddenFrom(fixedSource(42), false, overlays))

	var nilTracker *breakpoint.Tracker
	assert.False(t, HiddenFrom(nilTracker, false, overlays))

	unmeasured := breakpoint.NewTracker(breakpoint.DefaultTable)
	assert.False(t, HiddenFrom(unmeasured, false, overlays))

	tracker := breakpoint.NewTracker(breakpoint.DefaultTable)
	tracker.Update(500)
	assert.True(t, HiddenFrom(tracker, false, overlays))
}

func TestMergeExactTierOnly(t *testing.T) {
	base := style.Props{
		Direction: "row",
		Columns:   "4",
		Style:     style.Style{"opacity": "1", "color": "red"},
		Tiers: style.Overlays{
			M: &style.Overlay{
				Direction:   "column",
				Columns:     "2",
				AspectRatio: "1/1",
				Style:       style.Style{"opacity": "0.5"},
			},
		},
	}

	eff := Merge(base, breakpoint.M)
	assert.Equal(t, "column", eff.Props.Direction)
	assert.Equal(t, "2", eff.Props.Columns)
	assert.Equal(t, "1/1", eff.Props.AspectRatio)
	assert.Equal(t, style.Style{"opacity": "0.5", "color": "red"}, eff.Props.Style)
	assert.Same(t, base.Tiers.M, eff.Overlay)
	assert.Equal(t, "1", base.Style["opacity"], "merge must not mutate base style")

	eff = Merge(base, breakpoint.S)
	assert.Equal(t, "row", eff.Props.Direction)
	assert.Equal(t, "4", eff.Props.Columns)
	assert.Nil(t, eff.Overlay)
	assert.Equal(t, base.Style, eff.Props.Style)
}

func TestMergeCarriesHidden(t *testing.T) {
	base := style.Props{Tiers: style.Overlays{L: &style.Overlay{Hide: style.Bool(true)}}}

	eff := Merge(base, breakpoint.S)
	assert.True(t, eff.Hidden)
	assert.True(t, eff.Props.Hide)

	eff = Merge(base, breakpoint.XL)
	assert.False(t, eff.Hidden)
}

func TestMergeFrom(t *testing.T) {
	base := style.Props{Hide: true, Tiers: style.Overlays{S: &style.Overlay{Hide: style.Bool(false)}}}

	eff, ok := MergeFrom(nil, base)
	assert.False(t, ok)
	assert.True(t, eff.Hidden)

	eff, ok = MergeFrom(fixedSource(breakpoint.S), base)
	assert.True(t, ok)
	assert.False(t, eff.Hidden)
	assert.Equal(t, breakpoint.S, eff.Tier)
}
