// Package responsive merges per-tier overlays into a base prop bag.
//
// Style and layout overrides apply only at the exact active tier. Visibility
// is different: a hide declared for a larger tier trickles down to smaller
// tiers until a smaller tier declares its own.
package responsive

import (
	"github.com/pthm/hxui/lib/breakpoint"
	"github.com/pthm/hxui/lib/style"
)

// TierSource reports the active tier. *breakpoint.Tracker satisfies it.
type TierSource interface {
	CurrentBreakpoint() breakpoint.Tier
	Measured() bool
}

// Effective is the merged prop set for one tier.
type Effective struct {
	Tier    breakpoint.Tier
	Props   style.Props
	Hidden  bool
	Overlay *style.Overlay
}

// cascade lists, per tier, the overlays consulted for visibility in order.
// xl and l consult only themselves; smaller tiers inherit from m, l and xl.
var cascade = map[breakpoint.Tier][]breakpoint.Tier{
	breakpoint.XL: {breakpoint.XL},
	breakpoint.L:  {breakpoint.L},
	breakpoint.M:  {breakpoint.M, breakpoint.L, breakpoint.XL},
	breakpoint.S:  {breakpoint.S, breakpoint.M, breakpoint.L, breakpoint.XL},
	breakpoint.XS: {breakpoint.XS, breakpoint.S, breakpoint.M, breakpoint.L, breakpoint.XL},
}

// Hidden resolves visibility at tier. The first overlay in the tier's
// cascade that declares Hide wins; otherwise base applies.
func Hidden(base bool, overlays style.Overlays, tier breakpoint.Tier) bool {
	for _, t := range cascade[tier] {
		if o := overlays.At(t); o != nil && o.Hide != nil {
			return *o.Hide
		}
	}
	return base
}

// HiddenFrom resolves visibility at src's active tier. It falls back to base
// when src is nil, has not measured yet, reports an invalid tier, or panics.
func HiddenFrom(src TierSource, base bool, overlays style.Overlays) bool {
	tier, ok := currentTier(src)
	if !ok {
		return base
	}
	return Hidden(base, overlays, tier)
}

func currentTier(src TierSource) (tier breakpoint.Tier, ok bool) {
	if src == nil {
		return 0, false
	}
	defer func() {
		if recover() != nil {
			tier, ok = 0, false
		}
	}()
	if !src.Measured() {
		return 0, false
	}
	tier = src.CurrentBreakpoint()
	return tier, tier.Valid()
}

// Merge applies the overlay for exactly tier onto base and resolves the
// cascaded visibility. Fields the overlay leaves empty keep their base value;
// overlay style entries override base style entries.
func Merge(base style.Props, tier breakpoint.Tier) Effective {
	eff := Effective{
		Tier:   tier,
		Props:  base,
		Hidden: Hidden(base.Hide, base.Tiers, tier),
	}
	eff.Props.Hide = eff.Hidden

	o := base.Tiers.At(tier)
	if o == nil {
		return eff
	}
	eff.Overlay = o

	p := &eff.Props
	override(&p.Position, o.Position)
	override(&p.Direction, o.Direction)
	override(&p.Horizontal, o.Horizontal)
	override(&p.Vertical, o.Vertical)
	override(&p.Columns, o.Columns)
	override(&p.Overflow, o.Overflow)
	override(&p.OverflowX, o.OverflowX)
	override(&p.OverflowY, o.OverflowY)
	override(&p.Top, o.Top)
	override(&p.Right, o.Right)
	override(&p.Bottom, o.Bottom)
	override(&p.Left, o.Left)
	override(&p.AspectRatio, o.AspectRatio)

	if len(o.Style) > 0 {
		merged := base.Style.Clone()
		if merged == nil {
			merged = style.Style{}
		}
		for k, v := range o.Style {
			merged[k] = v
		}
		p.Style = merged
	}
	return eff
}

// MergeFrom merges at src's active tier, or returns base unchanged (with its
// own Hide) when the tier cannot be determined.
func MergeFrom(src TierSource, base style.Props) (Effective, bool) {
	tier, ok := currentTier(src)
	if !ok {
		return Effective{Props: base, Hidden: base.Hide}, false
	}
	return Merge(base, tier), true
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
