package style

import (
	"github.com/pthm/hxui/lib/breakpoint"
	"github.com/pthm/hxui/lib/dimension"
)

// Layout selects the display model a prop bag is resolved for.
type Layout int

const (
	Flex Layout = iota
	Grid
)

func (l Layout) String() string {
	if l == Grid {
		return "grid"
	}
	return "flex"
}

// Props is the style intent table for one element. Every field is optional;
// the zero value (empty string, false, nil, zero Value) means absent.
//
// Color fields take tokens understood by ParseColor. Spacing fields take
// spacing steps ("0", "4", "16", ...). Width and height fields take
// dimension Values.
type Props struct {
	// Display
	Inline        bool   `yaml:"inline,omitempty"`
	Hide          bool   `yaml:"hide,omitempty"`
	Dark          bool   `yaml:"dark,omitempty"`
	Light         bool   `yaml:"light,omitempty"`
	Position      string `yaml:"position,omitempty"`
	Overflow      string `yaml:"overflow,omitempty"`
	OverflowX     string `yaml:"overflowX,omitempty"`
	OverflowY     string `yaml:"overflowY,omitempty"`
	PointerEvents string `yaml:"pointerEvents,omitempty"`
	Transition    string `yaml:"transition,omitempty"`
	Opacity       *int   `yaml:"opacity,omitempty"`
	ZIndex        *int   `yaml:"zIndex,omitempty"`

	// Flex layout
	Direction  string `yaml:"direction,omitempty"`
	Horizontal string `yaml:"horizontal,omitempty"`
	Vertical   string `yaml:"vertical,omitempty"`
	Center     bool   `yaml:"center,omitempty"`
	Wrap       bool   `yaml:"wrap,omitempty"`
	Flex       string `yaml:"flex,omitempty"`

	// Grid layout
	Columns string `yaml:"columns,omitempty"`

	// Typography
	TextVariant  string `yaml:"textVariant,omitempty"`
	TextSize     string `yaml:"textSize,omitempty"`
	TextWeight   string `yaml:"textWeight,omitempty"`
	TextType     string `yaml:"textType,omitempty"`
	OnBackground string `yaml:"onBackground,omitempty"`
	OnSolid      string `yaml:"onSolid,omitempty"`
	Align        string `yaml:"align,omitempty"`

	// Offsets
	Top    string `yaml:"top,omitempty"`
	Right  string `yaml:"right,omitempty"`
	Bottom string `yaml:"bottom,omitempty"`
	Left   string `yaml:"left,omitempty"`

	// Spacing
	Padding       string `yaml:"padding,omitempty"`
	PaddingLeft   string `yaml:"paddingLeft,omitempty"`
	PaddingRight  string `yaml:"paddingRight,omitempty"`
	PaddingTop    string `yaml:"paddingTop,omitempty"`
	PaddingBottom string `yaml:"paddingBottom,omitempty"`
	PaddingX      string `yaml:"paddingX,omitempty"`
	PaddingY      string `yaml:"paddingY,omitempty"`
	Margin        string `yaml:"margin,omitempty"`
	MarginLeft    string `yaml:"marginLeft,omitempty"`
	MarginRight   string `yaml:"marginRight,omitempty"`
	MarginTop     string `yaml:"marginTop,omitempty"`
	MarginBottom  string `yaml:"marginBottom,omitempty"`
	MarginX       string `yaml:"marginX,omitempty"`
	MarginY       string `yaml:"marginY,omitempty"`
	Gap           string `yaml:"gap,omitempty"`

	// Size
	Width       dimension.Value `yaml:"width,omitempty"`
	Height      dimension.Value `yaml:"height,omitempty"`
	MinWidth    dimension.Value `yaml:"minWidth,omitempty"`
	MaxWidth    dimension.Value `yaml:"maxWidth,omitempty"`
	MinHeight   dimension.Value `yaml:"minHeight,omitempty"`
	MaxHeight   dimension.Value `yaml:"maxHeight,omitempty"`
	Fit         bool            `yaml:"fit,omitempty"`
	FitWidth    bool            `yaml:"fitWidth,omitempty"`
	FitHeight   bool            `yaml:"fitHeight,omitempty"`
	Fill        bool            `yaml:"fill,omitempty"`
	FillWidth   bool            `yaml:"fillWidth,omitempty"`
	FillHeight  bool            `yaml:"fillHeight,omitempty"`
	AspectRatio string          `yaml:"aspectRatio,omitempty"`

	// Paint
	Background   string `yaml:"background,omitempty"`
	Solid        string `yaml:"solid,omitempty"`
	Border       string `yaml:"border,omitempty"`
	BorderTop    string `yaml:"borderTop,omitempty"`
	BorderRight  string `yaml:"borderRight,omitempty"`
	BorderBottom string `yaml:"borderBottom,omitempty"`
	BorderLeft   string `yaml:"borderLeft,omitempty"`
	BorderX      string `yaml:"borderX,omitempty"`
	BorderY      string `yaml:"borderY,omitempty"`
	BorderStyle  string `yaml:"borderStyle,omitempty"`
	BorderWidth  int    `yaml:"borderWidth,omitempty"`
	Shadow       string `yaml:"shadow,omitempty"`
	Cursor       string `yaml:"cursor,omitempty"`

	// Radius
	Radius            string `yaml:"radius,omitempty"`
	TopRadius         string `yaml:"topRadius,omitempty"`
	RightRadius       string `yaml:"rightRadius,omitempty"`
	BottomRadius      string `yaml:"bottomRadius,omitempty"`
	LeftRadius        string `yaml:"leftRadius,omitempty"`
	TopLeftRadius     string `yaml:"topLeftRadius,omitempty"`
	TopRightRadius    string `yaml:"topRightRadius,omitempty"`
	BottomLeftRadius  string `yaml:"bottomLeftRadius,omitempty"`
	BottomRightRadius string `yaml:"bottomRightRadius,omitempty"`

	// Escape hatches, applied last.
	ClassName string `yaml:"className,omitempty"`
	Style     Style  `yaml:"style,omitempty"`

	// Per-tier overlays.
	Tiers Overlays `yaml:"tiers,omitempty"`
}

// Overlay is a per-tier partial override of layout, style and visibility.
// Hide is tri-state: nil means the tier does not declare visibility.
type Overlay struct {
	Hide        *bool  `yaml:"hide,omitempty" msgpack:"h,omitempty"`
	Position    string `yaml:"position,omitempty" msgpack:"p,omitempty"`
	Direction   string `yaml:"direction,omitempty" msgpack:"d,omitempty"`
	Horizontal  string `yaml:"horizontal,omitempty" msgpack:"jh,omitempty"`
	Vertical    string `yaml:"vertical,omitempty" msgpack:"jv,omitempty"`
	Columns     string `yaml:"columns,omitempty" msgpack:"c,omitempty"`
	Overflow    string `yaml:"overflow,omitempty" msgpack:"o,omitempty"`
	OverflowX   string `yaml:"overflowX,omitempty" msgpack:"ox,omitempty"`
	OverflowY   string `yaml:"overflowY,omitempty" msgpack:"oy,omitempty"`
	Top         string `yaml:"top,omitempty" msgpack:"t,omitempty"`
	Right       string `yaml:"right,omitempty" msgpack:"r,omitempty"`
	Bottom      string `yaml:"bottom,omitempty" msgpack:"b,omitempty"`
	Left        string `yaml:"left,omitempty" msgpack:"l,omitempty"`
	AspectRatio string `yaml:"aspectRatio,omitempty" msgpack:"ar,omitempty"`
	Style       Style  `yaml:"style,omitempty" msgpack:"s,omitempty"`
}

// Overlays holds at most one overlay per tier.
type Overlays struct {
	XL *Overlay `yaml:"xl,omitempty" msgpack:"xl,omitempty"`
	L  *Overlay `yaml:"l,omitempty" msgpack:"l,omitempty"`
	M  *Overlay `yaml:"m,omitempty" msgpack:"m,omitempty"`
	S  *Overlay `yaml:"s,omitempty" msgpack:"s,omitempty"`
	XS *Overlay `yaml:"xs,omitempty" msgpack:"xs,omitempty"`
}

// At returns the overlay declared for tier, or nil.
func (o Overlays) At(tier breakpoint.Tier) *Overlay {
	switch tier {
	case breakpoint.XL:
		return o.XL
	case breakpoint.L:
		return o.L
	case breakpoint.M:
		return o.M
	case breakpoint.S:
		return o.S
	case breakpoint.XS:
		return o.XS
	}
	return nil
}

// Bool returns a pointer to b, for tri-state overlay fields.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to n, for optional numeric props.
func Int(n int) *int { return &n }
