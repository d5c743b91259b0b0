package hxui

import (
	"context"
	"io"
	"maps"
	"math"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/pthm/hxui/lib/dimension"
	"github.com/pthm/hxui/lib/style"
)

// ButtonProps configures a Button.
type ButtonProps struct {
	ID    string
	Label string
	Href  string // renders an anchor instead of a button

	Variant    string // primary (default), secondary, tertiary, danger
	Size       string // s, m (default), l
	Radius     string // none, or a side/corner such as top or bottom-left
	Weight     string // default, strong (default)
	Horizontal string // justify content, center by default

	Disabled  bool
	FillWidth bool

	ClassName string
	Style     style.Style
	Attrs     templ.Attributes
}

// ButtonClasses returns the classes of a button, in render order.
func ButtonClasses(p ButtonProps) []string {
	variant := or(p.Variant, "primary")
	size := or(p.Size, "m")
	horizontal := or(p.Horizontal, "center")

	radiusSize := "l"
	if size == "s" || size == "m" {
		radiusSize = "m"
	}
	radius := "radius-" + radiusSize
	switch p.Radius {
	case "":
	case "none":
		radius = "radius-none"
	default:
		radius += "-" + p.Radius
	}

	classes := []string{"button", "button-" + variant, "button-" + size, radius, "text-decoration-none"}
	if p.Disabled {
		classes = append(classes, "cursor-not-allowed")
	} else {
		classes = append(classes, "cursor-interactive")
	}
	if p.FillWidth {
		classes = append(classes, "fill-width")
	} else {
		classes = append(classes, "fit-width")
	}
	classes = append(classes, "justify-"+horizontal)
	return append(classes, strings.Fields(p.ClassName)...)
}

// Button renders a button, or an anchor when Href is set. The label (or the
// children) sit in a padded label flex sized like the button.
func Button(p ButtonProps, children ...templ.Component) templ.Component {
	attrs := maps.Clone(p.Attrs)
	if attrs == nil {
		attrs = templ.Attributes{}
	}

	tag := "button"
	if p.Href != "" {
		tag = "a"
		attrs["href"] = p.Href
		if p.Disabled {
			attrs["aria-disabled"] = "true"
		}
	} else {
		if _, ok := attrs["type"]; !ok {
			attrs["type"] = "button"
		}
		attrs["disabled"] = p.Disabled
	}

	var content []templ.Component
	if p.Label != "" || len(children) > 0 {
		inner := children
		if p.Label != "" {
			inner = []templ.Component{text(p.Label)}
		}
		content = append(content, ServerFlex(Props{Props: style.Props{
			PaddingX:   "4",
			PaddingY:   "0",
			TextWeight: or(p.Weight, "strong"),
			TextSize:   or(p.Size, "m"),
			ClassName:  "font-label",
		}}, inner...))
	}

	return element{
		tag:      tag,
		id:       p.ID,
		classes:  ButtonClasses(p),
		style:    p.Style,
		attrs:    attrs,
		children: content,
	}
}

// CardProps configures a Card.
type CardProps struct {
	Props

	Href        string
	Interactive bool // focusable, with a button role
	FillHeight  bool
}

// Card renders a surface panel inside a focusable wrapper. The surface
// defaults (background, border, transition, cursor) apply only where the
// caller left a field empty.
func Card(p CardProps, children ...templ.Component) templ.Component {
	focusable := p.Interactive || p.Href != ""

	outer := element{
		tag:     "div",
		classes: []string{"reset-button-styles", "display-flex", "fill-width"},
		attrs:   templ.Attributes{"role": "none"},
	}
	if p.FillHeight {
		outer.classes = append(outer.classes, "fill-height")
	}
	outer.classes = append(outer.classes, "min-width-0")
	if focusable {
		outer.classes = append(outer.classes, "focus-ring", "radius-l")
		outer.attrs["tabindex"] = "0"
	}
	switch {
	case p.Href != "":
		outer.tag = "a"
		outer.attrs["href"] = p.Href
		outer.attrs["role"] = "link"
	case p.Interactive:
		outer.attrs["role"] = "button"
	}

	inner := p.Props
	sp := &inner.Props
	def(&sp.Background, "surface")
	def(&sp.OnBackground, "neutral-strong")
	def(&sp.Transition, "macro-medium")
	def(&sp.Border, "neutral-medium")
	def(&sp.Cursor, "interactive")
	def(&sp.Align, "left")
	sp.ClassName = strings.TrimSpace("card " + sp.ClassName)

	outer.children = []templ.Component{ServerFlex(inner, children...)}
	return outer
}

// TooltipProps configures a Tooltip.
type TooltipProps struct {
	Props

	Label string
}

// Tooltip renders a small labelled surface. It is hidden from the m tier
// down unless the caller declares otherwise for m.
func Tooltip(p TooltipProps, children ...templ.Component) templ.Component {
	sp := p.Props.Props
	if sp.Tiers.M == nil {
		sp.Tiers.M = &style.Overlay{Hide: style.Bool(true)}
	} else if sp.Tiers.M.Hide == nil {
		m := *sp.Tiers.M
		m.Hide = style.Bool(true)
		sp.Tiers.M = &m
	}

	st := style.Style{"white-space": "nowrap", "user-select": "none"}
	maps.Copy(st, sp.Style)
	sp.Style = st

	def(&sp.Vertical, "center")
	def(&sp.Gap, "4")
	def(&sp.Background, "surface")
	def(&sp.PaddingY, "4")
	def(&sp.PaddingX, "8")
	def(&sp.Radius, "s")
	def(&sp.Border, "neutral-medium")
	if sp.ZIndex == nil {
		sp.ZIndex = style.Int(1)
	}

	attrs := maps.Clone(p.Attrs)
	if attrs == nil {
		attrs = templ.Attributes{}
	}
	attrs["role"] = "tooltip"

	label := ServerFlex(Props{Props: style.Props{
		PaddingX:     "2",
		Vertical:     "center",
		TextVariant:  "body-default-xs",
		OnBackground: "neutral-strong",
	}}, text(p.Label))

	return ServerFlex(Props{Props: sp, ID: p.ID, Tag: p.Tag, Attrs: attrs}, append([]templ.Component{label}, children...)...)
}

// ProgressBarProps configures a ProgressBar.
type ProgressBarProps struct {
	Props

	Value float64
	Min   float64
	Max   float64 // 100 when zero

	HideLabel     bool
	BarBackground string // solid color token, brand-strong by default
}

// Percent maps value onto [lo, hi] as a percentage clamped to [0, 100].
// An empty range yields 0.
func Percent(value, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return math.Max(0, math.Min(100, (value-lo)/(hi-lo)*100))
}

// ProgressBar renders a track and a bar filled to the clamped percentage,
// with the raw value as a label underneath.
func ProgressBar(p ProgressBarProps) templ.Component {
	hi := p.Max
	if hi == 0 {
		hi = 100
	}
	pct := Percent(p.Value, p.Min, hi)

	column := p.Props
	cp := &column.Props
	def(&cp.Direction, "column")
	def(&cp.Horizontal, "center")
	def(&cp.Gap, "16")
	cp.FillWidth = true

	bar := ServerFlex(Props{Props: style.Props{
		FillHeight: true,
		Solid:      or(p.BarBackground, "brand-strong"),
		Radius:     "full",
		Style: style.Style{
			"width":      formatFloat(pct) + "%",
			"transition": "width 1000ms ease-in-out",
		},
	}})

	track := ServerFlex(Props{
		Props: style.Props{
			Background: "neutral-medium",
			Border:     "neutral-alpha-weak",
			FillWidth:  true,
			Radius:     "full",
			Overflow:   "hidden",
			Height:     dimension.Token("8"),
		},
		Attrs: templ.Attributes{
			"role":          "progressbar",
			"aria-valuenow": formatFloat(p.Value),
			"aria-valuemin": formatFloat(p.Min),
			"aria-valuemax": formatFloat(hi),
		},
	}, bar)

	children := []templ.Component{track}
	if !p.HideLabel {
		children = append(children, ServerFlex(Props{Props: style.Props{Align: "center"}}, text(formatFloat(p.Value)+"%")))
	}
	return ServerFlex(column, children...)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func def(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// Raw renders trusted markup unescaped.
func Raw(html string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	})
}

// Text renders s HTML-escaped.
func Text(s string) templ.Component {
	return text(s)
}
