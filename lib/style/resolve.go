// Package style maps a prop bag of style intents to class names and an
// inline style.
//
// Resolve is pure: the same Layout and Props always produce the same class
// list, in the same order, and the same style map. The class names are a
// contract consumers may snapshot; the order below is part of it.
//
//  1. display, position (+ l/m/s), hide (+ l/m/s)
//  2. padding, margin, gap
//  3. top/right/bottom/left, each followed by its l/m/s variants
//  4. background | solid, border color, border defaults and sides
//  5. radius
//  6. direction (+ l/m/s) for flex, columns (+ l/m/s) for grid
//  7. pointer events, transition, opacity, wrap, overflow (+ l/m/s), flex
//  8. justify/align (+ l/m/s), center, fit/fill sizing
//  9. shadow, z-index, font type, cursor, dark/light, text color,
//     className, text variant
//
// Duplicate class names collapse to their first occurrence.
package style

import (
	"strconv"
	"strings"

	"github.com/pthm/hxui/lib/breakpoint"
	"github.com/pthm/hxui/lib/dimension"
)

// Resolved is the class list and inline style for one render.
type Resolved struct {
	Classes     []string
	Style       Style
	Diagnostics []Diagnostic
}

// Class returns the class attribute value.
func (r Resolved) Class() string {
	return strings.Join(r.Classes, " ")
}

// HasClass reports whether name is in the class list.
func (r Resolved) HasClass(name string) bool {
	return contains(r.Classes, name)
}

// responsiveTiers are the tiers with static media-query classes.
var responsiveTiers = []breakpoint.Tier{breakpoint.L, breakpoint.M, breakpoint.S}

var spacingRules = []struct {
	prefix string
	get    func(*Props) string
}{
	{"p-", func(p *Props) string { return p.Padding }},
	{"pl-", func(p *Props) string { return p.PaddingLeft }},
	{"pr-", func(p *Props) string { return p.PaddingRight }},
	{"pt-", func(p *Props) string { return p.PaddingTop }},
	{"pb-", func(p *Props) string { return p.PaddingBottom }},
	{"px-", func(p *Props) string { return p.PaddingX }},
	{"py-", func(p *Props) string { return p.PaddingY }},
	{"m-", func(p *Props) string { return p.Margin }},
	{"ml-", func(p *Props) string { return p.MarginLeft }},
	{"mr-", func(p *Props) string { return p.MarginRight }},
	{"mt-", func(p *Props) string { return p.MarginTop }},
	{"mb-", func(p *Props) string { return p.MarginBottom }},
	{"mx-", func(p *Props) string { return p.MarginX }},
	{"my-", func(p *Props) string { return p.MarginY }},
}

var offsetRules = []struct {
	name    string
	get     func(*Props) string
	overlay func(*Overlay) string
}{
	{"top", func(p *Props) string { return p.Top }, func(o *Overlay) string { return o.Top }},
	{"right", func(p *Props) string { return p.Right }, func(o *Overlay) string { return o.Right }},
	{"bottom", func(p *Props) string { return p.Bottom }, func(o *Overlay) string { return o.Bottom }},
	{"left", func(p *Props) string { return p.Left }, func(o *Overlay) string { return o.Left }},
}

var borderSides = []struct {
	class string
	get   func(*Props) string
}{
	{"border-top-1", func(p *Props) string { return p.BorderTop }},
	{"border-right-1", func(p *Props) string { return p.BorderRight }},
	{"border-bottom-1", func(p *Props) string { return p.BorderBottom }},
	{"border-left-1", func(p *Props) string { return p.BorderLeft }},
	{"border-x-1", func(p *Props) string { return p.BorderX }},
	{"border-y-1", func(p *Props) string { return p.BorderY }},
}

var radiusRules = []struct {
	suffix string
	get    func(*Props) string
}{
	{"-top", func(p *Props) string { return p.TopRadius }},
	{"-right", func(p *Props) string { return p.RightRadius }},
	{"-bottom", func(p *Props) string { return p.BottomRadius }},
	{"-left", func(p *Props) string { return p.LeftRadius }},
	{"-top-left", func(p *Props) string { return p.TopLeftRadius }},
	{"-top-right", func(p *Props) string { return p.TopRightRadius }},
	{"-bottom-left", func(p *Props) string { return p.BottomLeftRadius }},
	{"-bottom-right", func(p *Props) string { return p.BottomRightRadius }},
}

// Resolve maps p to its class list and inline style for layout.
func Resolve(layout Layout, p Props) Resolved {
	r := &resolver{layout: layout, p: &p, seen: make(map[string]struct{})}

	r.display()
	r.spacing()
	r.offsets()
	r.paint()
	r.border()
	r.radius()
	r.axis()
	r.effects()
	r.alignment()
	r.sizing()
	r.finish()

	return Resolved{
		Classes:     r.classes,
		Style:       inlineStyle(&p),
		Diagnostics: r.diags,
	}
}

type resolver struct {
	layout  Layout
	p       *Props
	classes []string
	seen    map[string]struct{}
	diags   []Diagnostic
}

func (r *resolver) add(names ...string) {
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, ok := r.seen[n]; ok {
			continue
		}
		r.seen[n] = struct{}{}
		r.classes = append(r.classes, n)
	}
}

func (r *resolver) addIf(cond bool, name string) {
	if cond {
		r.add(name)
	}
}

func (r *resolver) addValue(prefix, value string) {
	if value != "" {
		r.add(prefix + value)
	}
}

func (r *resolver) diag(code, field, msg string) {
	r.diags = append(r.diags, Diagnostic{Code: code, Field: field, Message: msg})
}

// eachTier calls fn for every l/m/s overlay that is declared.
func (r *resolver) eachTier(fn func(prefix string, o *Overlay)) {
	for _, t := range responsiveTiers {
		if o := r.p.Tiers.At(t); o != nil {
			fn(t.String()+"-", o)
		}
	}
}

func (r *resolver) display() {
	p := r.p
	kind := r.layout.String()
	if p.Inline {
		r.add("display-inline-" + kind)
	} else {
		r.add("display-" + kind)
	}

	position := p.Position
	if position == "" {
		position = "relative"
	}
	r.add("position-" + position)
	r.eachTier(func(prefix string, o *Overlay) { r.addValue(prefix+"position-", o.Position) })

	r.addIf(p.Hide, kind+"-hide")
	r.eachTier(func(prefix string, o *Overlay) {
		r.addIf(o.Hide != nil && *o.Hide, prefix+kind+"-hide")
	})
}

func (r *resolver) spacing() {
	for _, rule := range spacingRules {
		r.addValue(rule.prefix, rule.get(r.p))
	}

	gap := r.p.Gap
	if gap == "-1" && r.layout == Flex {
		if r.p.Direction == "column" || r.p.Direction == "column-reverse" {
			r.add("g-vertical--1")
		} else {
			r.add("g-horizontal--1")
		}
		return
	}
	r.addValue("g-", gap)
}

func (r *resolver) offsets() {
	for _, rule := range offsetRules {
		v := rule.get(r.p)
		if v == "" && rule.name == "top" && r.p.Position == "sticky" {
			v = "0"
		}
		r.addValue(rule.name+"-", v)
		r.eachTier(func(prefix string, o *Overlay) {
			r.addValue(prefix+rule.name+"-", rule.overlay(o))
		})
	}
}

// exclusive picks one member of a mutually exclusive pair: the first
// recognized one in declaration order. An unrecognized losing member is
// reported as well as the conflict.
func (r *resolver) exclusive(firstField, first, secondField, second string, known func(string) bool) (string, string) {
	if first != "" && second != "" {
		r.diag(CodeConflict, firstField,
			"cannot be combined with "+secondField+"; only one is applied")
		winField, win, loseField, lose := firstField, first, secondField, second
		if !known(first) && known(second) {
			winField, win, loseField, lose = secondField, second, firstField, first
		}
		if !known(lose) {
			r.diag(CodeUnknownColor, loseField, "unrecognized color token "+strconv.Quote(lose))
		}
		return winField, win
	}
	if first != "" {
		return firstField, first
	}
	return secondField, second
}

func (r *resolver) color(field, kind, token string) {
	if token == "" {
		return
	}
	c, ok := ParseColor(token)
	if !ok {
		r.diag(CodeUnknownColor, field, "unrecognized color token "+strconv.Quote(token))
		return
	}
	r.add(c.Class(kind))
}

func (r *resolver) paint() {
	knownColor := func(s string) bool { _, ok := ParseColor(s); return ok }
	field, token := r.exclusive("background", r.p.Background, "solid", r.p.Solid, knownColor)
	r.color(field, field, token)
}

func (r *resolver) border() {
	p := r.p
	anySide := false
	token := p.Border
	for _, side := range borderSides {
		if v := side.get(p); v != "" {
			anySide = true
			if token == "" {
				token = v
			}
		}
	}
	r.color("border", "border", token)

	r.addIf((p.Border != "" || anySide) && p.BorderStyle == "", "border-solid")
	r.addIf(p.Border != "" && p.BorderWidth == 0, "border-1")
	r.addIf(anySide, "border-reset")
	for _, side := range borderSides {
		r.addIf(side.get(p) != "", side.class)
	}
	if p.BorderWidth != 0 {
		r.add("border-" + strconv.Itoa(p.BorderWidth))
	}
	r.addValue("border-", p.BorderStyle)
}

func (r *resolver) radius() {
	r.addValue("radius-", r.p.Radius)
	for _, rule := range radiusRules {
		if v := rule.get(r.p); v != "" {
			r.add("radius-" + v + rule.suffix)
		}
	}
}

func (r *resolver) axis() {
	if r.layout == Grid {
		r.addValue("columns-", r.p.Columns)
		r.eachTier(func(prefix string, o *Overlay) { r.addValue(prefix+"columns-", o.Columns) })
		return
	}
	r.addValue("flex-", r.p.Direction)
	r.eachTier(func(prefix string, o *Overlay) { r.addValue(prefix+"flex-", o.Direction) })
}

func (r *resolver) effects() {
	p := r.p
	r.addValue("pointer-events-", p.PointerEvents)
	r.addValue("transition-", p.Transition)
	if p.Opacity != nil {
		r.add("opacity-" + strconv.Itoa(*p.Opacity))
	}
	r.addIf(p.Wrap && r.layout == Flex, "flex-wrap")

	r.addValue("overflow-", p.Overflow)
	r.addValue("overflow-x-", p.OverflowX)
	r.addValue("overflow-y-", p.OverflowY)
	r.eachTier(func(prefix string, o *Overlay) {
		r.addValue(prefix+"overflow-", o.Overflow)
		r.addValue(prefix+"overflow-x-", o.OverflowX)
		r.addValue(prefix+"overflow-y-", o.OverflowY)
	})

	if r.layout == Flex {
		r.addValue("flex-", p.Flex)
	}
}

// alignClasses maps horizontal/vertical intent onto justify/align depending
// on the main axis of direction.
func alignClasses(prefix, direction, horizontal, vertical string) (string, string) {
	row := direction == "" || direction == "row" || direction == "row-reverse"
	var h, v string
	if horizontal != "" {
		if row {
			h = prefix + "justify-" + horizontal
		} else {
			h = prefix + "align-" + horizontal
		}
	}
	if vertical != "" {
		if row {
			v = prefix + "align-" + vertical
		} else {
			v = prefix + "justify-" + vertical
		}
	}
	return h, v
}

func (r *resolver) alignment() {
	if r.layout != Flex {
		return
	}
	r.add(alignClasses("", r.p.Direction, r.p.Horizontal, r.p.Vertical))
	r.eachTier(func(prefix string, o *Overlay) {
		r.add(alignClasses(prefix, o.Direction, o.Horizontal, o.Vertical))
	})
	r.addIf(r.p.Center, "center")
}

func (r *resolver) sizing() {
	p := r.p
	r.addIf(p.Fit, "fit")
	r.addIf(p.FitWidth, "fit-width")
	r.addIf(p.FitHeight, "fit-height")
	r.addIf(p.Fill, "fill")
	if r.layout == Flex {
		r.addIf(p.FillWidth && p.MinWidth.IsZero(), "min-width-0")
		r.addIf(p.FillHeight && p.MinHeight.IsZero(), "min-height-0")
		r.addIf(p.Fill, "min-height-0")
		r.addIf(p.Fill, "min-width-0")
	}
	r.addIf(p.FillWidth || !p.MaxWidth.IsZero(), "fill-width")
	r.addIf(p.FillHeight || !p.MaxHeight.IsZero(), "fill-height")
}

func (r *resolver) finish() {
	p := r.p
	kind := r.layout.String()

	r.addValue("shadow-", p.Shadow)
	if p.ZIndex != nil {
		r.add("z-index-" + strconv.Itoa(*p.ZIndex))
	}
	r.addValue("font-", p.TextType)
	r.addValue("cursor-", p.Cursor)
	r.addIf(p.Dark, "dark-"+kind)
	r.addIf(p.Light, "light-"+kind)

	r.textColor()
	r.add(strings.Fields(p.ClassName)...)
	r.typography()
}

func (r *resolver) textColor() {
	known := func(s string) bool { _, ok := onClass(s, "background"); return ok }
	field, token := r.exclusive("onBackground", r.p.OnBackground, "onSolid", r.p.OnSolid, known)
	if token == "" {
		return
	}
	surface := "background"
	if field == "onSolid" {
		surface = "solid"
	}
	class, ok := onClass(token, surface)
	if !ok {
		r.diag(CodeUnknownColor, field, "unrecognized color token "+strconv.Quote(token))
		return
	}
	r.add(class)
}

func (r *resolver) typography() {
	p := r.p
	if p.TextVariant != "" {
		parts := strings.Split(p.TextVariant, "-")
		if len(parts) != 3 {
			r.diag(CodeUnknownVariant, "textVariant",
				"expected {type}-{weight}-{size}, got "+strconv.Quote(p.TextVariant))
			return
		}
		r.add("font-"+parts[0], "font-"+parts[1], "font-"+parts[2])
		return
	}
	r.addValue("font-", p.TextSize)
	r.addValue("font-", p.TextWeight)
}

func inlineStyle(p *Props) Style {
	s := Style{}
	dim := func(v dimension.Value, axis dimension.Axis) string {
		out, _ := dimension.Parse(v, axis)
		return out
	}
	s.set("max-width", dim(p.MaxWidth, dimension.Width))
	s.set("min-width", dim(p.MinWidth, dimension.Width))
	s.set("min-height", dim(p.MinHeight, dimension.Height))
	s.set("max-height", dim(p.MaxHeight, dimension.Height))
	s.set("width", dim(p.Width, dimension.Width))
	s.set("height", dim(p.Height, dimension.Height))
	s.set("aspect-ratio", p.AspectRatio)
	s.set("text-align", p.Align)
	if p.Cursor != "interactive" {
		s.set("cursor", p.Cursor)
	}
	for k, v := range p.Style {
		s[k] = v
	}
	return s
}
