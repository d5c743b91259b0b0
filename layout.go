package hxui

import (
	"context"
	"encoding/json"
	"io"
	"maps"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pthm/hxui/lib/breakpoint"
	"github.com/pthm/hxui/lib/cursor"
	"github.com/pthm/hxui/lib/live"
	"github.com/pthm/hxui/lib/patch"
	"github.com/pthm/hxui/lib/style"
)

// Props is the prop bag of a layout element: the style intent table plus
// the element's identity and extra attributes.
type Props struct {
	style.Props

	ID  string
	Tag string // defaults to div

	// Attrs are rendered after id, class and style, in name order.
	Attrs templ.Attributes
}

// ServerFlex renders a flex container whose classes and inline style come
// from the style resolver. Overlays for l, m and s are expressed as media
// query classes, so the markup is responsive without a live runtime.
func ServerFlex(p Props, children ...templ.Component) templ.Component {
	return serverElement(style.Flex, p, children)
}

// ServerGrid is the grid counterpart of ServerFlex.
func ServerGrid(p Props, children ...templ.Component) templ.Component {
	return serverElement(style.Grid, p, children)
}

func serverElement(layout style.Layout, p Props, children []templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		res := style.Resolve(layout, p.Props)
		logDiagnostics(ctx, p.ID, res.Diagnostics)
		return element{
			tag:      p.Tag,
			id:       p.ID,
			classes:  res.Classes,
			style:    res.Style,
			attrs:    p.Attrs,
			children: children,
		}.Render(ctx, w)
	})
}

func logDiagnostics(ctx context.Context, id string, diags []style.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	logger := zerolog.Ctx(ctx)
	for _, d := range diags {
		logger.Warn().Str("element", id).Str("code", d.Code).Str("field", d.Field).Msg(d.String())
	}
}

// ClientProps extends Props with the live behavior of client components.
type ClientProps struct {
	Props

	// Cursor, when set, replaces the native cursor over the element with a
	// follower on devices that are not touch-primary.
	Cursor *cursor.Descriptor
}

// ClientFlex renders a flex container that follows the viewport after
// load. On the server pass it renders the overlay and cascaded visibility
// of the request's tier; in the browser, each tier change posts the
// element's signed state to the registry, which answers with a style patch.
func ClientFlex(p ClientProps, children ...templ.Component) templ.Component {
	return clientElement(style.Flex, p, children)
}

// ClientGrid is the grid counterpart of ClientFlex.
func ClientGrid(p ClientProps, children ...templ.Component) templ.Component {
	return clientElement(style.Grid, p, children)
}

// liveState is the part of a client element's props needed to patch it
// later. It travels signed in the element's markup.
type liveState struct {
	ID     string         `msgpack:"id"`
	Layout style.Layout   `msgpack:"l"`
	Hide   bool           `msgpack:"h,omitempty"`
	Style  style.Style    `msgpack:"s,omitempty"`
	Tiers  style.Overlays `msgpack:"t"`
}

func clientElement(layout style.Layout, p ClientProps, children []templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		id := p.ID
		if id == "" {
			id = layout.String() + "-" + uuid.NewString()
		}

		ctrl := cursor.NewController(cursor.FromContext(ctx))
		ctrl.Activate()
		defer ctrl.Deactivate()
		ctrl.SetDescriptor(p.Cursor)

		base := p.Props.Props
		if ctrl.SuppressNative() {
			base.Style = base.Style.Clone()
			if base.Style == nil {
				base.Style = style.Style{}
			}
			base.Style["cursor"] = "none"
		}

		res := style.Resolve(layout, base)
		logDiagnostics(ctx, id, res.Diagnostics)

		// The resolved inline style is the restore point for overlay
		// patches, both here and in later breakpoint requests.
		state := liveState{ID: id, Layout: layout, Hide: base.Hide, Style: res.Style, Tiers: base.Tiers}

		node := patch.NewNode(res.Classes, res.Style)
		tracker, _ := breakpoint.FromContext(ctx)
		binding := live.New(live.Config{
			Surface: node,
			Layout:  layout,
			Props:   style.Props{Hide: state.Hide, Style: state.Style, Tiers: state.Tiers},
			Logger:  zerolog.Ctx(ctx),
		})
		binding.Activate(tracker)
		binding.Deactivate()

		attrs := maps.Clone(p.Attrs)
		if attrs == nil {
			attrs = templ.Attributes{}
		}
		if p.Cursor != nil {
			// The runtime restores this cursor if the device turns
			// touch-primary after load.
			attrs["data-hxui-cursor"] = nativeCursor(p.Props.Props)
		}
		if reg, ok := RegistryFromContext(ctx); ok {
			tier, measured := binding.Tier()
			if err := reg.liveAttrs(attrs, state, tier, measured); err != nil {
				return err
			}
		}

		err := element{
			tag:      p.Tag,
			id:       id,
			classes:  node.Classes(),
			style:    node.Style(),
			attrs:    attrs,
			children: children,
		}.Render(ctx, w)
		if err != nil || p.Cursor == nil {
			return err
		}
		if ctrl.SuppressNative() {
			if err := follower(id, p.Cursor, true).Render(ctx, w); err != nil {
				return err
			}
		}
		return cursorTemplate(id, p.Cursor).Render(ctx, w)
	})
}

// nativeCursor is the inline cursor the element would carry without a
// follower.
func nativeCursor(p style.Props) string {
	if c := p.Style["cursor"]; c != "" {
		return c
	}
	if p.Cursor != "interactive" {
		return p.Cursor
	}
	return ""
}

// liveAttrs adds the htmx wiring that posts tier changes to the registry.
func (reg *Registry) liveAttrs(attrs templ.Attributes, state liveState, tier breakpoint.Tier, measured bool) error {
	token, err := reg.encoder.Encode(state, false)
	if err != nil {
		return err
	}
	id, err := json.Marshal(state.ID)
	if err != nil {
		return err
	}

	// An element rendered without a width asks for its first patch on load.
	trigger := "load, hxui:resize from:window"
	if measured {
		attrs["data-hxui-tier"] = tier.String()
		trigger = "hxui:resize from:window"
	}
	attrs["data-hxui-live"] = true
	attrs["hx-ext"] = "hxui"
	attrs["hx-post"] = reg.prefix + "/breakpoint"
	attrs["hx-trigger"] = trigger
	attrs["hx-swap"] = "none"
	attrs["hx-vals"] = `js:{p: "` + token + `", width: window.innerWidth, from: document.getElementById(` +
		string(id) + `).dataset.hxuiTier || ""}`
	return nil
}

// follower renders the cursor follower for element id. It starts hidden;
// the browser runtime positions it from pointer events. Only a mounted
// follower carries data-hxui-follower.
func follower(id string, d *cursor.Descriptor, mounted bool) templ.Component {
	attrs := templ.Attributes{
		"aria-hidden":        "true",
		"data-hxui-offset-x": d.OffsetX,
		"data-hxui-offset-y": d.OffsetY,
	}
	if mounted {
		attrs["data-hxui-follower"] = id
	}
	return element{
		classes: []string{"cursor-follower"},
		style: style.Style{
			"position":       "fixed",
			"pointer-events": "none",
			"display":        "none",
			"z-index":        "10",
		},
		attrs:    attrs,
		children: []templ.Component{d.Content},
	}
}

// cursorTemplate holds an inert copy of the follower. The runtime mounts it
// when the pointer becomes fine after load, and unmounts the live follower
// when the device turns touch-primary.
func cursorTemplate(id string, d *cursor.Descriptor) templ.Component {
	return element{
		tag:      "template",
		attrs:    templ.Attributes{"data-hxui-cursor-template": id},
		children: []templ.Component{follower(id, d, false)},
	}
}
