// Package hxui renders the layout primitives of a UI component library on
// the server and keeps them responsive in the browser through HTMX.
//
// # Style intent
//
// Components take a prop bag (Props, built on style.Props) describing style
// intent: colors by token, spacing by step, sizes as dimension values, and
// per-tier overlays. The style resolver turns a prop bag into utility
// classes plus an inline style; nothing is stored.
//
//	hxui.ServerFlex(hxui.Props{Props: style.Props{
//	    Direction:  "column",
//	    Background: "surface",
//	    Padding:    "16",
//	    Tiers: style.Overlays{
//	        S: &style.Overlay{Direction: "row"},
//	    },
//	}}, children...)
//
// # Server and client components
//
// ServerFlex and ServerGrid express the l, m and s overlays as media query
// classes and need no runtime. ClientFlex and ClientGrid additionally follow
// the live breakpoint: on the server they render the request's tier, and in
// the browser each tier change posts the element's signed state to the
// registry, which answers with a patch:
//
//	{"id": "grid-1", "tier": "s", "hidden": true,
//	 "ops": [{"op": "remove", "name": "opacity"}, {"op": "set", "name": "opacity", "value": "1"}]}
//
// A patch first clears every property the previous overlay set, then
// reapplies the element's base style, then applies the new tier's overlay.
// Overlay values therefore never leak from one tier into the next.
//
// Visibility cascades: a hide declared for a larger tier applies to every
// smaller tier until one declares its own.
//
// # Registration and routing
//
//	reg := hxui.NewRegistry(stateKey, hxui.WithLogger(logger))
//	reg.Add(gallery)
//	mux.Handle(reg.Prefix()+"/", reg.Handler())
//	mux.Handle("/", reg.Middleware(pages))
//
// Middleware reads the viewport width from client hints (or the hxui-width
// cookie) and the pointer type, and attaches a breakpoint tracker, the
// capabilities and the registry to the request context. Client components
// rendered without it fall back to their base props.
//
// # Security model
//
// Element state and component props travel signed (HMAC) or, for components
// marked Sensitive, encrypted with AES-GCM. Mutating requests to the
// registry require the HX-Request: true header that HTMX sends.
//
// # Feedback
//
// Responses carry toasts: as out-of-band swaps into #toasts for markup, or
// as an "hxui:toast" event in HX-Trigger for JSON.
//
//	return hxui.HTML(view).Toast(hxui.ToastSuccess, "Saved")
package hxui
