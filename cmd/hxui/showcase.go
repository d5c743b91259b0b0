package main

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/pthm/hxui"
	hxuiecho "github.com/pthm/hxui/adapters/echo"
	"github.com/pthm/hxui/lib/cursor"
	"github.com/pthm/hxui/lib/dimension"
	"github.com/pthm/hxui/lib/style"
)

// galleryProps travel in the gallery component's URL.
type galleryProps struct {
	Page  int `msgpack:"p"`
	Count int `msgpack:"c"`
}

type showcase struct {
	reg     *hxui.Registry
	gallery *hxui.Component[galleryProps]
}

func newShowcase(reg *hxui.Registry) *showcase {
	s := &showcase{reg: reg}
	s.gallery = hxui.New("gallery", hxui.RendererFunc[galleryProps](renderGallery))
	reg.Add(s.gallery)
	return s
}

func (s *showcase) page(c echo.Context) error {
	return hxuiecho.Render(c, document(s.reg, s.body()))
}

func (s *showcase) notify(c echo.Context) error {
	msg := c.FormValue("message")
	if msg == "" {
		// htmx only swaps 2xx responses, so the error travels as a toast.
		return hxuiecho.Respond(c, s.reg, hxui.HTML(hxui.Text("")).Toast(hxui.ToastError, "Message required"))
	}
	return hxuiecho.Respond(c, s.reg, hxui.HTML(hxui.Text("")).Toast(hxui.ToastSuccess, msg))
}

func (s *showcase) body() templ.Component {
	header := hxui.ServerFlex(hxui.Props{Props: style.Props{
		Direction:  "column",
		Gap:        "8",
		PaddingY:   "24",
		Horizontal: "center",
		Tiers: style.Overlays{
			S: &style.Overlay{Horizontal: "start", Style: style.Style{"padding-inline": "1rem"}},
		},
	}, Tag: "header"},
		hxui.ServerFlex(hxui.Props{Tag: "h1", Props: style.Props{TextVariant: "display-strong-s"}}, hxui.Text("hxui showcase")),
		hxui.ServerFlex(hxui.Props{Tag: "p", Props: style.Props{TextVariant: "body-default-m", OnBackground: "neutral-weak"}},
			hxui.Text("Resize the window: the grid below changes columns, and the tooltip hides on medium screens and below.")),
	)

	arrow := hxui.ServerFlex(hxui.Props{Props: style.Props{
		Solid:   "brand-strong",
		Radius:  "full",
		Padding: "8",
		Width:   dimension.Rem(1),
		Height:  dimension.Rem(1),
	}})

	grid := hxui.ClientGrid(hxui.ClientProps{
		Props: hxui.Props{ID: "gallery-grid", Props: style.Props{
			Columns: "4",
			Gap:     "16",
			Padding: "16",
			Border:  "neutral-alpha-weak",
			Radius:  "l",
			Style:   style.Style{"opacity": "1"},
			Tiers: style.Overlays{
				L:  &style.Overlay{Columns: "3"},
				M:  &style.Overlay{Columns: "2", Style: style.Style{"opacity": "0.95"}},
				S:  &style.Overlay{Columns: "1", AspectRatio: "auto"},
				XS: &style.Overlay{Columns: "1", Style: style.Style{"padding": "4px"}},
			},
		}},
		Cursor: &cursor.Descriptor{Content: arrow, OffsetX: -8, OffsetY: -8},
	}, s.cards(6)...)

	tooltip := hxui.Tooltip(hxui.TooltipProps{Label: "Hidden on m and below"})

	actions := hxui.ServerFlex(hxui.Props{Props: style.Props{Gap: "12", Vertical: "center", Tiers: style.Overlays{
		S: &style.Overlay{Direction: "column"},
	}}},
		hxui.Button(hxui.ButtonProps{
			Label: "Say hello",
			Attrs: templ.Attributes{
				"hx-post": "/notify",
				"hx-vals": `{"message": "Hello from the server"}`,
				"hx-swap": "none",
			},
		}),
		hxui.Button(hxui.ButtonProps{Label: "Docs", Variant: "secondary", Href: "https://htmx.org"}),
		hxui.Button(hxui.ButtonProps{Label: "Disabled", Variant: "tertiary", Disabled: true}),
		tooltip,
	)

	progress := hxui.ProgressBar(hxui.ProgressBarProps{Value: 64})

	media := hxui.Media(hxui.MediaProps{
		Props:   hxui.Props{ID: "cover", Props: style.Props{AspectRatio: "16 / 9", Radius: "l"}},
		Src:     "https://picsum.photos/seed/hxui/1280/720",
		Alt:     "Sample cover",
		Caption: "Click to enlarge, Escape to close",
		Enlarge: true,
	})

	lazy := s.gallery.Lazy(galleryProps{Page: 1, Count: 3}, hxui.Text("Loading…"))

	return hxui.ServerFlex(hxui.Props{Tag: "main", Props: style.Props{
		Direction:  "column",
		Gap:        "32",
		Padding:    "24",
		FillWidth:  true,
		MaxWidth:   dimension.Token("l"),
		Horizontal: "center",
	}}, header, actions, progress, media, grid, lazy, hxui.ToastContainer())
}

func (s *showcase) cards(n int) []templ.Component {
	cards := make([]templ.Component, n)
	for i := range cards {
		cards[i] = hxui.Card(hxui.CardProps{
			Interactive: i%2 == 0,
			Props: hxui.Props{Props: style.Props{
				Direction: "column",
				Gap:       "4",
				Padding:   "16",
				Radius:    "l",
			}},
		},
			hxui.ServerFlex(hxui.Props{Props: style.Props{TextVariant: "heading-strong-s"}}, hxui.Text(fmt.Sprintf("Card %d", i+1))),
			hxui.ServerFlex(hxui.Props{Props: style.Props{TextVariant: "body-default-s", OnBackground: "neutral-weak"}}, hxui.Text("Column count follows the viewport.")),
		)
	}
	return cards
}

func renderGallery(ctx context.Context, p galleryProps) templ.Component {
	items := make([]templ.Component, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		items = append(items, hxui.ProgressBar(hxui.ProgressBarProps{
			Value:         float64((p.Page*37 + i*29) % 101),
			BarBackground: "accent-strong",
		}))
	}
	return hxui.ServerFlex(hxui.Props{Props: style.Props{
		Direction: "column",
		Gap:       "16",
		FillWidth: true,
	}}, items...)
}

const stylesheet = `
*{box-sizing:border-box}
body{margin:0;font-family:system-ui,sans-serif;background:#f6f6f8;color:#1b1b1f}
.display-flex{display:flex}.display-grid{display:grid}.position-relative{position:relative}
.flex-column{flex-direction:column}.fill-width{width:100%}
.flex-hide,.grid-hide{display:none!important}
.columns-4{grid-template-columns:repeat(4,1fr)}.columns-3{grid-template-columns:repeat(3,1fr)}
.columns-2{grid-template-columns:repeat(2,1fr)}.columns-1{grid-template-columns:1fr}
.g-4{gap:.25rem}.g-8{gap:.5rem}.g-12{gap:.75rem}.g-16{gap:1rem}.g-32{gap:2rem}
.p-8{padding:.5rem}.p-16{padding:1rem}.p-24{padding:1.5rem}
.surface-background{background:#fff}.brand-solid-strong{background:#5b4bdb}
.radius-l{border-radius:12px}.radius-full{border-radius:999px}
.border-solid{border-style:solid}.border-1{border-width:1px}
.button{border:0;padding:.5rem 1rem;border-radius:8px;background:#5b4bdb;color:#fff;cursor:pointer}
.toast-container{position:fixed;bottom:1rem;right:1rem;display:flex;flex-direction:column;gap:.5rem}
.toast{padding:.5rem 1rem;border-radius:8px;background:#1b1b1f;color:#fff}
:root{--backdrop:rgba(0,0,0,.7);--backdrop-filter:blur(6px)}
.position-fixed{position:fixed}.overflow-hidden{overflow:hidden}.cursor-interactive{cursor:pointer}
.justify-center{justify-content:center}.align-center{align-items:center}
@media (max-width:1440px){.l-flex-hide,.l-grid-hide{display:none!important}.l-columns-3{grid-template-columns:repeat(3,1fr)}}
@media (max-width:1024px){.m-flex-hide,.m-grid-hide{display:none!important}.m-columns-2{grid-template-columns:repeat(2,1fr)}}
@media (max-width:768px){.s-flex-hide,.s-grid-hide{display:none!important}.s-flex-column{flex-direction:column}.s-columns-1{grid-template-columns:1fr}}
`

// document wraps body in the page shell: htmx, the hxui runtime and a
// minimal stylesheet for the classes the showcase uses.
func document(reg *hxui.Registry, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>hxui showcase</title><style>`+stylesheet+`</style>`+
			`<script src="https://unpkg.com/htmx.org@2.0.3" defer></script>`); err != nil {
			return err
		}
		if err := reg.Script().Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</head><body>`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
