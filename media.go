package hxui

import (
	"context"
	"io"
	"maps"
	"regexp"
	"strings"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"github.com/pthm/hxui/lib/style"
)

// MediaProps configures a Media frame.
type MediaProps struct {
	Props

	Src string
	Alt string

	// Height is in rem and only applies without an AspectRatio. The frame
	// fills its parent's height when neither is set.
	Height    float64
	ObjectFit string // cover by default

	Caption string
	Loading bool // renders a skeleton instead of the media

	// Enlarge makes the frame open a full-viewport overlay on click. The
	// runtime closes it again on click, wheel or Escape.
	Enlarge bool
}

var youTubeID = regexp.MustCompile(`(?:youtube\.com/(?:[^/\n\s]+/\S+/|(?:v|e(?:mbed)?)/|\S*?[?&]v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// YouTubeEmbed returns the embed URL for a YouTube video link, or false
// when src is not one.
func YouTubeEmbed(src string) (string, bool) {
	m := youTubeID.FindStringSubmatch(src)
	if m == nil {
		return "", false
	}
	return "https://www.youtube.com/embed/" + m[1] + "?controls=0&rel=0&modestbranding=1", true
}

// Media renders an image, an mp4 video or a YouTube embed in a column frame,
// with an optional caption. An enlargeable frame is followed by its hidden
// overlay.
func Media(p MediaProps) templ.Component {
	id := p.ID
	if id == "" {
		id = "media-" + uuid.NewString()
	}
	fit := or(p.ObjectFit, "cover")
	enlarge := p.Enlarge && !p.Loading

	frame := p.Props
	frame.ID = id
	sp := &frame.Props
	sp.Direction = "column"
	sp.FillWidth = true
	def(&sp.Overflow, "hidden")
	if sp.ZIndex == nil {
		sp.ZIndex = style.Int(0)
	}

	st := style.Style{"outline": "none", "isolation": "isolate", "margin": "0"}
	switch {
	case sp.AspectRatio != "":
	case p.Height > 0:
		st["height"] = formatFloat(p.Height) + "rem"
	default:
		st["height"] = "100%"
	}
	maps.Copy(st, sp.Style)
	sp.Style = st

	if p.Caption != "" {
		def(&frame.Tag, "figure")
	}

	attrs := maps.Clone(frame.Attrs)
	if attrs == nil {
		attrs = templ.Attributes{}
	}
	if enlarge {
		sp.Cursor = "interactive"
		attrs["data-hxui-enlarge"] = id
		attrs["role"] = "button"
		attrs["tabindex"] = "0"
		attrs["aria-expanded"] = "false"
		attrs["aria-controls"] = id + "-overlay"
	}
	frame.Attrs = attrs

	var content templ.Component
	if p.Loading {
		content = element{classes: []string{"skeleton", "skeleton-block"}, attrs: templ.Attributes{"aria-busy": "true"}}
	} else {
		content = mediaContent(p.Src, p.Alt, style.Style{"width": "100%", "height": "100%", "object-fit": fit})
	}
	children := []templ.Component{content}
	if p.Caption != "" {
		children = append(children, ServerFlex(Props{Tag: "figcaption", Props: style.Props{
			FillWidth:    true,
			TextVariant:  "label-default-s",
			OnBackground: "neutral-weak",
			PaddingY:     "12",
			PaddingX:     "24",
			Horizontal:   "center",
			Align:        "center",
		}}, text(p.Caption)))
	}

	out := ServerFlex(frame, children...)
	if !enlarge {
		return out
	}
	overlay := mediaOverlay(id, p)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := out.Render(ctx, w); err != nil {
			return err
		}
		return overlay.Render(ctx, w)
	})
}

// mediaOverlay is the enlarged view of frame id. It is rendered hidden; the
// runtime toggles flex-hide and aria-expanded.
func mediaOverlay(id string, p MediaProps) templ.Component {
	big := style.Style{"object-fit": "contain", "max-width": "90vw", "max-height": "100vh"}
	if strings.HasSuffix(p.Src, ".mp4") {
		big["width"] = "90vw"
		big["height"] = "auto"
	}
	return ServerFlex(Props{
		ID:    id + "-overlay",
		Attrs: templ.Attributes{"data-hxui-overlay": id, "aria-hidden": "true"},
		Props: style.Props{
			Hide:       true,
			Position:   "fixed",
			Horizontal: "center",
			Vertical:   "center",
			Cursor:     "interactive",
			Transition: "macro-medium",
			ZIndex:     style.Int(9),
			Style: style.Style{
				"top":             "0",
				"left":            "0",
				"width":           "100vw",
				"height":          "100vh",
				"background":      "var(--backdrop)",
				"backdrop-filter": "var(--backdrop-filter)",
			},
		},
	}, mediaContent(p.Src, p.Alt, big))
}

func mediaContent(src, alt string, st style.Style) templ.Component {
	if embed, ok := YouTubeEmbed(src); ok {
		return element{tag: "iframe", style: st, attrs: templ.Attributes{
			"src":             embed,
			"title":           alt,
			"frameborder":     "0",
			"allow":           "accelerometer; clipboard-write; encrypted-media; gyroscope; picture-in-picture",
			"allowfullscreen": true,
		}}
	}
	if strings.HasSuffix(src, ".mp4") {
		return element{tag: "video", style: st, attrs: templ.Attributes{
			"src":         src,
			"autoplay":    true,
			"loop":        true,
			"muted":       true,
			"playsinline": true,
		}}
	}
	return element{tag: "img", style: st, attrs: templ.Attributes{
		"src":     src,
		"alt":     alt,
		"loading": "lazy",
	}}
}
