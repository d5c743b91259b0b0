package hxui

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/a-h/templ"
)

// Component[P] is a server-rendered component that can re-render itself
// through the registry, such as a lazily loaded panel. P is its props type;
// props travel in the URL, signed or encrypted.
//
//	gallery := hxui.New[GalleryProps]("gallery", hxui.RendererFunc[GalleryProps](renderGallery))
//	reg.Add(gallery)
//
//	// In a page:
//	gallery.Lazy(GalleryProps{Page: 1}, spinner)
//
// Each component instance receives a deterministic URL path based on its
// name and source location (file:line), so two instances never collide.
type Component[P any] struct {
	name      string
	path      string
	sensitive bool
	renderer  Renderer[P]
	reg       *Registry
}

// New creates a new component with the given name and renderer. If renderer
// also implements Hydrater[P], Hydrate runs before every render.
func New[P any](name string, renderer Renderer[P]) *Component[P] {
	return &Component[P]{
		name:     name,
		path:     "/c/" + name + "-" + componentHash(name, 1),
		renderer: renderer,
	}
}

// Sensitive enables full encryption of props instead of signing.
func (c *Component[P]) Sensitive() *Component[P] {
	c.sensitive = true
	return c
}

// Name returns the component's name.
func (c *Component[P]) Name() string {
	return c.name
}

// Prefix returns the component's URL prefix. Until the component is added
// to a registry it is relative to DefaultPrefix.
func (c *Component[P]) Prefix() string {
	root := DefaultPrefix
	if c.reg != nil {
		root = c.reg.prefix
	}
	return root + c.path
}

// IsSensitive returns whether the component uses encrypted props.
func (c *Component[P]) IsSensitive() bool {
	return c.sensitive
}

func (c *Component[P]) mount(reg *Registry) {
	c.reg = reg
}

// HXPrefix implements HXComponent.
func (c *Component[P]) HXPrefix() string {
	return c.Prefix()
}

// HXServeHTTP decodes props from the p parameter, hydrates and renders.
// Only GET and HEAD are served.
func (c *Component[P]) HXServeHTTP(w http.ResponseWriter, r *http.Request) {
	reg := c.reg
	if reg == nil {
		http.Error(w, ErrNoRegistry.Error(), http.StatusInternalServerError)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if strings.TrimSuffix(r.URL.Path, "/") != c.Prefix() {
		reg.OnError(w, r, ErrNotFound)
		return
	}

	var props P
	if err := reg.encoder.Decode(r.URL.Query().Get("p"), c.sensitive, &props); err != nil {
		reg.OnError(w, r, WrapDecodeError(err))
		return
	}

	ctx := r.Context()
	if h, ok := c.renderer.(Hydrater[P]); ok {
		if err := h.Hydrate(ctx, &props); err != nil {
			reg.OnError(w, r, fmt.Errorf("hxui: hydrate %s: %w", c.name, err))
			return
		}
	}

	reg.Respond(w, r, HTML(c.renderer.Render(ctx, props)))
}

// Refresh returns htmx attributes that re-render the component with props,
// replacing the element they are placed on.
func (c *Component[P]) Refresh(props P) templ.Attributes {
	return templ.Attributes{
		"hx-get":  c.url(props),
		"hx-swap": "outerHTML",
	}
}

// Lazy returns a templ component that defers rendering until viewport intersection.
//
// The placeholder renders immediately; the actual component loads when scrolled
// into view. Uses HTMX's "intersect once" trigger.
func (c *Component[P]) Lazy(props P, placeholder templ.Component) templ.Component {
	return lazyComponent(c.url(props), placeholder, "intersect once")
}

// Defer returns a templ component that loads after page load (not on intersection).
//
// Uses HTMX's "load" trigger - fires once after page load completes.
func (c *Component[P]) Defer(props P, placeholder templ.Component) templ.Component {
	return lazyComponent(c.url(props), placeholder, "load")
}

// URL returns the render URL for props. It fails with ErrNoRegistry until
// the component has been added to a registry, since there is no encoder.
func (c *Component[P]) URL(props P) (string, error) {
	if c.reg == nil {
		return "", ErrNoRegistry
	}
	encoded, err := c.reg.encoder.Encode(props, c.sensitive)
	if err != nil {
		return "", err
	}
	return c.Prefix() + "?p=" + encoded, nil
}

// url is URL for markup: failures are logged and the bare path returned.
func (c *Component[P]) url(props P) string {
	u, err := c.URL(props)
	if err == nil {
		return u
	}
	if c.reg != nil {
		c.reg.logger.Error().Err(err).Str("component", c.name).Msg("hxui: encode props")
	}
	return c.Prefix()
}

// componentHash generates a deterministic hash based on component name and source location.
func componentHash(name string, skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	var input string
	if ok {
		// Base filename only, for portability across environments.
		input = fmt.Sprintf("%s:%d:%s", filepath.Base(file), line, name)
	} else {
		input = name
	}
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:4])
}

// lazyComponent creates a placeholder that loads content on trigger.
func lazyComponent(url string, placeholder templ.Component, trigger string) templ.Component {
	return element{
		attrs: templ.Attributes{
			"hx-get":     url,
			"hx-trigger": trigger,
			"hx-swap":    "outerHTML",
		},
		children: []templ.Component{placeholder},
	}
}
