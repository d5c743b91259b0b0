package hxui

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/pthm/hxui/lib/breakpoint"
	"github.com/pthm/hxui/lib/cursor"
)

// WidthCookie carries the viewport width, set by the browser runtime for
// browsers that do not send client hints.
const WidthCookie = "hxui-width"

const clientHints = "Sec-CH-Viewport-Width, Viewport-Width, Sec-CH-UA-Mobile"

// ViewportWidth reads the viewport width from the request's client hints,
// falling back to the width cookie.
func ViewportWidth(r *http.Request) (int, bool) {
	for _, h := range []string{"Sec-CH-Viewport-Width", "Viewport-Width"} {
		if w, ok := parseWidth(r.Header.Get(h)); ok {
			return w, true
		}
	}
	if c, err := r.Cookie(WidthCookie); err == nil {
		return parseWidth(c.Value)
	}
	return 0, false
}

func parseWidth(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	w, err := strconv.Atoi(s)
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}

// ViewportContext returns a context carrying a breakpoint tracker for the
// given width, the pointer capabilities and the registry. When measured is
// false the tracker stays unmeasured and components render their base
// props. Call release when rendering is done to unmount the tracker.
func (reg *Registry) ViewportContext(ctx context.Context, width int, measured bool, caps cursor.Capabilities) (_ context.Context, release func()) {
	tracker := breakpoint.NewTracker(reg.table)
	release = func() {}
	if measured {
		tracker.Mount(breakpoint.StaticViewport(width))
		release = tracker.Unmount
	}

	ctx = breakpoint.WithTracker(ctx, tracker)
	if caps != nil {
		ctx = cursor.WithCapabilities(ctx, caps)
	}
	ctx = WithRegistry(ctx, reg)
	if zerolog.Ctx(ctx).GetLevel() == zerolog.Disabled {
		ctx = reg.logger.WithContext(ctx)
	}
	return ctx, release
}

// Middleware prepares each request for rendering client components: it
// mounts a tracker on the request's viewport width, classifies the pointer
// and attaches the registry. It also asks the browser for the client hints
// it reads.
func (reg *Registry) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Accept-CH", clientHints)
		w.Header().Add("Vary", clientHints)

		width, ok := ViewportWidth(r)
		ctx, release := reg.ViewportContext(r.Context(), width, ok, cursor.FromRequest(r))
		defer release()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
