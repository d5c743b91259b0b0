// Package hxuiecho provides Echo framework integration for hxui.
//
// Mount the registry routes and the viewport middleware on an Echo instance:
//
//	e := echo.New()
//	reg := hxuiecho.Mount(e)
//	e.Use(hxuiecho.Middleware(reg))
//	reg.Add(gallery)
//
// Or mount on a group with middleware:
//
//	g := e.Group("/app", authMiddleware)
//	reg := hxuiecho.MountGroup(g, "/app")
package hxuiecho

import (
	"crypto/rand"
	"fmt"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pthm/hxui"
	"github.com/pthm/hxui/lib/breakpoint"
)

// Option configures the Mount and MountGroup functions.
type Option func(*options)

type options struct {
	key    []byte
	prefix string
	reg    []hxui.Option
}

// WithKey sets the state key for the registry.
// The key should be at least 32 bytes of cryptographically random data.
// If not provided, a random key is generated (suitable for development only).
func WithKey(key []byte) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithPrefix sets the URL path prefix for registry routes.
// Defaults to hxui.DefaultPrefix.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithTable sets the registry's breakpoint table.
func WithTable(t breakpoint.Table) Option {
	return func(o *options) {
		o.reg = append(o.reg, hxui.WithTable(t))
	}
}

// WithLogger sets the registry's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.reg = append(o.reg, hxui.WithLogger(l))
	}
}

// Mount creates a registry and mounts its handler on an Echo instance.
//
//	e := echo.New()
//	reg := hxuiecho.Mount(e)
//
//	// With options:
//	reg := hxuiecho.Mount(e, hxuiecho.WithKey(key))
func Mount(e *echo.Echo, opts ...Option) *hxui.Registry {
	reg, prefix := newRegistry("", opts)
	e.Any(prefix+"/*", echo.WrapHandler(reg.Handler()))
	return reg
}

// MountGroup creates a registry and mounts its handler on an Echo group,
// so registry routes share the group's middleware (auth, logging, etc.).
// base must be the path the group was created with; the registry's URLs
// are built under it.
//
//	g := e.Group("/app", authMiddleware)
//	reg := hxuiecho.MountGroup(g, "/app")
func MountGroup(g *echo.Group, base string, opts ...Option) *hxui.Registry {
	reg, prefix := newRegistry(base, opts)
	g.Any(prefix+"/*", echo.WrapHandler(reg.Handler()))
	return reg
}

func newRegistry(base string, opts []Option) (*hxui.Registry, string) {
	o := &options{prefix: hxui.DefaultPrefix}
	for _, opt := range opts {
		opt(o)
	}

	key := o.key
	if key == nil {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("hxuiecho: failed to generate random key: %v", err))
		}
	}

	reg := hxui.NewRegistry(key, append(o.reg, hxui.WithPrefix(base+o.prefix))...)
	return reg, o.prefix
}

// Middleware adapts reg.Middleware to Echo: handlers downstream render
// client components for the request's viewport and pointer.
func Middleware(reg *hxui.Registry) echo.MiddlewareFunc {
	return echo.WrapMiddleware(reg.Middleware)
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return hxuiecho.Render(c, page())
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.Request().Context(), c.Response())
}

// Respond writes an hxui.Response through the registry.
func Respond(c echo.Context, reg *hxui.Registry, resp hxui.Response) error {
	reg.Respond(c.Response(), c.Request(), resp)
	return nil
}
