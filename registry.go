package hxui

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	"github.com/pthm/hxui/lib/breakpoint"
)

// DefaultPrefix is where a registry serves its routes unless WithPrefix
// says otherwise.
const DefaultPrefix = "/_hxui"

// Registry owns the shared state of live components: the breakpoint table,
// the state encoder and the routes that serve breakpoint patches and
// component re-renders.
type Registry struct {
	mu         sync.RWMutex
	mux        *http.ServeMux
	encoder    *Encoder
	table      breakpoint.Table
	prefix     string
	logger     zerolog.Logger
	components map[string]HXComponent

	// OnError is called when a request fails.
	// Customize this to handle errors appropriately for your application.
	OnError func(http.ResponseWriter, *http.Request, error)
}

// Option configures a Registry.
type Option func(*Registry)

// WithTable sets the breakpoint table. An invalid table is rejected by
// NewRegistry.
func WithTable(t breakpoint.Table) Option {
	return func(reg *Registry) { reg.table = t }
}

// WithPrefix sets the URL prefix the registry handler is mounted at.
func WithPrefix(prefix string) Option {
	return func(reg *Registry) { reg.prefix = prefix }
}

// WithLogger sets the logger used for request failures and attached to
// request contexts by Middleware.
func WithLogger(l zerolog.Logger) Option {
	return func(reg *Registry) { reg.logger = l }
}

// NewRegistry creates a registry with the given state key. It panics if the
// encoder cannot be created or the breakpoint table is invalid, since both
// are programming errors.
func NewRegistry(key []byte, opts ...Option) *Registry {
	enc, err := NewEncoder(key)
	if err != nil {
		panic(fmt.Sprintf("hxui: failed to create encoder: %v", err))
	}

	reg := &Registry{
		mux:        http.NewServeMux(),
		encoder:    enc,
		table:      breakpoint.DefaultTable,
		prefix:     DefaultPrefix,
		logger:     zerolog.Nop(),
		components: make(map[string]HXComponent),
	}
	for _, opt := range opts {
		opt(reg)
	}
	if err := reg.table.Validate(); err != nil {
		panic(fmt.Sprintf("hxui: %v", err))
	}

	reg.OnError = reg.defaultOnError
	reg.mux.HandleFunc(reg.prefix+"/breakpoint", reg.serveBreakpoint)
	reg.mux.HandleFunc(reg.prefix+"/hxui.js", reg.serveRuntime)
	return reg
}

func (reg *Registry) defaultOnError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case IsNotFound(err):
		http.Error(w, "Not found", http.StatusNotFound)
	case IsDecodeError(err):
		http.Error(w, "Bad request", http.StatusBadRequest)
	default:
		reg.logger.Error().Err(err).Str("path", r.URL.Path).Msg("hxui: request failed")
		if IsHTMX(r) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			_ = ErrorComponent(err).Render(r.Context(), w)
			return
		}
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}

// Encoder returns the registry's encoder.
func (reg *Registry) Encoder() *Encoder {
	return reg.encoder
}

// Table returns the breakpoint table.
func (reg *Registry) Table() breakpoint.Table {
	return reg.table
}

// Prefix returns the URL prefix of the registry's routes.
func (reg *Registry) Prefix() string {
	return reg.prefix
}

// Add registers components with the registry.
// Panics on a prefix collision.
func (reg *Registry) Add(components ...HXComponent) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for _, comp := range components {
		if m, ok := comp.(mountable); ok {
			m.mount(reg)
		}
		prefix := comp.HXPrefix()
		if _, exists := reg.components[prefix]; exists {
			panic(fmt.Sprintf("hxui: prefix collision for %q", prefix))
		}
		reg.components[prefix] = comp

		reg.mux.HandleFunc(prefix, comp.HXServeHTTP)
		reg.mux.HandleFunc(prefix+"/", comp.HXServeHTTP)
	}
}

// Components returns the number of registered components.
func (reg *Registry) Components() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.components)
}

// Handler returns the HTTP handler for registry routes.
// Mount this at Prefix()+"/" in your application without stripping the
// prefix.
func (reg *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// CSRF protection: mutating methods require HX-Request header
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			if r.Header.Get("HX-Request") != "true" {
				http.Error(w, "Forbidden: HTMX request required", http.StatusForbidden)
				return
			}
		}

		reg.mux.ServeHTTP(w, r)
	})
}

type registryKey struct{}

// WithRegistry attaches reg to ctx. Client components rendered with this
// context emit live attributes bound to reg.
func WithRegistry(ctx context.Context, reg *Registry) context.Context {
	return context.WithValue(ctx, registryKey{}, reg)
}

// RegistryFromContext returns the registry attached to ctx.
func RegistryFromContext(ctx context.Context) (*Registry, bool) {
	reg, ok := ctx.Value(registryKey{}).(*Registry)
	return reg, ok && reg != nil
}
