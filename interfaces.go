package hxui

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
)

// Hydrater is implemented by renderers that reconstruct rich objects from
// the lean props carried in a component URL. Called before every render.
//
//	func (v *Gallery) Hydrate(ctx context.Context, props *GalleryProps) error {
//	    props.Items = v.store.List(props.Page)
//	    return nil
//	}
type Hydrater[P any] interface {
	Hydrate(ctx context.Context, props *P) error
}

// Renderer produces the markup of a component for hydrated props. Render
// should be pure: it reads props and returns a templ.Component.
type Renderer[P any] interface {
	Render(ctx context.Context, props P) templ.Component
}

// RendererFunc adapts a function to Renderer.
type RendererFunc[P any] func(ctx context.Context, props P) templ.Component

func (f RendererFunc[P]) Render(ctx context.Context, props P) templ.Component {
	return f(ctx, props)
}

// HXComponent is a component the registry can route requests to.
//
// HXPrefix returns the unique URL prefix for this component instance.
// HXServeHTTP handles all HTTP requests for the component's routes.
type HXComponent interface {
	HXPrefix() string
	HXServeHTTP(w http.ResponseWriter, r *http.Request)
}

// mountable is implemented by *Component[P]; the registry calls mount when
// the component is added.
type mountable interface {
	mount(reg *Registry)
}
