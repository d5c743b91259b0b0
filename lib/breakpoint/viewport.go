package breakpoint

import "sync"

// Viewport is a source of viewport width measurements.
//
// OnResize registers fn to be called with the new width on every resize and
// returns a function that removes the registration. Implementations must make
// the returned function safe to call more than once.
type Viewport interface {
	Width() int
	OnResize(fn func(width int)) (remove func())
}

// StaticViewport is a viewport whose width never changes, such as the width
// reported by a request's client hints during a server render.
type StaticViewport int

// Width returns the fixed width.
func (v StaticViewport) Width() int { return int(v) }

// OnResize never fires for a static viewport.
func (v StaticViewport) OnResize(func(int)) func() { return func() {} }

// ManualViewport is a viewport driven by explicit Resize calls. It backs
// terminal previews and tests.
type ManualViewport struct {
	mu        sync.Mutex
	width     int
	nextID    int
	listeners []resizeListener
}

type resizeListener struct {
	id int
	fn func(int)
}

// NewManualViewport returns a viewport starting at width.
func NewManualViewport(width int) *ManualViewport {
	return &ManualViewport{width: width}
}

// Width returns the current width.
func (v *ManualViewport) Width() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width
}

// OnResize registers a resize listener.
func (v *ManualViewport) OnResize(fn func(int)) func() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.nextID++
	id := v.nextID
	v.listeners = append(v.listeners, resizeListener{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			for i, l := range v.listeners {
				if l.id == id {
					v.listeners = append(v.listeners[:i], v.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// Resize sets the width and dispatches it to every listener. Listeners run
// to completion, in registration order, before Resize returns.
func (v *ManualViewport) Resize(width int) {
	v.mu.Lock()
	v.width = width
	listeners := make([]resizeListener, len(v.listeners))
	copy(listeners, v.listeners)
	v.mu.Unlock()

	for _, l := range listeners {
		l.fn(width)
	}
}

// Listeners returns the number of registered resize listeners.
func (v *ManualViewport) Listeners() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.listeners)
}
