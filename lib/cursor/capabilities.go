package cursor

import (
	"context"
	"net/http"
	"sync"
)

// Capabilities reports the pointer capabilities of the device an element is
// rendered on. OnChange fires when either capability may have changed, such
// as a mouse being attached to a tablet.
type Capabilities interface {
	HasTouch() bool
	FinePointer() bool
	OnChange(fn func()) (remove func())
}

// TouchPrimary reports whether c describes a device with touch and no fine
// pointer.
func TouchPrimary(c Capabilities) bool {
	return c.HasTouch() && !c.FinePointer()
}

// StaticCapabilities never change.
type StaticCapabilities struct {
	Touch bool
	Fine  bool
}

func (c StaticCapabilities) HasTouch() bool       { return c.Touch }
func (c StaticCapabilities) FinePointer() bool    { return c.Fine }
func (StaticCapabilities) OnChange(func()) func() { return func() {} }

// Desktop is a mouse-driven device without touch.
var Desktop = StaticCapabilities{Fine: true}

// ManualCapabilities changes only when Set is called.
type ManualCapabilities struct {
	mu        sync.Mutex
	touch     bool
	fine      bool
	nextID    int
	listeners map[int]func()
}

func NewManualCapabilities(touch, fine bool) *ManualCapabilities {
	return &ManualCapabilities{touch: touch, fine: fine, listeners: make(map[int]func())}
}

func (c *ManualCapabilities) HasTouch() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.touch
}

func (c *ManualCapabilities) FinePointer() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fine
}

func (c *ManualCapabilities) OnChange(fn func()) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	id := c.nextID
	c.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.listeners, id)
		})
	}
}

// Set updates both capabilities and notifies listeners in registration order.
func (c *ManualCapabilities) Set(touch, fine bool) {
	c.mu.Lock()
	c.touch, c.fine = touch, fine
	fns := make([]func(), 0, len(c.listeners))
	for id := 1; id <= c.nextID; id++ {
		if fn, ok := c.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Listeners returns the number of registered change listeners.
func (c *ManualCapabilities) Listeners() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.listeners)
}

// PointerCookie is set by the browser runtime to "coarse" or "fine" once the
// pointer media feature has been read.
const PointerCookie = "hxui-pointer"

// FromRequest classifies the device that sent r. The pointer cookie wins
// when present; otherwise the Sec-CH-UA-Mobile client hint marks a
// touch-primary device. Anything else is treated as a desktop.
func FromRequest(r *http.Request) StaticCapabilities {
	if c, err := r.Cookie(PointerCookie); err == nil {
		switch c.Value {
		case "coarse":
			return StaticCapabilities{Touch: true}
		case "fine":
			return Desktop
		}
	}
	if r.Header.Get("Sec-CH-UA-Mobile") == "?1" {
		return StaticCapabilities{Touch: true}
	}
	return Desktop
}

type capsKey struct{}

// WithCapabilities attaches c to ctx.
func WithCapabilities(ctx context.Context, c Capabilities) context.Context {
	return context.WithValue(ctx, capsKey{}, c)
}

// FromContext returns the capabilities attached to ctx, or Desktop.
func FromContext(ctx context.Context) Capabilities {
	if c, ok := ctx.Value(capsKey{}).(Capabilities); ok && c != nil {
		return c
	}
	return Desktop
}
