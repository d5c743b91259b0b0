// Package cursor drives a custom cursor that follows the pointer over one
// element.
//
// The follower is only mounted on devices with a fine pointer or without
// touch. Pointer capabilities are re-read whenever they report a change, and
// pointer events are recorded regardless of classification, so capability
// changes and pointer movement may arrive in any order and still converge.
//
// Controller is the model of the follower that static/hxui.js drives in the
// browser: the runtime applies the same inclusive bounds check and
// element-relative offset, then places the fixed follower at the element's
// origin plus that offset. Server renders use a Controller only for the
// mount decision.
package cursor

import (
	"sync"

	"github.com/a-h/templ"
)

// Descriptor is a structured cursor: the markup rendered in the follower and
// its offset from the pointer, in pixels.
type Descriptor struct {
	Content templ.Component
	OffsetX float64
	OffsetY float64
}

// Rect is an element's bounding box in viewport coordinates.
type Rect struct {
	Left, Top, Width, Height float64
}

// Contains reports whether the viewport point (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Left+r.Width && y >= r.Top && y <= r.Top+r.Height
}

// Position is a follower position relative to the tracked element's box.
type Position struct {
	X, Y float64
}

// Controller tracks the pointer over one element.
type Controller struct {
	mu           sync.Mutex
	caps         Capabilities
	remove       func()
	touchPrimary bool
	desc         *Descriptor
	inside       bool
	pos          Position
}

// NewController returns an inactive controller classified from caps. A nil
// caps is treated as Desktop.
func NewController(caps Capabilities) *Controller {
	if caps == nil {
		caps = Desktop
	}
	return &Controller{caps: caps, touchPrimary: TouchPrimary(caps)}
}

// Activate registers the capability change listener and reclassifies.
func (c *Controller) Activate() {
	c.Deactivate()
	remove := c.caps.OnChange(c.reclassify)
	c.mu.Lock()
	c.remove = remove
	c.mu.Unlock()
	c.reclassify()
}

// Deactivate removes the capability listener and unmounts the follower.
func (c *Controller) Deactivate() {
	c.mu.Lock()
	remove := c.remove
	c.remove = nil
	c.inside = false
	c.mu.Unlock()

	if remove != nil {
		remove()
	}
}

func (c *Controller) reclassify() {
	touchPrimary := TouchPrimary(c.caps)
	c.mu.Lock()
	c.touchPrimary = touchPrimary
	c.mu.Unlock()
}

// Enabled reports whether the device is not touch-primary.
func (c *Controller) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.touchPrimary
}

// SetDescriptor sets or clears (nil) the cursor descriptor.
func (c *Controller) SetDescriptor(d *Descriptor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.desc = d
}

// Descriptor returns the current descriptor.
func (c *Controller) Descriptor() *Descriptor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.desc
}

// SuppressNative reports whether the native cursor glyph should be hidden
// over the element. It is also the condition for mounting the follower.
func (c *Controller) SuppressNative() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mountedLocked()
}

func (c *Controller) mountedLocked() bool {
	return !c.touchPrimary && c.desc != nil
}

// Enter records the pointer entering the element with bounding box r.
func (c *Controller) Enter(r Rect, x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inside = true
	c.pos = c.relative(r, x, y)
}

// Move records pointer movement. Movement outside r counts as leaving.
func (c *Controller) Move(r Rect, x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !r.Contains(x, y) {
		c.inside = false
		return
	}
	c.inside = true
	c.pos = c.relative(r, x, y)
}

// Leave records the pointer leaving the element.
func (c *Controller) Leave() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inside = false
}

func (c *Controller) relative(r Rect, x, y float64) Position {
	p := Position{X: x - r.Left, Y: y - r.Top}
	if c.desc != nil {
		p.X += c.desc.OffsetX
		p.Y += c.desc.OffsetY
	}
	return p
}

// Follower returns the follower position. ok is false whenever the follower
// is not mounted or the pointer is outside the element.
func (c *Controller) Follower() (pos Position, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.mountedLocked() || !c.inside {
		return Position{}, false
	}
	return c.pos, true
}
