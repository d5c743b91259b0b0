// Package patch applies responsive overlay styles to a retained element
// without re-rendering it.
//
// A Patcher owns the style properties written by the active overlay. On every
// tier change it clears exactly those properties, writes the base style
// snapshot back, then applies the overlay for the new tier and records what it
// wrote. Base properties set outside the responsive system are never lost and
// overlay properties never leak from one tier into the next.
package patch

import (
	"sort"

	"github.com/pthm/hxui/lib/style"
)

// Surface is a mutable style map, such as an element's style declaration.
type Surface interface {
	SetProperty(name, value string)
	RemoveProperty(name string)
}

// ClassSurface is a Surface that can also toggle classes.
type ClassSurface interface {
	Surface
	ToggleClass(class string, on bool)
}

// Patcher tracks overlay-owned properties on one surface.
//
// A Patcher is not safe for concurrent use. Apply runs to completion without
// yielding, so a caller that serializes tier notifications needs no locking.
type Patcher struct {
	surface Surface
	base    style.Style
	owned   map[string]struct{}
}

// New returns a Patcher writing to s.
func New(s Surface) *Patcher {
	return &Patcher{surface: s, owned: make(map[string]struct{})}
}

// SetBase snapshots the non-responsive style. The snapshot is the restore
// point for every later Apply; later changes to st do not affect it.
func (p *Patcher) SetBase(st style.Style) {
	p.base = st.Clone()
}

// Base returns a copy of the base snapshot.
func (p *Patcher) Base() style.Style {
	return p.base.Clone()
}

// Apply moves the surface to overlay o. A nil overlay restores the base style.
func (p *Patcher) Apply(o *style.Overlay) {
	for _, name := range p.Owned() {
		p.surface.RemoveProperty(name)
	}
	clear(p.owned)

	for _, name := range p.base.Keys() {
		p.surface.SetProperty(name, p.base[name])
	}

	if o == nil {
		return
	}
	for _, name := range o.Style.Keys() {
		p.set(name, o.Style[name])
	}
	if o.AspectRatio != "" {
		p.set("aspect-ratio", o.AspectRatio)
	}
}

func (p *Patcher) set(name, value string) {
	p.surface.SetProperty(name, value)
	p.owned[name] = struct{}{}
}

// Owned returns the sorted names of properties written by the last overlay.
func (p *Patcher) Owned() []string {
	names := make([]string, 0, len(p.owned))
	for name := range p.owned {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
