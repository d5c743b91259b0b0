// Package live keeps one rendered element in step with the breakpoint
// tracker.
//
// A Binding subscribes to the tracker when activated, regardless of whether
// any overlay is declared, and falls back to the base props when no tracker
// is available. Each tier change merges the overlay for the new tier, patches
// the element's inline style and toggles its hide class.
package live

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/pthm/hxui/lib/breakpoint"
	"github.com/pthm/hxui/lib/patch"
	"github.com/pthm/hxui/lib/responsive"
	"github.com/pthm/hxui/lib/style"
)

// Config describes the element a Binding drives.
type Config struct {
	// Surface receives style patches and hide class toggles.
	Surface patch.ClassSurface

	Layout style.Layout
	Props  style.Props

	// OnChange, if set, is called after every patch with the merged props.
	OnChange func(responsive.Effective)

	// Logger receives debug events for each patch. Nil disables logging.
	Logger *zerolog.Logger
}

// Binding is the live counterpart of a statically resolved element.
type Binding struct {
	mu          sync.Mutex
	cfg         Config
	patcher     *patch.Patcher
	tracker     *breakpoint.Tracker
	unsubscribe func()
	eff         responsive.Effective
	known       bool
}

// New returns an inactive binding. Until Activate is called the element keeps
// its server-rendered state.
func New(cfg Config) *Binding {
	if cfg.Surface == nil {
		cfg.Surface = patch.NewNode(nil, nil)
	}
	if cfg.Logger == nil {
		nop := zerolog.Nop()
		cfg.Logger = &nop
	}
	p := patch.New(cfg.Surface)
	p.SetBase(cfg.Props.Style)
	return &Binding{
		cfg:     cfg,
		patcher: p,
		eff:     responsive.Effective{Props: cfg.Props, Hidden: cfg.Props.Hide},
	}
}

// Activate subscribes to t and applies its current tier. A nil or unmeasured
// tracker leaves the element on its base props. Activating an active binding
// moves it to the new tracker.
func (b *Binding) Activate(t *breakpoint.Tracker) {
	b.Deactivate()

	b.mu.Lock()
	b.tracker = t
	if t != nil {
		b.unsubscribe = t.Subscribe(func(breakpoint.Tier) { b.refresh() })
	}
	b.mu.Unlock()

	b.refresh()
}

// Deactivate removes the tracker subscription. The element keeps its last
// patched state.
func (b *Binding) Deactivate() {
	b.mu.Lock()
	unsubscribe := b.unsubscribe
	b.unsubscribe = nil
	b.tracker = nil
	b.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// Active reports whether the binding holds a tracker subscription.
func (b *Binding) Active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.unsubscribe != nil
}

// SetBaseStyle replaces the base style snapshot and re-applies the current
// tier on top of it.
func (b *Binding) SetBaseStyle(st style.Style) {
	b.mu.Lock()
	b.cfg.Props.Style = st.Clone()
	b.patcher.SetBase(st)
	b.mu.Unlock()

	b.refresh()
}

// Hidden reports the cascaded visibility at the last applied tier.
func (b *Binding) Hidden() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.eff.Hidden
}

// Tier returns the last applied tier. ok is false while the binding runs on
// base props.
func (b *Binding) Tier() (tier breakpoint.Tier, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.eff.Tier, b.known
}

// Effective returns the merged props at the last applied tier.
func (b *Binding) Effective() responsive.Effective {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.eff
}

// Owned lists the style properties written by the active overlay.
func (b *Binding) Owned() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.patcher.Owned()
}

func (b *Binding) refresh() {
	b.mu.Lock()
	var src responsive.TierSource
	if b.tracker != nil {
		src = b.tracker
	}
	eff, ok := responsive.MergeFrom(src, b.cfg.Props)

	// The clear/reapply/apply sequence runs under the lock so a concurrent
	// notification cannot interleave with it.
	b.patcher.Apply(eff.Overlay)
	b.cfg.Surface.ToggleClass(HideClass(b.cfg.Layout), eff.Hidden)
	b.eff, b.known = eff, ok
	owned := b.patcher.Owned()
	onChange := b.cfg.OnChange
	b.mu.Unlock()

	ev := b.cfg.Logger.Debug().Bool("hidden", eff.Hidden).Strs("owned", owned)
	if ok {
		ev = ev.Stringer("tier", eff.Tier)
	}
	ev.Msg("live: patched element")

	if onChange != nil {
		onChange(eff)
	}
}

// HideClass is the class that hides an element of the given layout.
func HideClass(layout style.Layout) string {
	return layout.String() + "-hide"
}
