package breakpoint

import (
	"context"
	"sync"
)

// placeholderTier is reported before the first measurement. Mount replaces it
// synchronously, so consumers that activate after Mount never observe it.
const placeholderTier = L

// Tracker owns the measured viewport width and the tier derived from it.
//
// The tracker has a single logical writer (the viewport's resize listener or
// direct Update calls) and any number of readers. Subscribers are notified,
// in subscription order and outside the lock, only when the tier changes.
type Tracker struct {
	mu       sync.RWMutex
	table    Table
	width    int
	tier     Tier
	measured bool

	nextID int
	subs   []subscriber

	removeResize func()
}

type subscriber struct {
	id int
	fn func(Tier)
}

// NewTracker creates an unmounted tracker for table.
func NewTracker(table Table) *Tracker {
	return &Tracker{table: table, tier: placeholderTier}
}

// Mount measures v synchronously and starts listening for resizes. Mounting
// an already-mounted tracker first removes the previous listener.
func (t *Tracker) Mount(v Viewport) {
	t.Unmount()
	remove := v.OnResize(t.Update)

	t.mu.Lock()
	t.removeResize = remove
	t.mu.Unlock()

	t.Update(v.Width())
}

// Unmount stops listening for resizes. The last measured state stays readable.
func (t *Tracker) Unmount() {
	t.mu.Lock()
	remove := t.removeResize
	t.removeResize = nil
	t.mu.Unlock()

	if remove != nil {
		remove()
	}
}

// Update records a new width. Recomputing with the same width is a no-op;
// subscribers hear about the change only when the tier moves, or on the first
// measurement, which replaces the placeholder tier.
func (t *Tracker) Update(width int) {
	t.mu.Lock()
	if t.measured && width == t.width {
		t.mu.Unlock()
		return
	}
	prev, first := t.tier, !t.measured
	t.width = width
	t.tier = t.table.Tier(width)
	t.measured = true
	next := t.tier
	subs := make([]subscriber, len(t.subs))
	copy(subs, t.subs)
	t.mu.Unlock()

	if next == prev && !first {
		return
	}
	for _, s := range subs {
		s.fn(next)
	}
}

// Subscribe registers fn for tier changes and returns its unsubscribe func.
func (t *Tracker) Subscribe(fn func(Tier)) (unsubscribe func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextID++
	id := t.nextID
	t.subs = append(t.subs, subscriber{id: id, fn: fn})

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		for i, s := range t.subs {
			if s.id == id {
				t.subs = append(t.subs[:i], t.subs[i+1:]...)
				return
			}
		}
	}
}

// Subscribers returns the number of live subscriptions.
func (t *Tracker) Subscribers() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.subs)
}

// Table returns the tracker's breakpoint table.
func (t *Tracker) Table() Table {
	return t.table
}

// Measured reports whether a width has been recorded yet.
func (t *Tracker) Measured() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.measured
}

// Width returns the last measured width.
func (t *Tracker) Width() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.width
}

// CurrentBreakpoint returns the active tier.
func (t *Tracker) CurrentBreakpoint() Tier {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tier
}

// IsBreakpoint reports whether tier is the active tier.
func (t *Tracker) IsBreakpoint(tier Tier) bool {
	return t.CurrentBreakpoint() == tier
}

// AtMostWidth reports whether the current width is <= tier's bound. Always
// true for XL.
func (t *Tracker) AtMostWidth(tier Tier) bool {
	bound, ok := t.table.Bound(tier)
	if !ok {
		return tier == XL
	}
	return t.Width() <= bound
}

// AboveWidth reports whether the current width is > tier's bound. Always
// false for XL.
func (t *Tracker) AboveWidth(tier Tier) bool {
	bound, ok := t.table.Bound(tier)
	if !ok {
		return false
	}
	return t.Width() > bound
}

type trackerKey struct{}

// WithTracker returns a context carrying t.
func WithTracker(ctx context.Context, t *Tracker) context.Context {
	return context.WithValue(ctx, trackerKey{}, t)
}

// FromContext returns the tracker carried by ctx, if any.
func FromContext(ctx context.Context) (*Tracker, bool) {
	t, ok := ctx.Value(trackerKey{}).(*Tracker)
	return t, ok && t != nil
}
