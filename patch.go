package hxui

import (
	"net/http"

	"github.com/pthm/hxui/lib/breakpoint"
	"github.com/pthm/hxui/lib/live"
	"github.com/pthm/hxui/lib/patch"
	"github.com/pthm/hxui/lib/responsive"
	"github.com/pthm/hxui/lib/style"
)

// Patch is the answer to a breakpoint request: the operations that move a
// client element from its previous tier to the current one.
type Patch struct {
	ID     string          `json:"id"`
	Tier   breakpoint.Tier `json:"tier"`
	Hidden bool            `json:"hidden"`
	Ops    []patch.Op      `json:"ops"`
}

// serveBreakpoint handles POST {prefix}/breakpoint with form values p (the
// element's signed state), width (the new viewport width) and from (the
// tier the element was last patched for, empty if never).
func (reg *Registry) serveBreakpoint(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		reg.OnError(w, r, ErrInvalidFormat)
		return
	}

	var state liveState
	if err := reg.encoder.Decode(r.PostFormValue("p"), false, &state); err != nil {
		reg.OnError(w, r, WrapDecodeError(err))
		return
	}

	// A token lifted from one element and posted by another is rejected.
	if id := TriggerID(r); id != "" && id != state.ID {
		reg.OnError(w, r, ErrInvalidFormat)
		return
	}

	width, ok := parseWidth(r.PostFormValue("width"))
	if !ok {
		reg.OnError(w, r, ErrInvalidWidth)
		return
	}

	var from *breakpoint.Tier
	if name := r.PostFormValue("from"); name != "" {
		if t, err := breakpoint.ParseTier(name); err == nil {
			from = &t
		}
	}

	p := reg.patchFor(state, from, width)
	reg.logger.Debug().
		Str("element", p.ID).
		Stringer("tier", p.Tier).
		Int("ops", len(p.Ops)).
		Msg("hxui: breakpoint patch")
	reg.Respond(w, r, JSON(p).Header("Cache-Control", "no-store"))
}

// patchFor replays the element at its previous tier into a recorder, then
// records the move to the tier of width. Replaying rebuilds the set of
// overlay-owned properties the browser element currently carries, so the
// recorded clear step removes exactly those.
func (reg *Registry) patchFor(state liveState, from *breakpoint.Tier, width int) Patch {
	rec := patch.NewRecorder(nil)
	binding := live.New(live.Config{
		Surface: rec,
		Layout:  state.Layout,
		Props:   style.Props{Hide: state.Hide, Style: state.Style, Tiers: state.Tiers},
	})

	tracker := breakpoint.NewTracker(reg.table)
	if from != nil {
		tracker.Update(representativeWidth(reg.table, *from))
	}
	binding.Activate(tracker)
	defer binding.Deactivate()

	rec.Reset()
	tracker.Update(width)

	tier := reg.table.Tier(width)
	ops := rec.Ops()
	if len(ops) == 0 {
		ops = []patch.Op{}
	}
	return Patch{
		ID:     state.ID,
		Tier:   tier,
		Hidden: responsive.Hidden(state.Hide, state.Tiers, tier),
		Ops:    ops,
	}
}

// representativeWidth returns a width that falls in tier t.
func representativeWidth(tb breakpoint.Table, t breakpoint.Tier) int {
	if bound, ok := tb.Bound(t); ok {
		return bound
	}
	bound, _ := tb.Bound(breakpoint.L)
	return bound + 1
}

// PatchFor computes the patch that moves a client element from tier from
// to the tier of width, given the element's encoded state. It is what the
// breakpoint route serves, exposed for tests and tools.
func (reg *Registry) PatchFor(token string, from *breakpoint.Tier, width int) (Patch, error) {
	var state liveState
	if err := reg.encoder.Decode(token, false, &state); err != nil {
		return Patch{}, WrapDecodeError(err)
	}
	if width <= 0 {
		return Patch{}, ErrInvalidWidth
	}
	return reg.patchFor(state, from, width), nil
}
