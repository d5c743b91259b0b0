package hxui

import (
	"bytes"
	"context"
	"net/http"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"

	"github.com/pthm/hxui/lib/breakpoint"
	"github.com/pthm/hxui/lib/cursor"
	"github.com/pthm/hxui/lib/patch"
	"github.com/pthm/hxui/lib/style"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func renderString(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

var classAttr = regexp.MustCompile(`class="([^"]*)"`)

// classesOf returns the classes of the first element in markup.
func classesOf(t *testing.T, markup string) []string {
	t.Helper()
	m := classAttr.FindStringSubmatch(markup)
	if m == nil {
		t.Fatalf("no class attribute in %s", markup)
	}
	return strings.Fields(m[1])
}

var tokenAttr = regexp.MustCompile(`p: &#34;([^&]+)&#34;`)

func liveToken(t *testing.T, markup string) string {
	t.Helper()
	m := tokenAttr.FindStringSubmatch(markup)
	if m == nil {
		t.Fatalf("no state token in %s", markup)
	}
	return m[1]
}

func TestServerFlex(t *testing.T) {
	html := renderString(t, context.Background(), ServerFlex(Props{
		ID: "hero",
		Props: style.Props{
			Direction:   "column",
			Background:  "surface",
			AspectRatio: "16/9",
			Tiers: style.Overlays{
				S: &style.Overlay{Direction: "row", Hide: style.Bool(true)},
			},
		},
		Attrs: templ.Attributes{"data-b": "2", "data-a": "1", "hidden": false, "inert": true},
	}, Text("<hi>")))

	if !strings.HasPrefix(html, `<div id="hero" class="display-flex position-relative`) {
		t.Errorf("unexpected opening tag: %s", html)
	}
	classes := classesOf(t, html)
	for _, want := range []string{"surface-background", "flex-column", "s-flex-row", "s-flex-hide"} {
		if !slices.Contains(classes, want) {
			t.Errorf("classes %v missing %q", classes, want)
		}
	}
	if !strings.Contains(html, `style="aspect-ratio: 16/9;"`) {
		t.Errorf("missing inline style: %s", html)
	}
	if !strings.Contains(html, `data-a="1" data-b="2" inert>`) {
		t.Errorf("attributes should render sorted with bare booleans: %s", html)
	}
	if strings.Contains(html, "hidden") {
		t.Errorf("false attribute should be skipped: %s", html)
	}
	if !strings.HasSuffix(html, "&lt;hi&gt;</div>") {
		t.Errorf("children should render escaped: %s", html)
	}
}

func TestServerGridTag(t *testing.T) {
	html := renderString(t, context.Background(), ServerGrid(Props{Tag: "section", Props: style.Props{Columns: "3"}}))
	if !strings.HasPrefix(html, `<section class="display-grid position-relative`) || !strings.HasSuffix(html, "</section>") {
		t.Errorf("unexpected markup: %s", html)
	}
	if !slices.Contains(classesOf(t, html), "columns-3") {
		t.Errorf("missing columns class: %s", html)
	}
}

func TestServerFlexLogsDiagnostics(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs)
	ctx := logger.WithContext(context.Background())

	html := renderString(t, ctx, ServerFlex(Props{ID: "x", Props: style.Props{Background: "purple-strong"}}))
	if strings.Contains(html, "purple") {
		t.Errorf("unknown color should contribute nothing: %s", html)
	}
	if !strings.Contains(logs.String(), `"code":"unknown-color"`) || !strings.Contains(logs.String(), `"element":"x"`) {
		t.Errorf("diagnostic not logged: %s", logs.String())
	}
}

func TestClientGridFollowsRequestTier(t *testing.T) {
	reg := NewRegistry(testKey)
	props := ClientProps{Props: Props{
		ID: "cards",
		Props: style.Props{
			Columns: "3",
			Style:   style.Style{"opacity": "1"},
			Tiers: style.Overlays{
				L: &style.Overlay{Hide: style.Bool(true)},
				S: &style.Overlay{Style: style.Style{"opacity": "0.5"}},
			},
		},
	}}

	tests := []struct {
		width   int
		hidden  bool
		opacity string
		tier    string
	}{
		{1600, false, "1", "xl"},
		{1200, true, "1", "l"},
		{600, true, "0.5", "s"},
	}

	for _, tt := range tests {
		result, err := TestLive(reg, ClientGrid(props), tt.width)
		if err != nil {
			t.Fatalf("TestLive(%d) error = %v", tt.width, err)
		}
		classes := classesOf(t, result.HTML)
		if got := slices.Contains(classes, "grid-hide"); got != tt.hidden {
			t.Errorf("width %d: grid-hide = %v, want %v (%v)", tt.width, got, tt.hidden, classes)
		}
		if !slices.Contains(classes, "l-grid-hide") {
			t.Errorf("width %d: static tier class missing: %v", tt.width, classes)
		}
		if !result.HTMLContains(`opacity: ` + tt.opacity + `;`) {
			t.Errorf("width %d: want opacity %s in %s", tt.width, tt.opacity, result.HTML)
		}
		if !result.HTMLContains(`data-hxui-tier="` + tt.tier + `"`) {
			t.Errorf("width %d: want tier %s in %s", tt.width, tt.tier, result.HTML)
		}
	}
}

func TestClientFlexWithoutTracker(t *testing.T) {
	html := renderString(t, context.Background(), ClientFlex(ClientProps{Props: Props{
		Props: style.Props{Tiers: style.Overlays{XS: &style.Overlay{Hide: style.Bool(true)}}},
	}}))

	if strings.Contains(html, " flex-hide") {
		t.Errorf("unmeasured element should render its base visibility: %s", html)
	}
	if strings.Contains(html, "hx-post") {
		t.Errorf("no registry, no live wiring: %s", html)
	}
	if !strings.HasPrefix(html, `<div id="flex-`) {
		t.Errorf("client element should get a generated id: %s", html)
	}
}

func TestClientFlexLiveAttrs(t *testing.T) {
	reg := NewRegistry(testKey, WithPrefix("/ui"))
	result, err := TestLive(reg, ClientFlex(ClientProps{Props: Props{ID: "nav"}}), 900)
	if err != nil {
		t.Fatalf("TestLive() error = %v", err)
	}

	for _, want := range []string{
		`data-hxui-live`,
		`hx-ext="hxui"`,
		`hx-post="/ui/breakpoint"`,
		`hx-swap="none"`,
		`hx-trigger="hxui:resize from:window"`,
		`document.getElementById(&#34;nav&#34;).dataset.hxuiTier`,
	} {
		if !result.HTMLContains(want) {
			t.Errorf("missing %s in %s", want, result.HTML)
		}
	}
	liveToken(t, result.HTML)
}

func TestClientFlexCursor(t *testing.T) {
	reg := NewRegistry(testKey)
	props := ClientProps{
		Props:  Props{ID: "tile"},
		Cursor: &cursor.Descriptor{Content: Text("drag"), OffsetX: 8, OffsetY: -4},
	}

	result, err := TestLive(reg, ClientFlex(props), 1600)
	if err != nil {
		t.Fatalf("TestLive() error = %v", err)
	}
	if !result.HTMLContainsAll(`cursor: none;`, `data-hxui-follower="tile"`, `data-hxui-offset-x="8"`, `data-hxui-offset-y="-4"`, ">drag</div>") {
		t.Errorf("desktop render should suppress the native cursor and add a follower: %s", result.HTML)
	}

	result, err = TestLiveWithCapabilities(reg, ClientFlex(props), 1600, cursor.StaticCapabilities{Touch: true})
	if err != nil {
		t.Fatalf("TestLiveWithCapabilities() error = %v", err)
	}
	if result.HTMLContainsAny("cursor: none", "data-hxui-follower") {
		t.Errorf("touch-primary render should keep the native cursor: %s", result.HTML)
	}
}

func TestClientGridFollowerTracksPointerCookie(t *testing.T) {
	reg := NewRegistry(testKey)
	h := reg.Middleware(templ.Handler(ClientGrid(ClientProps{
		Props:  Props{ID: "board", Props: style.Props{Cursor: "grab"}},
		Cursor: &cursor.Descriptor{Content: Text("move"), OffsetX: 4, OffsetY: 4},
	})))

	tests := []struct {
		pointer string
		mounted bool
	}{
		{"coarse", false},
		{"fine", true},
		{"coarse", false},
	}
	for _, tt := range tests {
		result, err := NewTestRequest(http.MethodGet, "/").WithCookie("hxui-pointer", tt.pointer).Execute(h)
		if err != nil {
			t.Fatalf("%s: Execute() error = %v", tt.pointer, err)
		}
		if got := result.HTMLContains(`data-hxui-follower="board"`); got != tt.mounted {
			t.Errorf("%s: follower mounted = %v, want %v: %s", tt.pointer, got, tt.mounted, result.HTML)
		}
		if got := result.HTMLContains("cursor: none;"); got != tt.mounted {
			t.Errorf("%s: native cursor suppressed = %v, want %v", tt.pointer, got, tt.mounted)
		}
		if !tt.mounted && !result.HTMLContains("cursor: grab;") {
			t.Errorf("%s: element should keep its own cursor: %s", tt.pointer, result.HTML)
		}
		// Either way the page carries what the runtime needs to flip the
		// follower when the pointer changes after load.
		if !result.HTMLContainsAll(`<template data-hxui-cursor-template="board">`, `data-hxui-cursor="grab"`, ">move</div></template>") {
			t.Errorf("%s: missing cursor template: %s", tt.pointer, result.HTML)
		}
	}
}

func TestBreakpointPatchRestoresBase(t *testing.T) {
	reg := NewRegistry(testKey)
	rendered, err := TestLive(reg, ClientGrid(ClientProps{Props: Props{
		ID: "cards",
		Props: style.Props{
			Style: style.Style{"opacity": "1"},
			Tiers: style.Overlays{
				S: &style.Overlay{Hide: style.Bool(true), Style: style.Style{"opacity": "0.5"}},
			},
		},
	}}), 600)
	if err != nil {
		t.Fatalf("TestLive() error = %v", err)
	}
	token := liveToken(t, rendered.HTML)

	result, err := TestBreakpoint(reg, token, 1600, "s")
	if err != nil {
		t.Fatalf("TestBreakpoint() error = %v", err)
	}
	if !result.IsOK() {
		t.Fatalf("status = %d, body = %s", result.StatusCode, result.HTML)
	}
	if !result.HasHeader("Cache-Control", "no-store") {
		t.Errorf("breakpoint responses must not be cached")
	}

	p, err := result.Patch()
	if err != nil {
		t.Fatalf("Patch() error = %v", err)
	}
	if p.ID != "cards" || p.Tier != breakpoint.XL || p.Hidden {
		t.Errorf("patch = %+v", p)
	}
	want := []patch.Op{
		{Kind: patch.OpRemove, Name: "opacity"},
		{Kind: patch.OpSet, Name: "opacity", Value: "1"},
		{Kind: patch.OpRemoveClass, Name: "grid-hide"},
	}
	if !slices.Equal(p.Ops, want) {
		t.Errorf("ops = %v, want %v", p.Ops, want)
	}
}

func TestBreakpointPatchFromUnknownTier(t *testing.T) {
	reg := NewRegistry(testKey)
	token, err := reg.encoder.Encode(liveState{
		ID:     "a",
		Layout: style.Flex,
		Tiers:  style.Overlays{M: &style.Overlay{AspectRatio: "1/1"}},
	}, false)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	p, err := reg.PatchFor(token, nil, 1000)
	if err != nil {
		t.Fatalf("PatchFor() error = %v", err)
	}
	want := []patch.Op{
		{Kind: patch.OpSet, Name: "aspect-ratio", Value: "1/1"},
		{Kind: patch.OpRemoveClass, Name: "flex-hide"},
	}
	if !slices.Equal(p.Ops, want) {
		t.Errorf("ops = %v, want %v", p.Ops, want)
	}

	from := breakpoint.M
	p, err = reg.PatchFor(token, &from, 300)
	if err != nil {
		t.Fatalf("PatchFor() error = %v", err)
	}
	want = []patch.Op{
		{Kind: patch.OpRemove, Name: "aspect-ratio"},
		{Kind: patch.OpRemoveClass, Name: "flex-hide"},
	}
	if !slices.Equal(p.Ops, want) {
		t.Errorf("ops = %v, want %v", p.Ops, want)
	}
	if p.Tier != breakpoint.XS {
		t.Errorf("tier = %v, want xs", p.Tier)
	}
}

func TestBreakpointErrors(t *testing.T) {
	reg := NewRegistry(testKey)
	token, err := reg.encoder.Encode(liveState{ID: "a"}, false)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	target := reg.Prefix() + "/breakpoint"

	tests := []struct {
		name string
		req  *TestRequestBuilder
		want int
	}{
		{"get not allowed", NewTestRequest(http.MethodGet, target), http.StatusMethodNotAllowed},
		{"csrf guard", NewTestRequest(http.MethodPost, target).WithoutHTMX().WithFormData("p", token).WithFormData("width", "500"), http.StatusForbidden},
		{"tampered state", NewTestRequest(http.MethodPost, target).WithFormData("p", token+"x").WithFormData("width", "500"), http.StatusBadRequest},
		{"bad width", NewTestRequest(http.MethodPost, target).WithFormData("p", token).WithFormData("width", "wide"), http.StatusBadRequest},
		{"zero width", NewTestRequest(http.MethodPost, target).WithFormData("p", token).WithFormData("width", "0"), http.StatusBadRequest},
		{"foreign element", NewTestRequest(http.MethodPost, target).WithHeader("HX-Trigger", "b").WithFormData("p", token).WithFormData("width", "500"), http.StatusBadRequest},
		{"ok", NewTestRequest(http.MethodPost, target).WithHeader("HX-Trigger", "a").WithFormData("p", token).WithFormData("width", "500"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.req.Execute(reg.Handler())
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if result.StatusCode != tt.want {
				t.Errorf("status = %d, want %d (%s)", result.StatusCode, tt.want, result.HTML)
			}
		})
	}

	if _, err := reg.PatchFor(token, nil, -1); err != ErrInvalidWidth {
		t.Errorf("PatchFor(-1) error = %v, want %v", err, ErrInvalidWidth)
	}
}

func TestClientFlexUnmeasuredLoadsPatch(t *testing.T) {
	reg := NewRegistry(testKey)
	result, err := TestLive(reg, ClientFlex(ClientProps{Props: Props{ID: "nav"}}), 0)
	if err != nil {
		t.Fatalf("TestLive() error = %v", err)
	}
	if !result.HTMLContains(`hx-trigger="load, hxui:resize from:window"`) {
		t.Errorf("unmeasured element should request a patch on load: %s", result.HTML)
	}
	if result.HTMLContains("data-hxui-tier") {
		t.Errorf("unmeasured element has no tier: %s", result.HTML)
	}
}
