package hxui

import (
	"bytes"
	"context"
	"encoding/json"
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/pthm/hxui/lib/cursor"
)

// TestResult holds the result of rendering a component or serving a
// registry request in tests.
//
// Provides convenience methods for asserting on HTML content, headers,
// status codes, events, toasts, and redirects.
type TestResult struct {
	HTML            string
	StatusCode      int
	Headers         http.Header
	TriggeredEvents []string
	Toasts          []Toast
	RedirectURL     string
}

// TestRender renders a renderer's output for props and returns testable
// output. If the renderer implements Hydrater, Hydrate runs first.
//
// Use this for pure unit tests of rendering logic. It bypasses URL encoding
// and the registry; use TestGet or NewTestRequest for the HTTP path.
//
//	result, err := hxui.TestRender(gallery, props)
//	if !result.HTMLContains("expected text") {
//	    t.Fatal("missing expected content")
//	}
func TestRender[P any](r Renderer[P], props P) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), r, props)
}

// TestRenderWithContext renders with a custom context, for renderers that
// read request-scoped values.
func TestRenderWithContext[P any](ctx context.Context, r Renderer[P], props P) (*TestResult, error) {
	if h, ok := r.(Hydrater[P]); ok {
		if err := h.Hydrate(ctx, &props); err != nil {
			return nil, err
		}
	}
	return renderResult(ctx, r.Render(ctx, props))
}

// TestLive renders c as a request from a viewport of the given width would:
// client components see a measured tracker, a desktop pointer and reg.
//
//	result, err := hxui.TestLive(reg, hxui.ClientGrid(props), 600)
//	if !result.HTMLContains("grid-hide") { ... }
func TestLive(reg *Registry, c templ.Component, width int) (*TestResult, error) {
	return TestLiveWithCapabilities(reg, c, width, cursor.Desktop)
}

// TestLiveWithCapabilities is TestLive with explicit pointer capabilities.
func TestLiveWithCapabilities(reg *Registry, c templ.Component, width int, caps cursor.Capabilities) (*TestResult, error) {
	ctx, release := reg.ViewportContext(context.Background(), width, width > 0, caps)
	defer release()
	return renderResult(ctx, c)
}

func renderResult(ctx context.Context, c templ.Component) (*TestResult, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return nil, err
	}
	return &TestResult{
		HTML:       buf.String(),
		StatusCode: http.StatusOK,
		Headers:    make(http.Header),
	}, nil
}

// TestGet simulates an HTMX GET request against h.
//
//	result, err := hxui.TestGet(reg.Handler(), gallery.Prefix()+"?p="+token)
func TestGet(h http.Handler, target string) (*TestResult, error) {
	return NewTestRequest(http.MethodGet, target).Execute(h)
}

// TestPost simulates an HTMX form POST against h.
func TestPost(h http.Handler, target string, formData map[string]string) (*TestResult, error) {
	return NewTestRequest(http.MethodPost, target).WithFormValues(formData).Execute(h)
}

// TestBreakpoint posts a breakpoint request for a client element's state
// token, as the browser runtime does after a resize.
func TestBreakpoint(reg *Registry, token string, width int, from string) (*TestResult, error) {
	form := map[string]string{"p": token, "width": strconv.Itoa(width)}
	if from != "" {
		form["from"] = from
	}
	return TestPost(reg.Handler(), reg.Prefix()+"/breakpoint", form)
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny checks if the HTML contains any of the given substrings.
func (r *TestResult) HTMLContainsAny(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(r.HTML, s) {
			return true
		}
	}
	return false
}

// HasEvent checks if an event was triggered.
func (r *TestResult) HasEvent(event string) bool {
	for _, e := range r.TriggeredEvents {
		if e == event {
			return true
		}
	}
	return false
}

// HasToast checks if a toast was sent with the given level and message.
func (r *TestResult) HasToast(level, message string) bool {
	for _, t := range r.Toasts {
		if t.Level == level && t.Message == message {
			return true
		}
	}
	return false
}

// HasToastLevel checks if any toast was sent with the given level.
func (r *TestResult) HasToastLevel(level string) bool {
	for _, t := range r.Toasts {
		if t.Level == level {
			return true
		}
	}
	return false
}

// Patch decodes the body of a breakpoint response.
func (r *TestResult) Patch() (Patch, error) {
	var p Patch
	err := json.Unmarshal([]byte(r.HTML), &p)
	return p, err
}

// WasRedirected checks if the response was a redirect.
func (r *TestResult) WasRedirected() bool {
	return r.RedirectURL != ""
}

// RedirectedTo checks if the response was redirected to a specific URL.
func (r *TestResult) RedirectedTo(url string) bool {
	return r.RedirectURL == url
}

// IsOK checks if the status code is 200.
func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// HasStatus checks if the status code matches.
func (r *TestResult) HasStatus(code int) bool {
	return r.StatusCode == code
}

// HasHeader checks if a header is set with the given value.
func (r *TestResult) HasHeader(key, value string) bool {
	return r.Headers.Get(key) == value
}

// GetHeader returns the value of a header.
func (r *TestResult) GetHeader(key string) string {
	return r.Headers.Get(key)
}

// parseTriggerHeader parses the HX-Trigger header value into event names.
// The header is either a comma-separated list or a JSON object keyed by
// event name.
func parseTriggerHeader(trigger string) []string {
	trigger = strings.TrimSpace(trigger)
	if trigger == "" {
		return nil
	}

	if strings.HasPrefix(trigger, "{") {
		var events map[string]json.RawMessage
		if err := json.Unmarshal([]byte(trigger), &events); err != nil {
			return nil
		}
		names := make([]string, 0, len(events))
		for name := range events {
			names = append(names, name)
		}
		return names
	}

	parts := strings.Split(trigger, ",")
	events := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			events = append(events, p)
		}
	}
	return events
}

// toastsFromTrigger extracts toasts carried by an "hxui:toast" event.
func toastsFromTrigger(trigger string) []Toast {
	if !strings.HasPrefix(strings.TrimSpace(trigger), "{") {
		return nil
	}
	var payload struct {
		Toasts []Toast `json:"hxui:toast"`
	}
	if err := json.Unmarshal([]byte(trigger), &payload); err != nil {
		return nil
	}
	return payload.Toasts
}

// parseToastsFromHTML extracts toasts from OOB swap HTML.
// Looks for patterns like: <div class="toast toast-success" ...>message</div>
func parseToastsFromHTML(markup string) []Toast {
	var toasts []Toast

	const prefix = `<div class="toast toast-`
	idx := 0
	for {
		start := strings.Index(markup[idx:], prefix)
		if start == -1 {
			break
		}
		start += idx + len(prefix)

		levelEnd := strings.Index(markup[start:], `"`)
		if levelEnd == -1 {
			break
		}
		level := markup[start : start+levelEnd]

		tagEnd := strings.Index(markup[start:], ">")
		if tagEnd == -1 {
			break
		}
		contentStart := start + tagEnd + 1

		contentEnd := strings.Index(markup[contentStart:], "</div>")
		if contentEnd == -1 {
			break
		}
		toasts = append(toasts, Toast{
			Level:   html.UnescapeString(level),
			Message: html.UnescapeString(markup[contentStart : contentStart+contentEnd]),
		})

		idx = contentStart + contentEnd
	}

	return toasts
}

// TestRequestBuilder provides a fluent interface for building test requests.
//
//	result, err := hxui.NewTestRequest("POST", "/_hxui/breakpoint").
//	    WithFormData("p", token).
//	    WithFormData("width", "600").
//	    Execute(reg.Handler())
//
// Requests carry HX-Request: true unless WithoutHTMX is called.
type TestRequestBuilder struct {
	method   string
	url      string
	formData map[string]string
	headers  map[string]string
	cookies  []*http.Cookie
	htmx     bool
	ctx      context.Context
}

// NewTestRequest creates a new test request builder.
func NewTestRequest(method, url string) *TestRequestBuilder {
	return &TestRequestBuilder{
		method:   method,
		url:      url,
		formData: make(map[string]string),
		headers:  make(map[string]string),
		htmx:     true,
		ctx:      context.Background(),
	}
}

// WithFormData adds form data to the request.
func (b *TestRequestBuilder) WithFormData(key, value string) *TestRequestBuilder {
	b.formData[key] = value
	return b
}

// WithFormValues adds multiple form values to the request.
func (b *TestRequestBuilder) WithFormValues(data map[string]string) *TestRequestBuilder {
	for k, v := range data {
		b.formData[k] = v
	}
	return b
}

// WithHeader adds a header to the request.
func (b *TestRequestBuilder) WithHeader(key, value string) *TestRequestBuilder {
	b.headers[key] = value
	return b
}

// WithCookie adds a cookie to the request.
func (b *TestRequestBuilder) WithCookie(name, value string) *TestRequestBuilder {
	b.cookies = append(b.cookies, &http.Cookie{Name: name, Value: value})
	return b
}

// WithoutHTMX drops the HX-Request header, as a plain browser request would.
func (b *TestRequestBuilder) WithoutHTMX() *TestRequestBuilder {
	b.htmx = false
	return b
}

// WithContext sets the context for the request.
func (b *TestRequestBuilder) WithContext(ctx context.Context) *TestRequestBuilder {
	b.ctx = ctx
	return b
}

// Execute serves the request with h and collects the result.
func (b *TestRequestBuilder) Execute(h http.Handler) (*TestResult, error) {
	form := url.Values{}
	for k, v := range b.formData {
		form.Set(k, v)
	}

	req := httptest.NewRequest(b.method, b.url, strings.NewReader(form.Encode()))
	req = req.WithContext(b.ctx)
	if b.htmx {
		req.Header.Set("HX-Request", "true")
	}
	if len(b.formData) > 0 {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for k, v := range b.headers {
		req.Header.Set(k, v)
	}
	for _, c := range b.cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	result := &TestResult{
		HTML:       rec.Body.String(),
		StatusCode: rec.Code,
		Headers:    rec.Header(),
	}
	if trigger := rec.Header().Get("HX-Trigger"); trigger != "" {
		result.TriggeredEvents = parseTriggerHeader(trigger)
		result.Toasts = toastsFromTrigger(trigger)
	}
	if redirect := rec.Header().Get("HX-Redirect"); redirect != "" {
		result.RedirectURL = redirect
	}
	result.Toasts = append(result.Toasts, parseToastsFromHTML(result.HTML)...)

	return result, nil
}

// MockHydrater wraps a renderer and provides a custom hydration function.
//
// Useful for injecting test data without needing real dependencies:
//
//	mock := hxui.NewMockHydrater(gallery, func(ctx context.Context, p *GalleryProps) error {
//	    p.Items = fixtures
//	    return nil
//	})
//	result, err := hxui.TestRender(mock, props)
type MockHydrater[P any] struct {
	Renderer     Renderer[P]
	HydrateFunc  func(ctx context.Context, props *P) error
	hydrateProps *P
}

// NewMockHydrater creates a MockHydrater that wraps r.
func NewMockHydrater[P any](r Renderer[P], hydrateFn func(ctx context.Context, props *P) error) *MockHydrater[P] {
	return &MockHydrater[P]{
		Renderer:    r,
		HydrateFunc: hydrateFn,
	}
}

// Hydrate calls the custom hydrate function.
func (m *MockHydrater[P]) Hydrate(ctx context.Context, props *P) error {
	m.hydrateProps = props
	return m.HydrateFunc(ctx, props)
}

// Render delegates to the wrapped renderer.
func (m *MockHydrater[P]) Render(ctx context.Context, props P) templ.Component {
	return m.Renderer.Render(ctx, props)
}

// LastHydratedProps returns the props from the last Hydrate call.
func (m *MockHydrater[P]) LastHydratedProps() *P {
	return m.hydrateProps
}
