package hxui

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func respond(t *testing.T, resp Response) *httptest.ResponseRecorder {
	t.Helper()
	reg := NewRegistry(testKey)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	reg.Respond(rec, req, resp)
	return rec
}

func TestResponse_IsValueBuilder(t *testing.T) {
	base := HTML(Text("x"))
	withToast := base.Toast(ToastInfo, "hi")

	if len(base.Toasts()) != 0 {
		t.Error("Toast() should not modify the receiver")
	}
	if len(withToast.Toasts()) != 1 {
		t.Errorf("Toasts() = %v, want one", withToast.Toasts())
	}
	if Fail(ErrNotFound).Err() != ErrNotFound {
		t.Error("Err() should return the failure")
	}
}

func TestRespond_HTMLWithToasts(t *testing.T) {
	rec := respond(t, HTML(Text("body")).
		Toast(ToastSuccess, "Saved").
		WithToasts(Toast{Level: ToastWarning, Message: "<careful>"}).
		Trigger("item:saved").
		Header("X-Custom", "1").
		Status(http.StatusCreated))

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if rec.Header().Get("HX-Trigger") != "item:saved" {
		t.Errorf("HX-Trigger = %q", rec.Header().Get("HX-Trigger"))
	}
	if rec.Header().Get("X-Custom") != "1" {
		t.Error("custom header missing")
	}

	body := rec.Body.String()
	if !strings.HasPrefix(body, "body") || !strings.Contains(body, `hx-swap-oob="beforeend"`) {
		t.Errorf("body = %s", body)
	}
	toasts := parseToastsFromHTML(body)
	want := []Toast{{ToastSuccess, "Saved"}, {ToastWarning, "<careful>"}}
	if len(toasts) != len(want) {
		t.Fatalf("toasts = %v, want %v", toasts, want)
	}
	for i := range want {
		if toasts[i] != want[i] {
			t.Errorf("toast[%d] = %v, want %v", i, toasts[i], want[i])
		}
	}
}

func TestRespond_JSONCarriesToastsInTrigger(t *testing.T) {
	rec := respond(t, JSON(map[string]int{"n": 1}).
		Toast(ToastError, "nope").
		Trigger("done", map[string]any{"id": 7}))

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Body.String() != `{"n":1}` {
		t.Errorf("body = %s", rec.Body.String())
	}

	var trigger map[string]json.RawMessage
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &trigger); err != nil {
		t.Fatalf("HX-Trigger is not JSON: %v", err)
	}
	if _, ok := trigger["done"]; !ok {
		t.Errorf("trigger event missing: %v", trigger)
	}
	if got := toastsFromTrigger(rec.Header().Get("HX-Trigger")); len(got) != 1 || got[0].Message != "nope" {
		t.Errorf("toasts = %v", got)
	}
}

func TestRespond_Redirect(t *testing.T) {
	rec := respond(t, Redirect("/next"))
	if rec.Header().Get("HX-Redirect") != "/next" {
		t.Errorf("HX-Redirect = %q", rec.Header().Get("HX-Redirect"))
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestRespond_Fail(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrSignatureInvalid, http.StatusBadRequest},
		{ErrInvalidWidth, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if rec := respond(t, Fail(tt.err)); rec.Code != tt.want {
			t.Errorf("Fail(%v) status = %d, want %d", tt.err, rec.Code, tt.want)
		}
	}
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteText(ctx context.Context, text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func TestCopy(t *testing.T) {
	ctx := context.Background()

	cb := &fakeClipboard{}
	if got := Copy(ctx, cb, "display-flex"); got != (Toast{ToastSuccess, "Copied to clipboard"}) {
		t.Errorf("Copy() = %v", got)
	}
	if cb.text != "display-flex" {
		t.Errorf("clipboard = %q", cb.text)
	}

	if got := Copy(ctx, &fakeClipboard{err: errors.New("denied")}, "x"); got != (Toast{ToastError, "Failed to copy"}) {
		t.Errorf("Copy() failure = %v", got)
	}
	if got := Copy(ctx, nil, "x"); got.Level != ToastError {
		t.Errorf("Copy(nil) = %v", got)
	}
}

func TestToastContainer(t *testing.T) {
	html := renderString(t, context.Background(), ToastContainer())
	if !strings.Contains(html, `id="toasts"`) {
		t.Errorf("ToastContainer() = %s", html)
	}
	if html := renderString(t, context.Background(), RenderToastsOOB(nil)); html != "" {
		t.Errorf("RenderToastsOOB(nil) = %q, want empty", html)
	}
}
