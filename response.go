package hxui

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
)

// Response describes what a registry route writes back: a body (markup or
// JSON), toasts, events and headers.
//
// Response is a fluent value builder; every method returns a modified copy.
//
//	return hxui.HTML(view).Toast(hxui.ToastSuccess, "Saved")
//	return hxui.JSON(patch).Trigger("hxui:patched")
//	return hxui.Fail(err)
type Response struct {
	body        templ.Component
	json        any
	err         error
	redirect    string
	toasts      []Toast
	trigger     string
	triggerData map[string]any
	headers     map[string]string
	status      int
}

// HTML creates a response rendering c.
func HTML(c templ.Component) Response {
	return Response{body: c}
}

// JSON creates a response encoding v as JSON.
func JSON(v any) Response {
	return Response{json: v}
}

// Fail creates a response that hands err to the registry's OnError.
func Fail(err error) Response {
	return Response{err: err}
}

// Redirect creates a response that redirects via the HX-Redirect header.
func Redirect(url string) Response {
	return Response{redirect: url}
}

// Toast adds a toast notification. In HTML responses toasts are rendered
// as out-of-band swaps into #toasts; in JSON responses they travel in the
// HX-Trigger header as an "hxui:toast" event.
func (r Response) Toast(level, message string) Response {
	r.toasts = append(r.toasts, Toast{Level: level, Message: message})
	return r
}

// WithToasts appends already built toasts, such as the one returned by Copy.
func (r Response) WithToasts(toasts ...Toast) Response {
	r.toasts = append(r.toasts, toasts...)
	return r
}

// Trigger emits an event via the HX-Trigger header, optionally with data.
func (r Response) Trigger(event string, data ...map[string]any) Response {
	r.trigger = event
	if len(data) > 0 {
		r.triggerData = data[0]
	}
	return r
}

// Header sets a custom response header.
func (r Response) Header(key, value string) Response {
	if r.headers == nil {
		r.headers = make(map[string]string)
	}
	r.headers[key] = value
	return r
}

// Status sets the HTTP status code. The default is 200.
func (r Response) Status(code int) Response {
	r.status = code
	return r
}

// Err returns the error of a Fail response.
func (r Response) Err() error {
	return r.err
}

// Toasts returns the toasts added to the response.
func (r Response) Toasts() []Toast {
	return r.toasts
}

// Respond writes resp for request r.
func (reg *Registry) Respond(w http.ResponseWriter, r *http.Request, resp Response) {
	if resp.err != nil {
		reg.OnError(w, r, resp.err)
		return
	}

	for k, v := range resp.headers {
		w.Header().Set(k, v)
	}
	if resp.redirect != "" {
		w.Header().Set("HX-Redirect", resp.redirect)
	}

	triggerData := resp.triggerData
	trigger := resp.trigger
	if resp.json != nil && len(resp.toasts) > 0 {
		merged := map[string]any{"hxui:toast": resp.toasts}
		if trigger != "" {
			if triggerData != nil {
				merged[trigger] = triggerData
			} else {
				merged[trigger] = true
			}
		}
		trigger, triggerData = "", nil
		data, err := json.Marshal(merged)
		if err == nil {
			w.Header().Set("HX-Trigger", string(data))
		}
	}
	if h := BuildTriggerHeader(trigger, triggerData); h != "" {
		w.Header().Set("HX-Trigger", h)
	}

	status := resp.status
	if status == 0 {
		status = http.StatusOK
	}

	switch {
	case resp.json != nil:
		data, err := json.Marshal(resp.json)
		if err != nil {
			reg.OnError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(data)
	case resp.body != nil:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		if err := resp.body.Render(r.Context(), w); err != nil {
			reg.logger.Error().Err(err).Str("path", r.URL.Path).Msg("hxui: render failed")
			return
		}
		if len(resp.toasts) > 0 {
			_ = RenderToastsOOB(resp.toasts).Render(r.Context(), w)
		}
	default:
		if len(resp.toasts) > 0 {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(status)
			_ = RenderToastsOOB(resp.toasts).Render(r.Context(), w)
			return
		}
		w.WriteHeader(status)
	}
}
