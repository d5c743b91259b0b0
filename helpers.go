package hxui

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response using the request's
// context, so the tracker and capabilities attached by Middleware reach
// client components.
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// IsHTMX returns true if the request originated from HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// TriggerID returns the id of the element that issued the request. For
// breakpoint requests this is the live element being patched.
func TriggerID(r *http.Request) string {
	return r.Header.Get("HX-Trigger")
}

// BuildTriggerHeader builds an HX-Trigger header value.
//
//	"hxui:resize"                      -> hxui:resize
//	"hxui:tier" + {"tier": "m"}        -> {"hxui:tier":{"tier":"m"}}
func BuildTriggerHeader(trigger string, triggerData map[string]any) string {
	if trigger == "" {
		return ""
	}
	if triggerData == nil {
		return trigger
	}

	data, err := json.Marshal(map[string]any{trigger: triggerData})
	if err != nil {
		return trigger
	}
	return string(data)
}
