package hxui

import (
	"context"
	_ "embed"
	"html"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

//go:embed static/hxui.js
var runtimeJS []byte

func (reg *Registry) serveRuntime(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(runtimeJS)
}

// Script renders the script tag that loads the browser runtime. Place it
// after htmx in the page head.
func (reg *Registry) Script() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<script src="`+html.EscapeString(reg.prefix)+`/hxui.js" defer></script>`)
		return err
	})
}
