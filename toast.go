package hxui

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"
)

// Toast levels.
const (
	ToastSuccess = "success"
	ToastError   = "error"
	ToastWarning = "warning"
	ToastInfo    = "info"
)

// Toast is a one-time notification.
//
// Toasts are rendered as out-of-band (OOB) swaps that append to the #toasts
// container. The browser runtime dismisses them after data-auto-dismiss
// milliseconds.
type Toast struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// RenderToastsOOB renders toasts as an OOB swap into #toasts.
func RenderToastsOOB(toasts []Toast) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(toasts) == 0 {
			return nil
		}

		var sb strings.Builder
		sb.WriteString(`<div id="toasts" hx-swap-oob="beforeend">`)
		for _, t := range toasts {
			sb.WriteString(`<div class="toast toast-`)
			sb.WriteString(html.EscapeString(t.Level))
			sb.WriteString(`" role="status" data-auto-dismiss="3000">`)
			sb.WriteString(html.EscapeString(t.Message))
			sb.WriteString(`</div>`)
		}
		sb.WriteString(`</div>`)

		_, err := io.WriteString(w, sb.String())
		return err
	})
}

// ToastContainer returns the container toasts are swapped into. Add it to
// the page layout once, typically near the end of <body>.
func ToastContainer() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="toasts" class="toast-container" aria-live="polite"></div>`)
		return err
	})
}

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Copy writes text to cb and reports the outcome as a toast. A failure is
// logged and turned into an error toast; it is never returned.
func Copy(ctx context.Context, cb Clipboard, text string) Toast {
	if cb == nil {
		return Toast{Level: ToastError, Message: "Clipboard unavailable"}
	}
	if err := cb.WriteText(ctx, text); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("hxui: copy to clipboard failed")
		return Toast{Level: ToastError, Message: "Failed to copy"}
	}
	return Toast{Level: ToastSuccess, Message: "Copied to clipboard"}
}
