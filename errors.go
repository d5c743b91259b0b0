package hxui

import (
	"context"
	"errors"
	"html"
	"io"

	"github.com/a-h/templ"
)

// Sentinel errors for live component requests.
var (
	ErrNotFound         = errors.New("hxui: resource not found")
	ErrDecryptFailed    = errors.New("hxui: state decryption failed")
	ErrSignatureInvalid = errors.New("hxui: signature verification failed")
	ErrInvalidFormat    = errors.New("hxui: invalid state format")
	ErrInvalidWidth     = errors.New("hxui: invalid viewport width")
	ErrNoRegistry       = errors.New("hxui: no registry in context")
	ErrInvalidName      = errors.New("hxui: invalid element or attribute name")
)

// IsNotFound checks if err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDecodeError checks if err came from decoding client-supplied state or
// parameters. Such errors are the client's fault and map to 400.
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) ||
		errors.Is(err, ErrSignatureInvalid) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidWidth)
}

// ErrorComponent renders err as an inline error block. The default OnError
// handler uses it for HTMX requests so the failure lands in the swap target.
func ErrorComponent(err error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, werr := io.WriteString(w, `<div class="hxui-error" role="alert">Component error: `+
			html.EscapeString(err.Error())+`</div>`)
		return werr
	})
}
