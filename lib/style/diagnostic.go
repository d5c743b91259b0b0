package style

import "fmt"

// Diagnostic codes.
const (
	CodeConflict       = "conflict"
	CodeUnknownColor   = "unknown-color"
	CodeUnknownVariant = "unknown-variant"
	CodeUnknownToken   = "unknown-token"
)

// Diagnostic is a non-fatal finding about a prop bag. Resolution never fails;
// diagnostics tell the caller what was ignored or overridden.
type Diagnostic struct {
	Code       string
	Field      string
	Message    string
	Suggestion string
}

func (d Diagnostic) String() string {
	if d.Suggestion != "" {
		return fmt.Sprintf("%s: %s (did you mean %q?)", d.Field, d.Message, d.Suggestion)
	}
	return fmt.Sprintf("%s: %s", d.Field, d.Message)
}
