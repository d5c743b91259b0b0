package style

import (
	"sort"
	"strings"
)

// Style is an inline style map keyed by CSS property name (kebab-case).
type Style map[string]string

// Clone returns a copy of s. Cloning nil yields nil.
func (s Style) Clone() Style {
	if s == nil {
		return nil
	}
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Keys returns the property names in sorted order.
func (s Style) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders s as a style attribute value with properties sorted by
// name, skipping empty values.
func (s Style) String() string {
	var sb strings.Builder
	for _, k := range s.Keys() {
		v := s[k]
		if v == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(v)
		sb.WriteByte(';')
	}
	return sb.String()
}

// set writes value under key when value is non-empty.
func (s Style) set(key, value string) {
	if value != "" {
		s[key] = value
	}
}
