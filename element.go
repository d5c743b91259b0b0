package hxui

import (
	"context"
	"fmt"
	"html"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/a-h/templ"

	"github.com/pthm/hxui/lib/style"
)

// element is one rendered HTML element. Components build an element from
// resolved classes and style, then render it with their children.
type element struct {
	tag      string
	id       string
	classes  []string
	style    style.Style
	attrs    templ.Attributes
	children []templ.Component
}

// voidTags render without children or a closing tag.
var voidTags = map[string]bool{"img": true, "source": true, "input": true, "br": true, "hr": true}

var (
	tagName  = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)
	attrName = regexp.MustCompile(`^[a-zA-Z_:@][a-zA-Z0-9_:.@-]*$`)
)

func (e element) Render(ctx context.Context, w io.Writer) error {
	tag := e.tag
	if tag == "" {
		tag = "div"
	}
	if !tagName.MatchString(tag) {
		return fmt.Errorf("%w: tag %q", ErrInvalidName, tag)
	}
	for name := range e.attrs {
		if !attrName.MatchString(name) {
			return fmt.Errorf("%w: attribute %q", ErrInvalidName, name)
		}
	}

	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(tag)
	if e.id != "" {
		writeAttr(&sb, "id", e.id)
	}
	if len(e.classes) > 0 {
		writeAttr(&sb, "class", strings.Join(e.classes, " "))
	}
	if s := e.style.String(); s != "" {
		writeAttr(&sb, "style", s)
	}
	writeAttrs(&sb, e.attrs)
	sb.WriteString(">")
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}
	if voidTags[tag] {
		return nil
	}

	for _, child := range e.children {
		if child == nil {
			continue
		}
		if err := child.Render(ctx, w); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</"+tag+">")
	return err
}

func writeAttr(sb *strings.Builder, name, value string) {
	sb.WriteString(" ")
	sb.WriteString(name)
	sb.WriteString(`="`)
	sb.WriteString(html.EscapeString(value))
	sb.WriteString(`"`)
}

// writeAttrs renders attrs in name order. Boolean true renders a bare
// attribute; false and nil are skipped.
func writeAttrs(sb *strings.Builder, attrs templ.Attributes) {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		switch name {
		case "id", "class", "style":
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		switch v := attrs[name].(type) {
		case nil:
		case bool:
			if v {
				sb.WriteString(" ")
				sb.WriteString(name)
			}
		case string:
			writeAttr(sb, name, v)
		default:
			writeAttr(sb, name, fmt.Sprint(v))
		}
	}
}

// text renders s HTML-escaped.
func text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html.EscapeString(s))
		return err
	})
}
