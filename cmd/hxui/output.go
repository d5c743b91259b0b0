package main

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/pthm/hxui"
	"github.com/pthm/hxui/lib/style"
)

var (
	primaryColor = lipgloss.Color("99")
	successColor = lipgloss.Color("42")
	warningColor = lipgloss.Color("226")
	errorColor   = lipgloss.Color("196")
	mutedColor   = lipgloss.Color("245")

	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).Width(8)
	valueStyle   = lipgloss.NewStyle()
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	warnStyle    = lipgloss.NewStyle().Foreground(warningColor)
	successStyle = lipgloss.NewStyle().Foreground(successColor).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
)

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// printer writes labelled lines, styled only when w is a terminal.
type printer struct {
	w     io.Writer
	color bool
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, color: isTerminal(w)}
}

func (p *printer) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

func (p *printer) field(label, value string) {
	if p.color {
		fmt.Fprintf(p.w, "%s %s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
		return
	}
	fmt.Fprintf(p.w, "%-8s %s\n", label+":", value)
}

func (p *printer) diagnostics(diags []style.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(p.w, "%s %s\n", p.render(warnStyle, "warning"), d.String())
	}
}

func (p *printer) toast(t hxui.Toast) {
	s := successStyle
	if t.Level != hxui.ToastSuccess {
		s = errorStyle
	}
	fmt.Fprintln(p.w, p.render(s, t.Message))
}

var errNotTerminal = errors.New("output is not a terminal")

// osc52 copies text through the terminal with an OSC 52 escape sequence.
type osc52 struct {
	w io.Writer
}

func (c osc52) WriteText(ctx context.Context, text string) error {
	if !isTerminal(c.w) {
		return errNotTerminal
	}
	_, err := fmt.Fprintf(c.w, "\x1b]52;c;%s\a", base64.StdEncoding.EncodeToString([]byte(text)))
	return err
}
