package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pthm/hxui/lib/breakpoint"
	"github.com/pthm/hxui/lib/live"
	"github.com/pthm/hxui/lib/patch"
	"github.com/pthm/hxui/lib/responsive"
	"github.com/pthm/hxui/lib/style"
)

const maxHistory = 6

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	var pxPerColumn int

	cmd := &cobra.Command{
		Use:   "preview [props.yaml]",
		Short: "Watch a prop bag follow the terminal width as if it were a viewport",
		Long: `Preview maps the terminal width to a viewport width (--px-per-column
pixels per column) and shows the live element: its tier, visibility, classes
and inline style. Resize the terminal, or use the arrow keys to nudge the
simulated width. Press q to quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			cfg, logger, err := flags.load(cmd)
			if err != nil {
				return err
			}
			layout, props, err := readProps(path, cmd.InOrStdin())
			if err != nil {
				return err
			}

			m := newPreviewModel(cfg.Breakpoints, layout, props, pxPerColumn, logger)
			defer m.close()
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout())).Run()
			return err
		},
	}

	cmd.Flags().IntVar(&pxPerColumn, "px-per-column", 10, "CSS pixels per terminal column")
	return cmd
}

// previewModel drives a live binding from terminal size messages: window
// size -> manual viewport -> tracker -> binding -> node.
type previewModel struct {
	viewport    *breakpoint.ManualViewport
	tracker     *breakpoint.Tracker
	binding     *live.Binding
	node        *patch.Node
	pxPerColumn int
	nudge       int
	columns     int
	history     []string
}

func newPreviewModel(table breakpoint.Table, layout style.Layout, props style.Props, pxPerColumn int, logger zerolog.Logger) *previewModel {
	if pxPerColumn <= 0 {
		pxPerColumn = 10
	}
	res := style.Resolve(layout, props)

	m := &previewModel{
		viewport:    breakpoint.NewManualViewport(0),
		tracker:     breakpoint.NewTracker(table),
		node:        patch.NewNode(res.Classes, res.Style),
		pxPerColumn: pxPerColumn,
	}
	m.binding = live.New(live.Config{
		Surface: m.node,
		Layout:  layout,
		Props:   style.Props{Hide: props.Hide, Style: res.Style, Tiers: props.Tiers},
		Logger:  &logger,
		OnChange: func(eff responsive.Effective) {
			m.record(eff)
		},
	})
	m.binding.Activate(m.tracker)
	return m
}

func (m *previewModel) record(eff responsive.Effective) {
	if !m.tracker.Measured() {
		return
	}
	entry := fmt.Sprintf("%5dpx %-2s hidden=%v", m.tracker.Width(), eff.Tier, eff.Hidden)
	m.history = append(m.history, entry)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

func (m *previewModel) close() {
	m.binding.Deactivate()
	m.tracker.Unmount()
}

func (m *previewModel) width() int {
	return max(1, m.columns*m.pxPerColumn+m.nudge)
}

// resize pushes the simulated width through the viewport. The tracker is
// mounted on the first size message so that it never measures zero.
func (m *previewModel) resize() {
	m.viewport.Resize(m.width())
	if m.viewport.Listeners() == 0 {
		m.tracker.Mount(m.viewport)
	}
}

func (m *previewModel) Init() tea.Cmd {
	return nil
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.columns = msg.Width
		m.resize()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.nudge -= 40
			m.resize()
		case "right", "l":
			m.nudge += 40
			m.resize()
		case "0":
			m.nudge = 0
			m.resize()
		}
	}
	return m, nil
}

var (
	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)
	hiddenStyle = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	shownStyle  = lipgloss.NewStyle().Foreground(successColor).Bold(true)
)

func (m *previewModel) View() string {
	if !m.tracker.Measured() {
		return "waiting for terminal size...\n"
	}

	tier, _ := m.binding.Tier()
	visibility := shownStyle.Render("visible")
	if m.binding.Hidden() {
		visibility = hiddenStyle.Render("hidden")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s %s  %s\n",
		labelStyle.Render("width:"), strconv.Itoa(m.tracker.Width())+"px",
		labelStyle.Render("tier:"), tier, visibility)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("class:"), strings.Join(m.node.Classes(), " "))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("style:"), m.node.Style().String())
	if owned := m.binding.Owned(); len(owned) > 0 {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("overlay:"), strings.Join(owned, ", "))
	}
	if len(m.history) > 0 {
		b.WriteString("\n" + mutedStyle.Render(strings.Join(m.history, "\n")))
	}

	return panelStyle.Render(b.String()) + "\n" + mutedStyle.Render("←/→ nudge width · 0 reset · q quit") + "\n"
}
