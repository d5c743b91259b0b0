package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/hxui/lib/breakpoint"
	"github.com/pthm/hxui/lib/style"
)

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint [props.yaml]",
		Short: "Report unknown tokens and conflicting props",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runLint(cmd, path)
		},
	}
}

func runLint(cmd *cobra.Command, path string) error {
	_, props, err := readProps(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	diags := style.Lint(props)
	for _, t := range breakpoint.Tiers {
		o := props.Tiers.At(t)
		if o == nil {
			continue
		}
		// Overlay offsets share the base vocabulary.
		for _, d := range style.Lint(style.Props{Top: o.Top, Right: o.Right, Bottom: o.Bottom, Left: o.Left}) {
			d.Field = "tiers." + t.String() + "." + d.Field
			diags = append(diags, d)
		}
	}

	out := newPrinter(cmd.OutOrStdout())
	if len(diags) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), out.render(successStyle, "ok"))
		return nil
	}
	out.diagnostics(diags)
	return fmt.Errorf("lint: %d problem(s)", len(diags))
}
