package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pthm/hxui/lib/breakpoint"
)

func newBreakpointCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "breakpoint [width...]",
		Short: "Classify viewport widths into tiers",
		Long: `Breakpoint prints the tier each width falls in under the configured
breakpoint table. Without arguments it prints the table.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := flags.load(cmd)
			if err != nil {
				return err
			}
			return runBreakpoint(cmd, cfg.Breakpoints, args)
		},
	}
}

func runBreakpoint(cmd *cobra.Command, table breakpoint.Table, args []string) error {
	out := newPrinter(cmd.OutOrStdout())

	if len(args) == 0 {
		for _, t := range breakpoint.Tiers {
			bound, ok := table.Bound(t)
			value := "unbounded"
			if ok {
				value = "<= " + strconv.Itoa(bound) + "px"
			}
			out.field(t.String(), value)
		}
		return nil
	}

	for _, arg := range args {
		width, err := strconv.Atoi(arg)
		if err != nil || width <= 0 {
			return fmt.Errorf("invalid width %q", arg)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%6dpx  %s\n", width, out.render(labelStyle, table.Tier(width).String()))
	}
	return nil
}
