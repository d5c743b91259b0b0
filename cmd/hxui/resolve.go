package main

import (
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pthm/hxui"
	"github.com/pthm/hxui/lib/breakpoint"
	"github.com/pthm/hxui/lib/responsive"
	"github.com/pthm/hxui/lib/style"
)

type resolveOptions struct {
	tier string
	copy bool
}

func newResolveCmd(flags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve [props.yaml]",
		Short: "Print the classes and inline style a prop bag resolves to",
		Long: `Resolve reads a YAML prop bag (from a file, or stdin when omitted or "-")
and prints its class list and inline style. With --tier the overlay for that
tier is merged first and the cascaded visibility is reported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			_, logger, err := flags.load(cmd)
			if err != nil {
				return err
			}
			return runResolve(cmd, logger, path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.tier, "tier", "t", "", "Merge the overlay for this tier (xs, s, m, l, xl)")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the class list to the clipboard")

	return cmd
}

func runResolve(cmd *cobra.Command, logger zerolog.Logger, path string, opts *resolveOptions) error {
	layout, props, err := readProps(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	out := newPrinter(cmd.OutOrStdout())
	out.field("layout", layout.String())

	if opts.tier != "" {
		tier, err := breakpoint.ParseTier(opts.tier)
		if err != nil {
			return err
		}
		eff := responsive.Merge(props, tier)
		props = eff.Props
		out.field("tier", tier.String())
		out.field("hidden", strconv.FormatBool(eff.Hidden))
	}

	res := style.Resolve(layout, props)
	out.field("class", res.Class())
	out.field("style", res.Style.String())
	out.diagnostics(res.Diagnostics)

	if opts.copy {
		ctx := logger.WithContext(cmd.Context())
		var cb hxui.Clipboard
		if isTerminal(cmd.OutOrStdout()) {
			cb = osc52{w: cmd.OutOrStdout()}
		}
		out.toast(hxui.Copy(ctx, cb, res.Class()))
	}
	return nil
}
