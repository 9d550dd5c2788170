package cmd

import (
	"github.com/spf13/cobra"

	"pickbox/internal/source"
)

func newDemoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Pick a US state from the built-in list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, nil, source.DemoOptions())
		},
	}
}
