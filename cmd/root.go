package cmd

import (
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "rrpool",
		Short:         "A TCP front-end answering request heads from a round-robin worker pool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(NewRunCommand())
	root.AddCommand(NewVersionCommand())

	return root
}
