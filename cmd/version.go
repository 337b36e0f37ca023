package cmd

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X github.com/tupyy/rrpool/cmd.version=...".
var (
	version   = "dev"
	gitCommit = "unknown"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			label := color.New(color.FgCyan, color.Bold).SprintFunc()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%s %s\n", label("version:"), version)
			fmt.Fprintf(out, "%s %s\n", label("commit: "), gitCommit)
			fmt.Fprintf(out, "%s %s\n", label("go:     "), runtime.Version())
		},
	}
}
