package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eLbARROS13/OH-Toolkit/cmd/ohtk/internal"
	"github.com/eLbARROS13/OH-Toolkit/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	if globalFlags.OutputFormat() == internal.FormatJSON {
		formatter := internal.NewFormatter(internal.FormatJSON, cmd.OutOrStdout())
		return formatter.PrintJSON(version.Info())
	}
	fmt.Fprintln(cmd.OutOrStdout(), version.String())
	return nil
}
