package main

import (
	"github.com/spf13/cobra"

	"github.com/eLbARROS13/OH-Toolkit/cmd/ohtk/internal"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List loaded subjects",
	Long:  `List the subject IDs of all profiles found in the data directory`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	set, err := loadProfiles(cmd.Context())
	if err != nil {
		return err
	}

	formatter := internal.NewFormatter(globalFlags.OutputFormat(), cmd.OutOrStdout())
	return formatter.PrintList("Subjects", set.Subjects())
}
