package main

import (
	"github.com/spf13/cobra"

	"github.com/eLbARROS13/OH-Toolkit/cmd/ohtk/internal"
	"github.com/eLbARROS13/OH-Toolkit/internal/inspect"
)

var inspectDepth int

var inspectCmd = &cobra.Command{
	Use:   "inspect SUBJECT",
	Short: "Show the structure of one profile",
	Long: `Render the nested structure of a subject's profile as an indented
tree, truncated below the given depth. Scalar leaves show a value preview.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	set, err := loadProfiles(cmd.Context())
	if err != nil {
		return err
	}

	prof, ok := set.Get(args[0])
	if !ok {
		return internal.NewCLIError(internal.ExitDataError,
			"no profile loaded for subject "+args[0])
	}

	if globalFlags.OutputFormat() == internal.FormatJSON {
		formatter := internal.NewFormatter(internal.FormatJSON, cmd.OutOrStdout())
		return formatter.PrintJSON(prof)
	}

	if isTerminalInteractive() {
		return inspect.TreeStyled(cmd.OutOrStdout(), prof, inspectDepth, inspect.DefaultStyles())
	}
	return inspect.Tree(cmd.OutOrStdout(), prof, inspectDepth)
}

func init() {
	inspectCmd.Flags().IntVar(&inspectDepth, "depth", 3, "Maximum tree depth to render")
}
