package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eLbARROS13/OH-Toolkit/cmd/ohtk/internal"
	"github.com/eLbARROS13/OH-Toolkit/internal/inspect"
)

const pathsPreviewLimit = 50

var pathsDepth int

var pathsCmd = &cobra.Command{
	Use:   "paths SUBJECT",
	Short: "Enumerate the value paths in one profile",
	Long: `List every dot-delimited path reachable in a subject's profile, up
to the given depth. Useful for discovering what an extraction request
or recipe can ask for.`,
	Args: cobra.ExactArgs(1),
	RunE: runPaths,
}

func runPaths(cmd *cobra.Command, args []string) error {
	set, err := loadProfiles(cmd.Context())
	if err != nil {
		return err
	}

	prof, ok := set.Get(args[0])
	if !ok {
		return internal.NewCLIError(internal.ExitDataError,
			"no profile loaded for subject "+args[0])
	}

	paths := inspect.Paths(prof, pathsDepth)

	if globalFlags.OutputFormat() == internal.FormatJSON {
		formatter := internal.NewFormatter(internal.FormatJSON, cmd.OutOrStdout())
		return formatter.PrintJSON(paths)
	}

	out := cmd.OutOrStdout()
	shown := paths
	if len(shown) > pathsPreviewLimit {
		shown = shown[:pathsPreviewLimit]
	}
	for _, p := range shown {
		fmt.Fprintln(out, p)
	}
	if rest := len(paths) - len(shown); rest > 0 {
		fmt.Fprintf(out, "... and %d more\n", rest)
	}
	return nil
}

func init() {
	pathsCmd.Flags().IntVar(&pathsDepth, "depth", 6, "Maximum path depth to enumerate")
}
