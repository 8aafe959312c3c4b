package main

import (
	"github.com/spf13/cobra"

	"github.com/eLbARROS13/OH-Toolkit/cmd/ohtk/internal"
	"github.com/eLbARROS13/OH-Toolkit/internal/inspect"
	"github.com/eLbARROS13/OH-Toolkit/internal/table"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a per-subject availability matrix",
	Long: `Summarize the loaded profile set as one row per subject with a
column per top-level section. Object sections show their key count;
missing sections show an empty cell.`,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	set, err := loadProfiles(cmd.Context())
	if err != nil {
		return err
	}

	t := inspect.Summarize(set)

	if globalFlags.OutputFormat() == internal.FormatJSON {
		formatter := internal.NewFormatter(internal.FormatJSON, cmd.OutOrStdout())
		return formatter.PrintJSON(tableRows(t))
	}
	return t.Render(cmd.OutOrStdout())
}

// tableRows flattens a table into one ordered map-shaped object per row.
func tableRows(t *table.Table) []map[string]any {
	cols := t.Columns()
	rows := make([]map[string]any, t.NumRows())
	for i := range rows {
		row := t.Row(i)
		obj := make(map[string]any, len(cols))
		for j, col := range cols {
			obj[col] = row[j]
		}
		rows[i] = obj
	}
	return rows
}
