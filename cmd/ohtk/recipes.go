package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eLbARROS13/OH-Toolkit/cmd/ohtk/internal"
	"github.com/eLbARROS13/OH-Toolkit/internal/recipe"
)

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "List the recipes in the recipes file",
	Long:  `List the named extraction recipes available to 'extract --recipe'`,
	RunE:  runRecipes,
}

func runRecipes(cmd *cobra.Command, args []string) error {
	reg, err := loadRecipes()
	if err != nil {
		return err
	}

	formatter := internal.NewFormatter(globalFlags.OutputFormat(), cmd.OutOrStdout())

	if globalFlags.OutputFormat() == internal.FormatJSON {
		recipes := make([]*recipe.Recipe, 0, reg.Len())
		for _, name := range reg.Names() {
			rec, err := reg.Get(name)
			if err != nil {
				return err
			}
			recipes = append(recipes, rec)
		}
		return formatter.PrintJSON(recipes)
	}

	items := make([]string, 0, reg.Len())
	for _, name := range reg.Names() {
		rec, err := reg.Get(name)
		if err != nil {
			return err
		}
		if rec.Description != "" {
			items = append(items, fmt.Sprintf("%s - %s", name, rec.Description))
		} else {
			items = append(items, name)
		}
	}
	return formatter.PrintList("Recipes", items)
}

// loadRecipes loads the configured recipes file for recipe-driven commands.
func loadRecipes() (*recipe.Registry, error) {
	if cfg.RecipesFile == "" {
		return nil, internal.NewCLIError(internal.ExitConfigError,
			"no recipes file configured (set recipes_file in config)")
	}
	return recipe.Load(cfg.RecipesFile)
}
