// Package recipe provides YAML-defined, named extraction requests. A recipes
// file lets an analysis team keep its standard extractions (base path, level
// names, per-level filters, value paths) in version control and run them by
// name, instead of retyping flag soup.
package recipe

import (
	"github.com/eLbARROS13/OH-Toolkit/internal/extract"
	"github.com/eLbARROS13/OH-Toolkit/internal/filter"
)

// Level mirrors one dynamic key level of a recipe.
type Level struct {
	Name    string   `yaml:"name"`
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`
}

// Recipe is one named extraction definition.
type Recipe struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	BasePath    string   `yaml:"base_path"`
	Levels      []Level  `yaml:"levels,omitempty"`
	ValuePaths  []string `yaml:"value_paths"`
	// Include and Exclude are fallback key patterns for levels without
	// their own.
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`
}

// File is the top-level structure of a recipes YAML file.
type File struct {
	Recipes []Recipe `yaml:"recipes"`
}

// Request converts the recipe into an extraction request. The subject/date
// filter is run-time information and is supplied by the caller, not the
// recipe.
func (r *Recipe) Request(f *filter.Spec) extract.Request {
	levels := make([]extract.Level, len(r.Levels))
	for i, lvl := range r.Levels {
		levels[i] = extract.Level{
			Name:    lvl.Name,
			Include: lvl.Include,
			Exclude: lvl.Exclude,
		}
	}
	return extract.Request{
		BasePath:   r.BasePath,
		Levels:     levels,
		ValuePaths: r.ValuePaths,
		Filter:     f,
		Include:    r.Include,
		Exclude:    r.Exclude,
	}
}
