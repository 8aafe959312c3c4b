package recipe

import (
	"github.com/eLbARROS13/OH-Toolkit/internal/pathspec"
	"github.com/eLbARROS13/OH-Toolkit/internal/types"
)

// validate checks one recipe definition. Recipes fail fast at load time;
// a malformed path or nameless level is a file mistake, not data
// heterogeneity.
func validate(r *Recipe) error {
	if r.Name == "" {
		return types.NewError(types.RECIPE_VALIDATION_FAILED, "recipe without a name")
	}

	if _, err := pathspec.Parse(r.BasePath); err != nil {
		return types.WrapError(types.RECIPE_VALIDATION_FAILED, "recipe "+r.Name+": bad base_path", err)
	}

	seen := make(map[string]struct{}, len(r.Levels))
	for _, lvl := range r.Levels {
		if lvl.Name == "" {
			return types.NewErrorf(types.RECIPE_VALIDATION_FAILED, "recipe %q: level without a name", r.Name)
		}
		if _, dup := seen[lvl.Name]; dup {
			return types.NewErrorf(types.RECIPE_VALIDATION_FAILED, "recipe %q: duplicate level %q", r.Name, lvl.Name)
		}
		seen[lvl.Name] = struct{}{}
	}

	if len(r.ValuePaths) == 0 {
		return types.NewErrorf(types.RECIPE_VALIDATION_FAILED, "recipe %q: no value_paths", r.Name)
	}
	for _, vp := range r.ValuePaths {
		if _, err := pathspec.Parse(vp); err != nil {
			return types.WrapError(types.RECIPE_VALIDATION_FAILED, "recipe "+r.Name+": bad value path", err)
		}
	}
	return nil
}
