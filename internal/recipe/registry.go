package recipe

import (
	"github.com/eLbARROS13/OH-Toolkit/internal/types"
)

// Registry holds loaded recipes keyed by name, preserving file order for
// listing.
type Registry struct {
	names  []string
	byName map[string]*Recipe
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Recipe)}
}

// Add registers a recipe. A duplicate name is a definition error.
func (r *Registry) Add(rec *Recipe) error {
	if _, exists := r.byName[rec.Name]; exists {
		return types.NewErrorf(types.RECIPE_DUPLICATE, "recipe %q defined twice", rec.Name)
	}
	r.names = append(r.names, rec.Name)
	r.byName[rec.Name] = rec
	return nil
}

// Get returns a recipe by name.
func (r *Registry) Get(name string) (*Recipe, error) {
	rec, ok := r.byName[name]
	if !ok {
		return nil, types.NewErrorf(types.RECIPE_NOT_FOUND, "no recipe named %q", name)
	}
	return rec, nil
}

// Names returns the recipe names in definition order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered recipes.
func (r *Registry) Len() int {
	return len(r.names)
}
