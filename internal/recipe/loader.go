package recipe

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eLbARROS13/OH-Toolkit/internal/types"
)

// Load reads and validates a recipes YAML file into a registry. Unknown
// fields are rejected: a silently-ignored typo in a recipe would surface
// much later as mysteriously empty output.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.WrapError(types.RECIPE_LOAD_FAILED, "cannot read recipes file", err)
	}
	return Parse(data)
}

// Parse parses recipes YAML held in memory.
func Parse(data []byte) (*Registry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, types.WrapError(types.RECIPE_PARSE_FAILED, "bad recipes YAML", err)
	}

	registry := NewRegistry()
	for i := range file.Recipes {
		rec := &file.Recipes[i]
		if err := validate(rec); err != nil {
			return nil, err
		}
		if err := registry.Add(rec); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
