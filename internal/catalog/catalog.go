// Package catalog holds the built-in recipes shipped with the application.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pageza/recipebox/backend/internal/model"
)

//go:embed builtin.yaml
var builtinYAML []byte

// Load decodes the embedded catalog and checks every entry is complete and
// that slugs are unique.
func Load() ([]model.Recipe, error) {
	return Parse(builtinYAML)
}

// Parse decodes a YAML list of recipes with the same checks as Load.
func Parse(data []byte) ([]model.Recipe, error) {
	var recipes []model.Recipe
	if err := yaml.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	seen := make(map[string]bool, len(recipes))
	for i, r := range recipes {
		switch {
		case r.Slug == "":
			return nil, fmt.Errorf("catalog entry %d: missing slug", i)
		case r.Title == "":
			return nil, fmt.Errorf("catalog entry %q: missing title", r.Slug)
		case len(r.Ingredients) == 0:
			return nil, fmt.Errorf("catalog entry %q: no ingredients", r.Slug)
		case len(r.Steps) == 0:
			return nil, fmt.Errorf("catalog entry %q: no steps", r.Slug)
		case !r.Difficulty.Valid():
			return nil, fmt.Errorf("catalog entry %q: invalid difficulty %q", r.Slug, r.Difficulty)
		case seen[r.Slug]:
			return nil, fmt.Errorf("catalog entry %q: duplicate slug", r.Slug)
		}
		seen[r.Slug] = true
	}
	return recipes, nil
}

// MustLoad is Load for program start-up; a broken embedded catalog is a
// build defect.
func MustLoad() []model.Recipe {
	recipes, err := Load()
	if err != nil {
		panic(err)
	}
	return recipes
}
