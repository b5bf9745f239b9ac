// Package catalog supplies the template meal and the recommendation names.
//
// The defaults ship inside the binary (default.yaml via go:embed). A deployment
// can point CATALOG_PATH at its own YAML file with the same shape to swap the
// featured meal without a rebuild.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AdanChavez79/Food-Profiler/internal/apperror"
	"github.com/AdanChavez79/Food-Profiler/internal/model"
)

//go:embed default.yaml
var defaultYAML []byte

// Catalog is the configuration the recommendation generator runs on.
type Catalog struct {
	Template model.Meal `yaml:"template"`
	Names    []string   `yaml:"names"`
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	c, err := Parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("catalog: parsing embedded default: %w", err)
	}
	return c, nil
}

// Load reads a catalog from path. An empty path means the built-in default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: reading %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates catalog YAML. Unknown keys are rejected so a
// typo like "total_time" fails loudly instead of yielding a zero.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	t := c.Template
	switch {
	case t.ID == "":
		return apperror.ValidationFailed("template.id", "template meal id is required")
	case t.Name == "":
		return apperror.ValidationFailed("template.name", "template meal name is required")
	case t.TotalTime <= 0:
		return apperror.ValidationFailed("template.totalTime", "template totalTime must be positive")
	case t.Cost < 0:
		return apperror.ValidationFailed("template.cost", "template cost must not be negative")
	}
	switch t.Difficulty {
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
	default:
		return apperror.ValidationFailed("template.difficulty",
			fmt.Sprintf("template difficulty %q must be Easy, Medium or Hard", t.Difficulty))
	}
	return nil
}
