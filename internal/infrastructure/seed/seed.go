// Package seed loads the embedded system category catalog.
package seed

import (
	_ "embed"
	"fmt"
	"strings"

	"estimate_agent/internal/domain/entities"
	"estimate_agent/internal/usecase"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalogFile struct {
	Categories []categoryEntry `yaml:"categories"`
	Templates  []templateEntry `yaml:"templates"`
}

type categoryEntry struct {
	Name             string   `yaml:"name"`
	Slug             string   `yaml:"slug"`
	Description      string   `yaml:"description"`
	Keywords         []string `yaml:"keywords"`
	DefaultQuestions []string `yaml:"default_questions"`
}

type templateEntry struct {
	Category    string `yaml:"category"`
	Question    string `yaml:"question"`
	Description string `yaml:"description"`
	Position    int    `yaml:"position"`
	IsRequired  bool   `yaml:"is_required"`
}

// Catalog returns the embedded catalog.
func Catalog() (usecase.CatalogSeed, error) {
	return Parse(catalogYAML)
}

// Parse decodes a catalog document. Every category needs a name and every
// template a category and question.
func Parse(data []byte) (usecase.CatalogSeed, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return usecase.CatalogSeed{}, fmt.Errorf("parse catalog: %w", err)
	}

	seed := usecase.CatalogSeed{
		Categories: make([]entities.SystemCategory, 0, len(f.Categories)),
		Templates:  make([]entities.QuestionTemplate, 0, len(f.Templates)),
	}

	names := make(map[string]bool, len(f.Categories))
	for i, c := range f.Categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return usecase.CatalogSeed{}, fmt.Errorf("category %d: name is required", i)
		}
		if names[name] {
			return usecase.CatalogSeed{}, fmt.Errorf("category %q is defined twice", name)
		}
		names[name] = true

		seed.Categories = append(seed.Categories, entities.SystemCategory{
			Name:             name,
			Slug:             strings.TrimSpace(c.Slug),
			Description:      c.Description,
			Keywords:         nonNil(c.Keywords),
			DefaultQuestions: nonNil(c.DefaultQuestions),
		})
	}

	for i, t := range f.Templates {
		if strings.TrimSpace(t.Category) == "" || strings.TrimSpace(t.Question) == "" {
			return usecase.CatalogSeed{}, fmt.Errorf("template %d: category and question are required", i)
		}
		seed.Templates = append(seed.Templates, entities.QuestionTemplate{
			Category:    strings.TrimSpace(t.Category),
			Question:    t.Question,
			Description: t.Description,
			Position:    t.Position,
			IsRequired:  t.IsRequired,
		})
	}
	return seed, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
