package seed

import (
	"testing"

	"estimate_agent/internal/domain/entities"
	"estimate_agent/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Embedded(t *testing.T) {
	seed, err := Catalog()
	require.NoError(t, err)
	require.NotEmpty(t, seed.Categories)
	require.NotEmpty(t, seed.Templates)

	slugs := map[string]bool{entities.CommonTemplateCategory: true}
	for _, c := range seed.Categories {
		assert.NotEmpty(t, c.Keywords, c.Name)
		slugs[c.Slug] = true
	}
	for _, tpl := range seed.Templates {
		assert.True(t, slugs[tpl.Category], "template category %q has no system category", tpl.Category)
	}
}

func TestCatalog_ClassifiesSampleRequirements(t *testing.T) {
	seed, err := Catalog()
	require.NoError(t, err)

	cases := map[string]string{
		"We need a warehouse system with barcode scanning and stock alerts": "Inventory Management",
		"Customers should book appointments online and get reminders":       "Booking System",
		"Track leads and deals for our sales team":                          "CRM",
	}
	for text, want := range cases {
		match, err := usecase.Categorize(text, seed.Categories, "CRM")
		require.NoError(t, err)
		assert.Equal(t, want, match.Category.Name, text)
		assert.False(t, match.Fallback, text)
	}
}

func TestParse_Validation(t *testing.T) {
	_, err := Parse([]byte("categories: [{slug: x}]"))
	assert.Error(t, err)

	_, err = Parse([]byte("categories: [{name: A}, {name: A}]"))
	assert.Error(t, err)

	_, err = Parse([]byte("templates: [{category: common}]"))
	assert.Error(t, err)

	_, err = Parse([]byte("categories: ["))
	assert.Error(t, err)

	seed, err := Parse([]byte("categories: [{name: Solo}]"))
	require.NoError(t, err)
	assert.Equal(t, []string{}, seed.Categories[0].Keywords)
}
