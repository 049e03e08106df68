package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipebox/backend/internal/model"
)

func TestLoad(t *testing.T) {
	recipes, err := Load()
	require.NoError(t, err)
	require.Len(t, recipes, 6)

	slugs := make([]string, len(recipes))
	for i, r := range recipes {
		slugs[i] = r.Slug
	}
	assert.Equal(t, []string{"ugali", "mandazi", "cakes", "pizza", "beef-stew", "pancakes"}, slugs)

	ugali := recipes[0]
	assert.Equal(t, "Ugali", ugali.Title)
	assert.Equal(t, model.DifficultyEasy, ugali.Difficulty)
	assert.Equal(t, 15, ugali.CookTime)
	assert.Equal(t, "2024-01-01", ugali.DateAdded)
	assert.Equal(t, []string{"traditional", "staple", "vegetarian"}, ugali.Tags)
}

func TestParseRejectsDuplicateSlug(t *testing.T) {
	data := []byte(`
- slug: a
  title: A
  ingredients: [x]
  steps: [y]
- slug: a
  title: Again
  ingredients: [x]
  steps: [y]
`)
	_, err := Parse(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate slug")
}

func TestParseRejectsIncompleteEntry(t *testing.T) {
	_, err := Parse([]byte("- slug: a\n  title: A\n  steps: [y]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no ingredients")

	_, err = Parse([]byte("- title: A\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing slug")
}

func TestMustLoad(t *testing.T) {
	assert.NotPanics(t, func() { MustLoad() })
}
