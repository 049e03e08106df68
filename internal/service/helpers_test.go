package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pageza/recipebox/backend/internal/catalog"
	"github.com/pageza/recipebox/backend/internal/model"
	"github.com/pageza/recipebox/backend/internal/storage"
)

var errStorageDown = errors.New("storage unavailable")

// failingStore wraps a Store and fails reads or writes on demand. failGetKey
// fails reads of that one key only.
type failingStore struct {
	storage.Store
	failGet    bool
	failGetKey string
	failPut    bool
	puts       int
}

func (f *failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.failGet || key == f.failGetKey {
		return nil, errStorageDown
	}
	return f.Store.Get(ctx, key)
}

func (f *failingStore) Put(ctx context.Context, key string, value []byte) error {
	if f.failPut {
		return errStorageDown
	}
	f.puts++
	return f.Store.Put(ctx, key, value)
}

func newTestStores(t *testing.T, kv storage.Store) (*RecipeStore, *FavoritesStore) {
	t.Helper()
	builtins, err := catalog.Load()
	require.NoError(t, err)

	favorites := NewFavoritesStore(kv, FavoritesKey, nil, nil)
	recipes := NewRecipeStore(kv, RecipesKey, builtins, favorites, nil, nil)
	recipes.now = func() time.Time { return time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC) }
	return recipes, favorites
}

func testPieDraft() model.Draft {
	return model.Draft{
		Title:       "Test Pie",
		Ingredients: []string{"2 cups flour", "1 cup butter"},
		Steps:       []string{"Mix", "Bake"},
		Difficulty:  model.DifficultyMedium,
		Category:    "Dessert",
	}
}

func slugsOf(recipes []model.Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.Slug
	}
	return out
}
