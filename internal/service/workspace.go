package service

import (
	"sync"

	"go.uber.org/zap"

	"github.com/pageza/recipebox/backend/internal/model"
	"github.com/pageza/recipebox/backend/internal/storage"
)

// Workspace hands out recipe and favorites stores bound to one user's
// namespace in the shared backing store. Writes to the same key from this
// process are serialised; across processes the last write wins.
type Workspace struct {
	kv       storage.Store
	builtins []model.Recipe
	logger   *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewWorkspace creates a Workspace over kv with the given built-in catalog
func NewWorkspace(kv storage.Store, builtins []model.Recipe, logger *zap.Logger) *Workspace {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Workspace{
		kv:       kv,
		builtins: builtins,
		logger:   logger,
		locks:    make(map[string]*sync.Mutex),
	}
}

// ForUser returns the stores for userID. They are cheap to build per request.
func (w *Workspace) ForUser(userID string) (*RecipeStore, *FavoritesStore) {
	favKey := storage.Namespace(userID, FavoritesKey)
	recipeKey := storage.Namespace(userID, RecipesKey)

	favorites := NewFavoritesStore(w.kv, favKey, w.lock(favKey), w.logger)
	recipes := NewRecipeStore(w.kv, recipeKey, w.builtins, favorites, w.lock(recipeKey), w.logger)
	return recipes, favorites
}

func (w *Workspace) lock(key string) *sync.Mutex {
	w.mu.Lock()
	defer w.mu.Unlock()
	l, ok := w.locks[key]
	if !ok {
		l = &sync.Mutex{}
		w.locks[key] = l
	}
	return l
}
