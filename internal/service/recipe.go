package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/recipebox/backend/internal/model"
	"github.com/pageza/recipebox/backend/internal/storage"
)

// RecipesKey is the storage key holding a user's own recipes
const RecipesKey = "userRecipes"

// RecipeStore merges the built-in catalog with one user's recipes. Built-ins
// are read-only; user recipes are persisted as a single JSON array that is
// rewritten on every change.
type RecipeStore struct {
	kv        storage.Store
	key       string
	builtins  []model.Recipe
	builtin   map[string]bool
	favorites *FavoritesStore
	mu        *sync.Mutex
	logger    *zap.Logger
	now       func() time.Time
}

// NewRecipeStore creates a RecipeStore persisting user recipes under key.
// favorites is pruned when a recipe is deleted and may be nil. mu serialises
// read-modify-write cycles; pass nil for a private lock.
func NewRecipeStore(kv storage.Store, key string, builtins []model.Recipe, favorites *FavoritesStore, mu *sync.Mutex, logger *zap.Logger) *RecipeStore {
	if mu == nil {
		mu = &sync.Mutex{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	index := make(map[string]bool, len(builtins))
	for _, r := range builtins {
		index[r.Slug] = true
	}
	return &RecipeStore{
		kv:        kv,
		key:       key,
		builtins:  builtins,
		builtin:   index,
		favorites: favorites,
		mu:        mu,
		logger:    logger,
		now:       time.Now,
	}
}

// IsBuiltin reports whether slug names a shipped recipe
func (s *RecipeStore) IsBuiltin(slug string) bool {
	return s.builtin[slug]
}

// ListAll returns built-in recipes followed by the user's recipes. Storage
// problems degrade to the built-ins alone.
func (s *RecipeStore) ListAll(ctx context.Context) []model.Recipe {
	user := s.load(ctx)
	all := make([]model.Recipe, 0, len(s.builtins)+len(user))
	for _, r := range s.builtins {
		all = append(all, r.Clone())
	}
	return append(all, user...)
}

// FindBySlug returns the recipe with exactly this slug
func (s *RecipeStore) FindBySlug(ctx context.Context, slug string) (*model.Recipe, error) {
	for _, r := range s.ListAll(ctx) {
		if r.Slug == slug {
			return &r, nil
		}
	}
	return nil, ErrRecipeNotFound
}

// Create validates draft and appends it to the user's recipes. Nothing is
// written unless every rule passes.
func (s *RecipeStore) Create(ctx context.Context, draft model.Draft) (*model.Recipe, error) {
	r := model.Recipe{
		Title:       draft.Title,
		Image:       draft.Image,
		Description: draft.Description,
		Ingredients: draft.Ingredients,
		Steps:       draft.Steps,
		CookTime:    draft.CookTime,
		PrepTime:    draft.PrepTime,
		Servings:    draft.Servings,
		Difficulty:  draft.Difficulty,
		Tags:        draft.Tags,
		Nutrition:   draft.Nutrition,
		Category:    draft.Category,
		Author:      draft.Author,
		DateAdded:   s.now().Format("2006-01-02"),
	}
	normalize(&r)
	r.Slug = Slugify(r.Title)

	if err := checkFields(r); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.loadStrict(ctx)
	if err != nil {
		return nil, err
	}
	if s.builtin[r.Slug] || indexOf(user, r.Slug) >= 0 {
		return nil, invalid("title", ErrDuplicateSlug)
	}
	if err := checkContent(r); err != nil {
		return nil, err
	}

	if err := s.save(ctx, append(user, r)); err != nil {
		return nil, err
	}
	s.logger.Info("recipe created", zap.String("key", s.key), zap.String("slug", r.Slug))
	return &r, nil
}

// Update replaces fields of a user recipe. The slug never changes, even when
// the title does.
func (s *RecipeStore) Update(ctx context.Context, slug string, patch model.Patch) (*model.Recipe, error) {
	if s.builtin[slug] {
		return nil, ErrBuiltinRecipe
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.loadStrict(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(user, slug)
	if i < 0 {
		return nil, ErrRecipeNotFound
	}

	updated := patch.Apply(user[i])
	normalize(&updated)
	updated.Slug = slug
	if err := checkFields(updated); err != nil {
		return nil, err
	}
	if err := checkContent(updated); err != nil {
		return nil, err
	}

	user[i] = updated
	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("recipe updated", zap.String("key", s.key), zap.String("slug", slug))
	return &updated, nil
}

// DeleteBySlug removes a user recipe and any favorite pointing at it. It
// reports false, without error, when the slug is already gone.
func (s *RecipeStore) DeleteBySlug(ctx context.Context, slug string) (bool, error) {
	if s.builtin[slug] {
		return false, ErrBuiltinRecipe
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.loadStrict(ctx)
	if err != nil {
		return false, err
	}
	i := indexOf(user, slug)
	if i < 0 {
		return false, nil
	}

	remaining := append(user[:i:i], user[i+1:]...)
	if err := s.save(ctx, remaining); err != nil {
		return false, err
	}
	if s.favorites != nil {
		if err := s.favorites.Remove(ctx, slug); err != nil {
			return true, fmt.Errorf("recipe deleted but favorite not removed: %w", err)
		}
	}
	s.logger.Info("recipe deleted", zap.String("key", s.key), zap.String("slug", slug))
	return true, nil
}

// load reads the user's recipes, treating missing or corrupt data as empty.
func (s *RecipeStore) load(ctx context.Context) []model.Recipe {
	user, err := s.loadStrict(ctx)
	if err != nil {
		s.logger.Warn("falling back to built-in recipes", zap.String("key", s.key), zap.Error(err))
		return nil
	}
	return user
}

// loadStrict reads the user's recipes. A malformed blob reads as empty, but
// storage errors are returned so writers never overwrite data they could not
// read.
func (s *RecipeStore) loadStrict(ctx context.Context) ([]model.Recipe, error) {
	data, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read recipes: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("discarding malformed recipe collection", zap.String("key", s.key), zap.Error(err))
		return nil, nil
	}

	out := make([]model.Recipe, 0, len(raw))
	for i, item := range raw {
		r, ok := s.migrate(item)
		if !ok {
			s.logger.Warn("dropping unusable stored recipe", zap.String("key", s.key), zap.Int("index", i))
			continue
		}
		if s.builtin[r.Slug] || indexOf(out, r.Slug) >= 0 {
			s.logger.Warn("dropping stored recipe with duplicate slug", zap.String("key", s.key), zap.String("slug", r.Slug))
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// migrate decodes one stored record, deriving a missing slug from the title
// and rejecting records without the required fields.
func (s *RecipeStore) migrate(item json.RawMessage) (model.Recipe, bool) {
	var r model.Recipe
	if err := json.Unmarshal(item, &r); err != nil {
		return r, false
	}
	normalize(&r)
	if r.Slug == "" {
		r.Slug = Slugify(r.Title)
	}
	if r.Title == "" || r.Slug == "" || checkContent(r) != nil {
		return r, false
	}
	return r, true
}

func (s *RecipeStore) save(ctx context.Context, user []model.Recipe) error {
	if user == nil {
		user = []model.Recipe{}
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode recipes: %w", err)
	}
	if err := s.kv.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("failed to save recipes: %w", err)
	}
	return nil
}

func indexOf(recipes []model.Recipe, slug string) int {
	for i, r := range recipes {
		if r.Slug == slug {
			return i
		}
	}
	return -1
}
