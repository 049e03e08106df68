package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/pageza/recipebox/backend/internal/storage"
)

// FavoritesKey is the storage key holding a user's favorite slugs
const FavoritesKey = "favoriteRecipes"

// FavoritesStore tracks the slugs one user has marked as favorite. Slugs are
// not checked against the recipe store; a favorite may outlive its recipe
// until the recipe is deleted through RecipeStore.
type FavoritesStore struct {
	kv     storage.Store
	key    string
	mu     *sync.Mutex
	logger *zap.Logger
}

// NewFavoritesStore creates a FavoritesStore persisting under key. mu
// serialises read-modify-write cycles; pass nil for a private lock.
func NewFavoritesStore(kv storage.Store, key string, mu *sync.Mutex, logger *zap.Logger) *FavoritesStore {
	if mu == nil {
		mu = &sync.Mutex{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FavoritesStore{kv: kv, key: key, mu: mu, logger: logger}
}

// List returns the favorite slugs in the order they were added
func (s *FavoritesStore) List(ctx context.Context) []string {
	return s.load(ctx)
}

// IsFavorite reports whether slug is in the set
func (s *FavoritesStore) IsFavorite(ctx context.Context, slug string) bool {
	for _, fav := range s.load(ctx) {
		if fav == slug {
			return true
		}
	}
	return false
}

// Toggle flips membership of slug, persists the set and returns the new state.
func (s *FavoritesStore) Toggle(ctx context.Context, slug string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	favs, err := s.loadStrict(ctx)
	if err != nil {
		return false, err
	}
	updated := make([]string, 0, len(favs)+1)
	found := false
	for _, fav := range favs {
		if fav == slug {
			found = true
			continue
		}
		updated = append(updated, fav)
	}
	if !found {
		updated = append(updated, slug)
	}

	if err := s.save(ctx, updated); err != nil {
		return found, err
	}
	return !found, nil
}

// Remove drops slug from the set. Removing an absent slug writes nothing.
func (s *FavoritesStore) Remove(ctx context.Context, slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	favs, err := s.loadStrict(ctx)
	if err != nil {
		return err
	}
	updated := make([]string, 0, len(favs))
	for _, fav := range favs {
		if fav != slug {
			updated = append(updated, fav)
		}
	}
	if len(updated) == len(favs) {
		return nil
	}
	return s.save(ctx, updated)
}

// load reads the set for display; any failure reads as empty.
func (s *FavoritesStore) load(ctx context.Context) []string {
	favs, err := s.loadStrict(ctx)
	if err != nil {
		s.logger.Warn("failed to read favorites", zap.String("key", s.key), zap.Error(err))
		return nil
	}
	return favs
}

// loadStrict reads the set. Missing or malformed data reads as empty, but
// storage errors are returned so writers never overwrite a set they could
// not read.
func (s *FavoritesStore) loadStrict(ctx context.Context) ([]string, error) {
	data, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}

	var favs []string
	if err := json.Unmarshal(data, &favs); err != nil {
		s.logger.Warn("discarding malformed favorites", zap.String("key", s.key), zap.Error(err))
		return nil, nil
	}
	return favs, nil
}

func (s *FavoritesStore) save(ctx context.Context, favs []string) error {
	if favs == nil {
		favs = []string{}
	}
	data, err := json.Marshal(favs)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := s.kv.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}
	return nil
}
