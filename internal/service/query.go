package service

import (
	"context"
	"sort"
	"strings"

	"github.com/pageza/recipebox/backend/internal/model"
)

// Sort orders accepted by Search
const (
	SortNone     = ""
	SortName     = "name"
	SortRating   = "rating"
	SortDate     = "date"
	SortCookTime = "cookTime"
)

// Query filters and orders the merged recipe list
type Query struct {
	Search     string
	Category   string
	Difficulty model.Difficulty
	Sort       string
}

// ValidSort reports whether s is a known sort order
func ValidSort(s string) bool {
	switch s {
	case SortNone, SortName, SortRating, SortDate, SortCookTime:
		return true
	}
	return false
}

// Search returns the recipes matching q in the requested order. Without a
// sort the merged order (built-ins first) is kept.
func (s *RecipeStore) Search(ctx context.Context, q Query) []model.Recipe {
	var out []model.Recipe
	for _, r := range s.ListAll(ctx) {
		if q.Category != "" && !strings.EqualFold(r.Category, q.Category) {
			continue
		}
		if q.Difficulty != "" && r.Difficulty != q.Difficulty {
			continue
		}
		if !r.Matches(q.Search) {
			continue
		}
		out = append(out, r)
	}

	switch q.Sort {
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortDate:
		// ISO dates compare lexically; undated recipes sort last
		sort.SliceStable(out, func(i, j int) bool { return out[i].DateAdded > out[j].DateAdded })
	case SortCookTime:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CookTime < out[j].CookTime })
	}
	return out
}

// Categories lists the distinct categories in listing order
func (s *RecipeStore) Categories(ctx context.Context) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range s.ListAll(ctx) {
		if r.Category == "" || seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		out = append(out, r.Category)
	}
	return out
}

// Featured returns up to n recipes, best rated first
func (s *RecipeStore) Featured(ctx context.Context, n int) []model.Recipe {
	out := s.Search(ctx, Query{Sort: SortRating})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
