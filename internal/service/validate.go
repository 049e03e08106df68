package service

import (
	"regexp"
	"strings"

	"github.com/pageza/recipebox/backend/internal/model"
)

var (
	httpURL        = regexp.MustCompile(`(?i)^https?://.+`)
	imageExtension = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp|svg)(\?.*)?$`)
	imageHosts     = []string{"unsplash", "pexels", "pixabay"}
)

// ValidImageURL reports whether url looks like a displayable image: an
// http(s) URL ending in an image extension or served by a known stock photo
// host. Site-relative paths ("/images/x.jpg") are accepted for built-ins.
func ValidImageURL(url string) bool {
	if strings.HasPrefix(url, "/") {
		return imageExtension.MatchString(url)
	}
	if !httpURL.MatchString(url) {
		return false
	}
	if imageExtension.MatchString(url) {
		return true
	}
	lower := strings.ToLower(url)
	for _, host := range imageHosts {
		if strings.Contains(lower, host) {
			return true
		}
	}
	return false
}

// cleanList trims each entry and drops the blank ones
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// cleanTags trims tags and removes case-insensitive duplicates, keeping the
// first spelling.
func cleanTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range cleanList(tags) {
		k := strings.ToLower(tag)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, tag)
	}
	return out
}

// normalize trims the free-text fields of r in place.
func normalize(r *model.Recipe) {
	r.Title = strings.TrimSpace(r.Title)
	r.Image = strings.TrimSpace(r.Image)
	r.Description = strings.TrimSpace(r.Description)
	r.Category = strings.TrimSpace(r.Category)
	r.Author = strings.TrimSpace(r.Author)
	r.Ingredients = cleanList(r.Ingredients)
	r.Steps = cleanList(r.Steps)
	r.Tags = cleanTags(r.Tags)
}

// checkFields applies every rule except slug uniqueness, in the order the
// add-recipe form reports them.
func checkFields(r model.Recipe) error {
	if r.Title == "" {
		return invalid("title", ErrTitleRequired)
	}
	if r.Slug == "" {
		return invalid("title", ErrInvalidTitle)
	}
	if r.Image != "" && !ValidImageURL(r.Image) {
		return invalid("image", ErrInvalidImageURL)
	}
	if !r.Difficulty.Valid() {
		return invalid("difficulty", ErrInvalidDifficulty)
	}
	return nil
}

func checkContent(r model.Recipe) error {
	if len(r.Ingredients) == 0 {
		return invalid("ingredients", ErrNoIngredients)
	}
	if len(r.Steps) == 0 {
		return invalid("steps", ErrNoSteps)
	}
	return nil
}
