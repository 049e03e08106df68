package model

import "strings"

// Difficulty is the optional effort rating shown on a recipe
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Valid reports whether d is one of the known difficulties. The empty value
// is valid because difficulty is optional.
func (d Difficulty) Valid() bool {
	switch d {
	case "", DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Nutrition is optional per-serving nutrition information
type Nutrition struct {
	Calories int    `json:"calories,omitempty" yaml:"calories,omitempty"`
	Protein  string `json:"protein,omitempty" yaml:"protein,omitempty"`
	Carbs    string `json:"carbs,omitempty" yaml:"carbs,omitempty"`
	Fat      string `json:"fat,omitempty" yaml:"fat,omitempty"`
}

// Recipe is the canonical recipe record. Built-in and user-created recipes
// share this shape; the slug is the primary key.
type Recipe struct {
	Slug        string     `json:"slug" yaml:"slug"`
	Title       string     `json:"title" yaml:"title"`
	Image       string     `json:"image" yaml:"image"`
	Description string     `json:"description" yaml:"description"`
	Ingredients []string   `json:"ingredients" yaml:"ingredients"`
	Steps       []string   `json:"steps" yaml:"steps"`
	CookTime    int        `json:"cookTime,omitempty" yaml:"cookTime,omitempty"`
	PrepTime    int        `json:"prepTime,omitempty" yaml:"prepTime,omitempty"`
	Servings    int        `json:"servings,omitempty" yaml:"servings,omitempty"`
	Difficulty  Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Tags        []string   `json:"tags,omitempty" yaml:"tags,omitempty"`
	Nutrition   *Nutrition `json:"nutrition,omitempty" yaml:"nutrition,omitempty"`
	Category    string     `json:"category,omitempty" yaml:"category,omitempty"`
	Author      string     `json:"author,omitempty" yaml:"author,omitempty"`
	Rating      float64    `json:"rating,omitempty" yaml:"rating,omitempty"`
	DateAdded   string     `json:"dateAdded,omitempty" yaml:"dateAdded,omitempty"`
}

// Clone returns a deep copy so callers can't alias stored slices.
func (r Recipe) Clone() Recipe {
	out := r
	out.Ingredients = append([]string(nil), r.Ingredients...)
	out.Steps = append([]string(nil), r.Steps...)
	if r.Tags != nil {
		out.Tags = append([]string(nil), r.Tags...)
	}
	if r.Nutrition != nil {
		n := *r.Nutrition
		out.Nutrition = &n
	}
	return out
}

// Matches reports whether term appears, case-insensitively, in the title,
// description, any ingredient, any tag or the author.
func (r Recipe) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Title), term) ||
		strings.Contains(strings.ToLower(r.Description), term) ||
		strings.Contains(strings.ToLower(r.Author), term) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), term) {
			return true
		}
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// Draft is a recipe submission before validation and slug derivation
type Draft struct {
	Title       string
	Image       string
	Description string
	Ingredients []string
	Steps       []string
	CookTime    int
	PrepTime    int
	Servings    int
	Difficulty  Difficulty
	Tags        []string
	Nutrition   *Nutrition
	Category    string
	Author      string
}

// Patch holds the fields to replace on an existing user recipe. Nil fields
// are left untouched. The slug is never part of a patch.
type Patch struct {
	Title       *string
	Image       *string
	Description *string
	Ingredients []string
	Steps       []string
	CookTime    *int
	PrepTime    *int
	Servings    *int
	Difficulty  *Difficulty
	Tags        []string
	Nutrition   *Nutrition
	Category    *string
	Author      *string
}

// Apply returns a copy of r with the patch applied.
func (p Patch) Apply(r Recipe) Recipe {
	out := r.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Image != nil {
		out.Image = *p.Image
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Ingredients != nil {
		out.Ingredients = append([]string(nil), p.Ingredients...)
	}
	if p.Steps != nil {
		out.Steps = append([]string(nil), p.Steps...)
	}
	if p.CookTime != nil {
		out.CookTime = *p.CookTime
	}
	if p.PrepTime != nil {
		out.PrepTime = *p.PrepTime
	}
	if p.Servings != nil {
		out.Servings = *p.Servings
	}
	if p.Difficulty != nil {
		out.Difficulty = *p.Difficulty
	}
	if p.Tags != nil {
		out.Tags = append([]string(nil), p.Tags...)
	}
	if p.Nutrition != nil {
		n := *p.Nutrition
		out.Nutrition = &n
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.Author != nil {
		out.Author = *p.Author
	}
	return out
}
