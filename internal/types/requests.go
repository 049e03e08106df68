package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pageza/recipebox/backend/internal/model"
)

// SignUpRequest represents the request body for creating an account
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignInRequest represents the request body for signing in
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse is returned on sign-in
type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// StringList decodes from either a JSON array of strings or a single
// comma separated string, as submitted by the add-recipe form.
type StringList []string

// UnmarshalJSON implements the json.Unmarshaler interface
func (l *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expected a list or a comma separated string")
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	*l = out
	return nil
}

// CreateRecipeRequest represents the request body for creating a recipe.
// Content rules are enforced by the recipe store so that failures are
// reported in a fixed order.
type CreateRecipeRequest struct {
	Title       string           `json:"title"`
	Image       string           `json:"image"`
	Description string           `json:"description"`
	Ingredients StringList       `json:"ingredients"`
	Steps       StringList       `json:"steps"`
	CookTime    int              `json:"cookTime" binding:"min=0"`
	PrepTime    int              `json:"prepTime" binding:"min=0"`
	Servings    int              `json:"servings" binding:"min=0"`
	Difficulty  string           `json:"difficulty"`
	Tags        StringList       `json:"tags"`
	Nutrition   *model.Nutrition `json:"nutrition"`
	Category    string           `json:"category"`
	Author      string           `json:"author"`
}

// Draft converts the request into a recipe draft
func (r *CreateRecipeRequest) Draft() model.Draft {
	return model.Draft{
		Title:       r.Title,
		Image:       r.Image,
		Description: r.Description,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		CookTime:    r.CookTime,
		PrepTime:    r.PrepTime,
		Servings:    r.Servings,
		Difficulty:  model.Difficulty(r.Difficulty),
		Tags:        r.Tags,
		Nutrition:   r.Nutrition,
		Category:    r.Category,
		Author:      r.Author,
	}
}

// UpdateRecipeRequest represents the request body for updating a recipe.
// Omitted fields are left unchanged.
type UpdateRecipeRequest struct {
	Title       *string          `json:"title"`
	Image       *string          `json:"image"`
	Description *string          `json:"description"`
	Ingredients StringList       `json:"ingredients"`
	Steps       StringList       `json:"steps"`
	CookTime    *int             `json:"cookTime" binding:"omitempty,min=0"`
	PrepTime    *int             `json:"prepTime" binding:"omitempty,min=0"`
	Servings    *int             `json:"servings" binding:"omitempty,min=0"`
	Difficulty  *string          `json:"difficulty"`
	Tags        StringList       `json:"tags"`
	Nutrition   *model.Nutrition `json:"nutrition"`
	Category    *string          `json:"category"`
	Author      *string          `json:"author"`
}

// Patch converts the request into a recipe patch
func (r *UpdateRecipeRequest) Patch() model.Patch {
	p := model.Patch{
		Title:       r.Title,
		Image:       r.Image,
		Description: r.Description,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		CookTime:    r.CookTime,
		PrepTime:    r.PrepTime,
		Servings:    r.Servings,
		Tags:        r.Tags,
		Nutrition:   r.Nutrition,
		Category:    r.Category,
		Author:      r.Author,
	}
	if r.Difficulty != nil {
		d := model.Difficulty(*r.Difficulty)
		p.Difficulty = &d
	}
	return p
}
