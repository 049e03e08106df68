package service

import (
	"errors"
	"fmt"
)

// Recipe validation failures. Each is wrapped in a *ValidationError naming
// the offending field.
var (
	ErrTitleRequired     = errors.New("title is required")
	ErrInvalidTitle      = errors.New("title does not produce a valid slug")
	ErrInvalidImageURL   = errors.New("image must be an http(s) URL to a jpg, png, gif, webp or svg image")
	ErrInvalidDifficulty = errors.New("difficulty must be Easy, Medium or Hard")
	ErrDuplicateSlug     = errors.New("a recipe with this title already exists")
	ErrNoIngredients     = errors.New("at least one ingredient is required")
	ErrNoSteps           = errors.New("at least one step is required")
)

var (
	// ErrRecipeNotFound is returned when no recipe has the requested slug
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrBuiltinRecipe is returned when an edit or delete targets a built-in recipe
	ErrBuiltinRecipe = errors.New("built-in recipes cannot be modified or deleted")
	// ErrInvalidMultiplier is returned for a non-positive or unparsable serving multiplier
	ErrInvalidMultiplier = errors.New("multiplier must be a positive number")
)

// ValidationError reports which rule a recipe submission broke.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

// IsValidationError reports whether err is a recipe validation failure
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
