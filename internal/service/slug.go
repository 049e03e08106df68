package service

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars = regexp.MustCompile(`[^\w\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// Slugify derives the URL-safe identifier for a recipe title: lowercase and
// trim, drop everything except ASCII word characters, whitespace and hyphens,
// then turn each whitespace run into a single hyphen. Punctuation at either
// end leaves its neighbouring space behind ("! Pie" becomes "-pie").
// Slugify(Slugify(s)) == Slugify(s) for every s.
func Slugify(title string) string {
	s := strings.TrimSpace(strings.ToLower(title))
	s = nonSlugChars.ReplaceAllString(s, "")
	return whitespace.ReplaceAllString(s, "-")
}
