package service

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// leadingQuantity matches the quantity at the start of an ingredient line:
// a mixed number ("1 1/2"), a fraction ("1/2"), or an integer/decimal.
var leadingQuantity = regexp.MustCompile(`^(\s*)(\d+\s+\d+/\d+|\d+/\d+|\d+(?:\.\d+)?)`)

// ScaleIngredient multiplies the leading quantity of an ingredient line by
// multiplier. Lines without a leading quantity come back unchanged.
func ScaleIngredient(ingredient string, multiplier float64) string {
	if multiplier == 1 {
		return ingredient
	}
	m := leadingQuantity.FindStringSubmatchIndex(ingredient)
	if m == nil {
		return ingredient
	}
	lead := ingredient[m[2]:m[3]]
	token := ingredient[m[4]:m[5]]
	rest := ingredient[m[5]:]

	qty, ok := parseQuantity(token)
	if !ok {
		return ingredient
	}
	return lead + formatQuantity(qty*multiplier) + rest
}

// ScaleIngredients applies ScaleIngredient to every line
func ScaleIngredients(ingredients []string, multiplier float64) []string {
	out := make([]string, len(ingredients))
	for i, ing := range ingredients {
		out[i] = ScaleIngredient(ing, multiplier)
	}
	return out
}

// ParseMultiplier reads a serving multiplier from a query value. Empty means 1.
func ParseMultiplier(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrInvalidMultiplier
	}
	return v, nil
}

func parseQuantity(token string) (float64, bool) {
	var whole float64
	if fields := strings.Fields(token); len(fields) == 2 {
		w, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0, false
		}
		whole, token = w, fields[1]
	}

	num, den, isFraction := strings.Cut(token, "/")
	if !isFraction {
		v, err := strconv.ParseFloat(token, 64)
		return whole + v, err == nil
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0, false
	}
	return whole + n/d, true
}

// formatQuantity rounds to two decimals and drops trailing zeros
func formatQuantity(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
