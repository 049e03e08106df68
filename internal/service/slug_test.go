package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Test Pie":                     "test-pie",
		"Beef Stew":                    "beef-stew",
		"  Grandma's   Apple Pie!  ":   "grandmas-apple-pie",
		"Chicken & Rice":               "chicken-rice",
		"Mac-and-Cheese":               "mac-and-cheese",
		"snake_case_title":             "snake_case_title",
		"Tabs\tand\nnewlines":          "tabs-and-newlines",
		"!!!":                          "",
		"":                             "",
		"Crème brûlée":                 "crme-brle",
		"Already-slugged-title-2024":   "already-slugged-title-2024",
		"! Pie":                        "-pie",
		"Pie !":                        "pie-",
	}

	for title, want := range tests {
		assert.Equal(t, want, Slugify(title), title)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	for _, title := range []string{"Test Pie", " Spicy -- Wings ", "a  -  b", "Crème brûlée", "1/2 Batch Cookies", "x_y z", "! Pie"} {
		once := Slugify(title)
		assert.Equal(t, once, Slugify(once), title)
	}
}
