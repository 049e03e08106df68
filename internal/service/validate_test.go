package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidImageURL(t *testing.T) {
	valid := []string{
		"https://example.com/pie.jpg",
		"http://example.com/pie.PNG",
		"https://example.com/pie.webp?w=400",
		"https://images.unsplash.com/photo-123",
		"https://www.pexels.com/photo/456",
		"/images/ugali.jpg",
	}
	invalid := []string{
		"ftp://example.com/pie.jpg",
		"example.com/pie.jpg",
		"https://example.com/page",
		"/images/readme.txt",
		"not a url",
	}

	for _, u := range valid {
		assert.True(t, ValidImageURL(u), u)
	}
	for _, u := range invalid {
		assert.False(t, ValidImageURL(u), u)
	}
}

func TestCleanTags(t *testing.T) {
	assert.Equal(t, []string{"Dinner", "quick"}, cleanTags([]string{" Dinner ", "", "quick", "dinner"}))
	assert.Nil(t, cleanTags(nil))
}
