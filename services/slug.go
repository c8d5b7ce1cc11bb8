package services

import (
	"regexp"
	"strings"
)

var slugSeparator = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the title, collapses every run of characters outside
// [a-z0-9] into one hyphen and trims hyphens at both ends.
func Slugify(title string) string {
	slug := slugSeparator.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
