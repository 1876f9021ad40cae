// Package slug generates URL-safe identifiers for catalog and content
// records and resolves them to uniqueness against a persistence layer.
package slug

import (
	"regexp"
	"strings"
)

var (
	// whitespace matches any run of whitespace characters.
	whitespace = regexp.MustCompile(`\s+`)
	// nonSlugChars matches anything outside the slug alphabet.
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	// hyphenRuns collapses runs of hyphens into one.
	hyphenRuns = regexp.MustCompile(`-{2,}`)
)

// Make converts a human-readable name into a URL-safe slug.
// Example: "Hydraulic Press X-200!" -> "hydraulic-press-x-200".
// The result contains only [a-z0-9-] and is idempotent. Input that
// normalizes to nothing yields ""; callers must substitute an identifier
// of their own (e.g. the record id) before persisting.
func Make(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = whitespace.ReplaceAllString(s, "-")
	s = nonSlugChars.ReplaceAllString(s, "")
	s = hyphenRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}
