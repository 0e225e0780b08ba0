package services

import (
	"regexp"
	"strings"
)

var (
	slugStripPattern    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugCollapsePattern = regexp.MustCompile(`[\s-]+`)
)

// MakeSlug derives the URL-safe identifier for a display name. It never fails,
// but it can return an empty string or collide for different inputs, so every
// caller follows up with a uniqueness check against the store.
func MakeSlug(name string) string {
	out := strings.ToLower(name)
	out = slugStripPattern.ReplaceAllString(out, "")
	out = slugCollapsePattern.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}
