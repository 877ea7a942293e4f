// Package platform holds per-platform publishing constraints for optimized posts.
package platform

import "strings"

// DefaultLimit is the character limit applied to unrecognized platforms.
const DefaultLimit = 2000

// truncationMarker is appended when content is cut to fit a platform limit.
const truncationMarker = "..."

var limits = map[string]int{
	"twitter":   280,
	"linkedin":  3000,
	"facebook":  2000,
	"instagram": 2200,
}

// Limit returns the hard character limit for a platform. Lookup is
// case-insensitive; unknown platforms get DefaultLimit.
func Limit(platform string) int {
	if limit, ok := limits[strings.ToLower(platform)]; ok {
		return limit
	}
	return DefaultLimit
}

// Enforce truncates content exceeding the platform's limit, appending the
// truncation marker so the result length equals the limit exactly. Content
// within the limit is returned unchanged.
func Enforce(content, platform string) string {
	limit := Limit(platform)
	runes := []rune(content)
	if len(runes) <= limit {
		return content
	}
	return string(runes[:limit-len(truncationMarker)]) + truncationMarker
}
