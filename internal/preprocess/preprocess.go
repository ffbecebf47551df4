// Package preprocess normalizes raw free-text requirement notes into an
// ordered, deduplicated list of discrete requirement points.
package preprocess

import (
	"regexp"
	"strings"
)

// markerPattern matches list markers that separate requirement statements:
// numbered markers ("1)" or "1.") and bullet markers ("-" or "*"), each
// followed by whitespace. Surrounding whitespace is consumed with the marker.
var markerPattern = regexp.MustCompile(`\s*(?:\d+\)|\d+\.|-|\*)\s+`)

// Preprocess splits raw input into trimmed requirement points. Line breaks
// and list markers act as separators, including multiple markers within a
// single line. Duplicates are removed keeping the first occurrence's
// position. Empty or whitespace-only input yields an empty slice; the caller
// decides whether that is valid.
func Preprocess(raw string) []string {
	points := []string{}
	seen := make(map[string]struct{})

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		for _, fragment := range markerPattern.Split(line, -1) {
			fragment = strings.TrimSpace(fragment)
			if fragment == "" {
				continue
			}
			if _, dup := seen[fragment]; dup {
				continue
			}
			seen[fragment] = struct{}{}
			points = append(points, fragment)
		}
	}

	return points
}
