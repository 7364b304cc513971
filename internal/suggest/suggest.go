// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package suggest finds "did you mean" candidates for mistyped names.
package suggest

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// MaxDistance is the max edit distance for a suggestion.
const MaxDistance = 3

// Closest returns the closest match from candidates, or empty if none are
// close enough. Comparison ignores case.
func Closest(input string, candidates []string) string {
	var best string
	bestDist := MaxDistance + 1
	in := strings.ToLower(input)

	for _, c := range candidates {
		dist := levenshtein.ComputeDistance(in, strings.ToLower(c))
		if dist < bestDist {
			bestDist = dist
			best = c
		}
	}

	if bestDist <= MaxDistance {
		return best
	}
	return ""
}

// Hint formats a " (did you mean %q?)" suffix, or returns "" when nothing
// is close.
func Hint(input string, candidates []string) string {
	if best := Closest(input, candidates); best != "" {
		return ` (did you mean "` + best + `"?)`
	}
	return ""
}
