// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package spell

import (
	"strings"

	"github.com/agext/levenshtein"
)

// Nearest returns the candidate closest to word, if any candidate is close
// enough to plausibly be a misspelling of it. Comparison is case-insensitive;
// short words tolerate fewer edits than long ones.
func Nearest(word string, candidates []string) (string, bool) {
	bestDist := maxDistance(word)
	best := ""
	found := false

	for _, candidate := range candidates {
		dist := levenshtein.Distance(strings.ToLower(word), strings.ToLower(candidate), nil)
		if dist <= bestDist {
			bestDist = dist
			best = candidate
			found = true
		}
	}

	return best, found
}

func maxDistance(word string) int {
	switch {
	case len(word) <= 3:
		return 1
	case len(word) <= 8:
		return 2
	default:
		return 3
	}
}
