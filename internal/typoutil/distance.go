// Package typoutil measures edit distances between short identifiers and
// suggests the closest known names for a misspelled one.
package typoutil

import (
	"sort"
)

// DamerauLevenshteinDistance computes the optimal string alignment distance
// between a and b: the minimum number of single-rune insertions, deletions,
// substitutions or adjacent transpositions turning one into the other.
// Runes are compared, not bytes.
func DamerauLevenshteinDistance(a, b string) int {
	runesA := []rune(a)
	runesB := []rune(b)

	lenA := len(runesA)
	lenB := len(runesB)
	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	// Only three rows are needed: the transposition case looks two rows back.
	prevPrev := make([]int, lenB+1)
	prev := make([]int, lenB+1)
	curr := make([]int, lenB+1)
	for j := 0; j <= lenB; j++ {
		prev[j] = j
	}

	for i := 1; i <= lenA; i++ {
		curr[0] = i
		for j := 1; j <= lenB; j++ {
			cost := 1
			if runesA[i-1] == runesB[j-1] {
				cost = 0
			}

			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && runesA[i-1] == runesB[j-2] && runesA[i-2] == runesB[j-1] {
				curr[j] = min(curr[j], prevPrev[j-2]+1)
			}
		}
		prevPrev, prev, curr = prev, curr, prevPrev
	}

	return prev[lenB]
}

// Suggest returns the candidates within maxDistance edits of word, closest
// first and alphabetically among equals. An exact match is never suggested.
func Suggest(word string, candidates []string, maxDistance int) []string {
	type scored struct {
		name     string
		distance int
	}

	var matches []scored
	for _, candidate := range candidates {
		if candidate == word {
			continue
		}
		if d := DamerauLevenshteinDistance(word, candidate); d <= maxDistance {
			matches = append(matches, scored{name: candidate, distance: d})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].name < matches[j].name
	})

	suggestions := make([]string, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, m.name)
	}
	return suggestions
}
