package match

import "sort"

// Levenshtein computes the edit distance between two strings, counting
// single-byte insertions, deletions and substitutions.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	if len(a) == 0 {
		return len(b)
	}

	// two rows are enough; a is the shorter string
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity returns 1 - distance/maxLen for the normalized forms of a and b.
// 1.0 means identical after normalization.
func Similarity(a, b string) float64 {
	na, nb := NormalizeIdent(a), NormalizeIdent(b)
	if len(na) == 0 && len(nb) == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(na, nb))/float64(max(len(na), len(nb)))
}

// SuggestThreshold is the minimal Similarity for Suggest to report a candidate.
const SuggestThreshold = 0.6

// Suggest returns the candidate most similar to name, if any reaches SuggestThreshold.
// Ties resolve to the lexicographically smallest candidate.
func Suggest(name string, candidates []string) (string, bool) {
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)

	best, bestScore := "", SuggestThreshold
	found := false

	for _, c := range sorted {
		if score := Similarity(name, c); score > bestScore || (!found && score == bestScore) {
			best, bestScore, found = c, score, true
		}
	}

	return best, found
}
