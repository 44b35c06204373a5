package services

// Levenshtein computes the edit distance between a and b with unit costs
// for insertion, deletion and substitution. It keeps a single DP row of
// len(b)+1 entries and compares runes, not bytes.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	runesA := []rune(a)
	runesB := []rune(b)
	if len(runesA) == 0 {
		return len(runesB)
	}
	if len(runesB) == 0 {
		return len(runesA)
	}

	row := make([]int, len(runesB)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(runesA); i++ {
		diag := i - 1
		row[0] = i
		for j := 1; j <= len(runesB); j++ {
			above := row[j]
			if runesA[i-1] == runesB[j-1] {
				row[j] = diag
			} else {
				row[j] = min(
					diag+1,     // substitution
					row[j]+1,   // deletion
					row[j-1]+1, // insertion
				)
			}
			diag = above
		}
	}

	return row[len(runesB)]
}

// IsSubsequence reports whether the runes of needle appear in hay in order,
// not necessarily contiguously. An empty needle is always a subsequence.
func IsSubsequence(needle, hay string) bool {
	want := []rune(needle)
	i := 0
	for _, r := range hay {
		if i < len(want) && r == want[i] {
			i++
		}
	}
	return i == len(want)
}

// similarity is 1 - distance/maxLen, in [0, 1].
func similarity(value, token string) float64 {
	maxLen := max(len([]rune(value)), len([]rune(token)))
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(Levenshtein(value, token))/float64(maxLen)
}
