package asr

import "strings"

// SimilarityThreshold is the ratio above which two transcript alternatives
// are considered duplicates of each other.
const SimilarityThreshold = 0.92

// DedupeAlternatives keeps the first alternative and drops every later one
// whose similarity ratio to any already-kept transcript exceeds the
// threshold. Surviving transcripts are joined with ". ".
func DedupeAlternatives(alts []Alternative) string {
	var kept []string
	for _, alt := range alts {
		text := strings.TrimSpace(alt.Transcript)
		if text == "" {
			continue
		}
		dup := false
		for _, k := range kept {
			if SimilarityRatio(text, k) > SimilarityThreshold {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, text)
		}
	}
	return strings.Join(kept, ". ")
}

// SimilarityRatio computes the Ratcliff/Obershelp similarity of two strings:
// twice the total length of their matching blocks divided by the combined
// length. Identical strings score 1.0, fully distinct strings 0.0.
func SimilarityRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	matched := matchingSize(ra, rb, 0, len(ra), 0, len(rb))
	return 2.0 * float64(matched) / float64(total)
}

// matchingSize sums the sizes of all matching blocks between a[alo:ahi] and
// b[blo:bhi]: find the longest common block, then recurse on the pieces to
// its left and right.
func matchingSize(a, b []rune, alo, ahi, blo, bhi int) int {
	i, j, size := longestMatch(a, b, alo, ahi, blo, bhi)
	if size == 0 {
		return 0
	}
	return size +
		matchingSize(a, b, alo, i, blo, j) +
		matchingSize(a, b, i+size, ahi, j+size, bhi)
}

// longestMatch finds the longest block a[i:i+size] == b[j:j+size] within the
// given bounds, preferring the earliest match in a, then in b.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	b2j := make(map[rune][]int, bhi-blo)
	for j := blo; j < bhi; j++ {
		b2j[b[j]] = append(b2j[b[j]], j)
	}

	besti, bestj = alo, blo
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newJ2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			k := j2len[j-1] + 1
			newJ2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newJ2len
	}
	return besti, bestj, bestsize
}
