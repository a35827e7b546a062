package quiz

// matchRatio returns a similarity score in [0, 1] for two strings using
// the Ratcliff/Obershelp measure: 2*M/T, where M is the total length of
// all matching blocks and T the combined length of both inputs.
func matchRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}
	return 2 * float64(matchingLength(ra, rb)) / float64(total)
}

// matchingLength sums matching-block lengths by finding the longest
// common block and recursing on the pieces to its left and right.
func matchingLength(a, b []rune) int {
	ai, bi, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingLength(a[:ai], b[:bi]) +
		matchingLength(a[ai+size:], b[bi+size:])
}

// longestMatch locates the longest common contiguous block of a and b,
// preferring the earliest position in a on ties.
func longestMatch(a, b []rune) (ai, bi, size int) {
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	// j2len[j] is the length of the longest block ending at a[i], b[j].
	j2len := make(map[int]int)
	for i, r := range a {
		next := make(map[int]int, len(b2j[r]))
		for _, j := range b2j[r] {
			k := j2len[j-1] + 1
			next[j] = k
			if k > size {
				ai, bi, size = i-k+1, j-k+1, k
			}
		}
		j2len = next
	}
	return ai, bi, size
}
