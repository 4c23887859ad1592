package match

// levenshtein computes the edit distance between a and b with unit costs for
// insert, delete and substitute. Standard DP table, O(len(a)*len(b)); phrases
// are short so this is fine.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for j := 0; j <= len(ra); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(rb); i++ {
		curr[0] = i
		for j := 1; j <= len(ra); j++ {
			if rb[i-1] == ra[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			curr[j] = min(prev[j-1], min(curr[j-1], prev[j])) + 1
		}
		prev, curr = curr, prev
	}
	return prev[len(ra)]
}

// similarity normalizes the edit distance into [0,1]. Two empty strings are
// defined as identical (1.0).
func similarity(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1.0
	}
	return float64(longest-levenshtein(a, b)) / float64(longest)
}
