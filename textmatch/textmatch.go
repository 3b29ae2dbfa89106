// Package textmatch provides the two string-similarity measures used to
// compare interview questions: a character-level sequence ratio and a
// token-overlap fraction.
package textmatch

import "strings"

// Ratio is the classic sequence-matcher measure: find the longest matching
// block, recurse on the pieces left and right of it, and report
// 2*matched/(len(a)+len(b)). Case-insensitive. 1.0 means identical, 0.0 means
// no characters in common.
func Ratio(a, b string) float64 {
	al := []rune(strings.ToLower(a))
	bl := []rune(strings.ToLower(b))

	if len(al) == 0 && len(bl) == 0 {
		return 1.0
	}
	if len(al) == 0 || len(bl) == 0 {
		return 0.0
	}

	matched := matchingTotal(al, bl, 0, len(al), 0, len(bl))

	return 2.0 * float64(matched) / float64(len(al)+len(bl))
}

// matchingTotal sums the lengths of the recursive longest-matching-block
// decomposition of a[alo:ahi] vs b[blo:bhi].
func matchingTotal(a, b []rune, alo, ahi, blo, bhi int) int {
	besti, bestj, bestSize := longestMatch(a, b, alo, ahi, blo, bhi)
	if bestSize == 0 {
		return 0
	}

	total := bestSize
	total += matchingTotal(a, b, alo, besti, blo, bestj)
	total += matchingTotal(a, b, besti+bestSize, ahi, bestj+bestSize, bhi)

	return total
}

func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (int, int, int) {
	// positions of each rune in b[blo:bhi]
	b2j := make(map[rune][]int)
	for j := blo; j < bhi; j++ {
		b2j[b[j]] = append(b2j[b[j]], j)
	}

	besti, bestj, bestSize := alo, blo, 0

	// j2len[j] = length of longest match ending at a[i-1], b[j-1]
	j2len := make(map[int]int)

	for i := alo; i < ahi; i++ {
		newJ2len := make(map[int]int)

		for _, j := range b2j[a[i]] {
			k := j2len[j-1] + 1
			newJ2len[j] = k

			if k > bestSize {
				besti = i - k + 1
				bestj = j - k + 1
				bestSize = k
			}
		}

		j2len = newJ2len
	}

	return besti, bestj, bestSize
}

// TokenOverlap reports the fraction of the smaller question's tokens that
// also appear in the other question. Tokens are lowercased and stripped of
// surrounding punctuation.
func TokenOverlap(a, b string) float64 {
	at := tokenSet(a)
	bt := tokenSet(b)

	if len(at) == 0 || len(bt) == 0 {
		return 0.0
	}

	small, large := at, bt
	if len(bt) < len(at) {
		small, large = bt, at
	}

	shared := 0
	for tok := range small {
		if _, ok := large[tok]; ok {
			shared++
		}
	}

	return float64(shared) / float64(len(small))
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})

	for _, tok := range strings.Fields(strings.ToLower(s)) {
		tok = strings.Trim(tok, ".,!?;:'\"()-")
		if tok != "" {
			set[tok] = struct{}{}
		}
	}

	return set
}
