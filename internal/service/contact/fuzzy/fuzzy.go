// Package fuzzy implements similarity-based candidate matching over short
// strings such as contact names. The similarity metric is the
// Ratcliff/Obershelp ratio: twice the total length of matching blocks divided
// by the combined length of both strings.
package fuzzy

import (
	"sort"
	"strings"
)

const (
	// DefaultCutoff is the minimum similarity for a candidate to be returned.
	DefaultCutoff = 0.6
	// DefaultLimit is the maximum number of candidates returned.
	DefaultLimit = 3
)

// Ratio returns the similarity of a and b in [0, 1].
// Identical strings score 1.0, strings with no common characters score 0.
// Two empty strings score 1.0.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	matched := matchingTotal(ra, rb)
	return 2.0 * float64(matched) / float64(total)
}

// CloseMatches returns the candidates most similar to query, best first.
// Comparison is case-insensitive; returned values preserve the candidates'
// original spelling. Candidates scoring below cutoff are dropped, at most
// limit results are returned, and equal scores keep their original order.
func CloseMatches(query string, candidates []string, limit int, cutoff float64) []string {
	if limit <= 0 {
		limit = DefaultLimit
	}

	type scored struct {
		value string
		score float64
	}

	lowered := strings.ToLower(query)
	matches := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		score := Ratio(lowered, strings.ToLower(c))
		if score >= cutoff {
			matches = append(matches, scored{value: c, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.value
	}
	return out
}

type span struct {
	alo, ahi, blo, bhi int
}

// matchingTotal sums the lengths of all matching blocks between a and b.
// Blocks are found by repeatedly taking the longest common substring and
// recursing into the pieces to its left and right, which is the
// Ratcliff/Obershelp pattern-matching strategy.
func matchingTotal(a, b []rune) int {
	// Positions of each rune in b, for the longest-match scan.
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	total := 0
	queue := []span{{0, len(a), 0, len(b)}}
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		i, j, size := longestMatch(a, b2j, s.alo, s.ahi, s.blo, s.bhi)
		if size == 0 {
			continue
		}
		total += size
		if s.alo < i && s.blo < j {
			queue = append(queue, span{s.alo, i, s.blo, j})
		}
		if i+size < s.ahi && j+size < s.bhi {
			queue = append(queue, span{i + size, s.ahi, j + size, s.bhi})
		}
	}
	return total
}

// longestMatch finds the longest block where a[alo:ahi] and b[blo:bhi] match.
// Of all maximal blocks it prefers the one starting earliest in a, then
// earliest in b, so results are deterministic.
func longestMatch(a []rune, b2j map[rune][]int, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo

	// j2len[j] is the length of the longest match ending at a[i-1], b[j-1].
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, bestsize
}
