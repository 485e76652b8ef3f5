// Package fuzzy ranks option names by edit distance for "did you mean"
// hints. It is only consulted after matching has already failed.
package fuzzy

import (
	"sort"
	"strings"
)

// Match is one ranked candidate.
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// Matcher ranks candidates within a maximum edit distance.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher returns a Matcher accepting candidates up to maxDistance edits
// away. Inputs shorter than two bytes never produce suggestions.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{maxDistance: maxDistance, minLength: 2}
}

// Best returns the highest ranked candidate, or "".
func (m *Matcher) Best(input string, candidates []string) string {
	ranked := m.Rank(input, candidates)
	if len(ranked) == 0 {
		return ""
	}
	return ranked[0].Value
}

// Rank returns the candidates within range, best first. Comparison ignores
// case, and a candidate equal to input is not a suggestion.
func (m *Matcher) Rank(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}
	input = strings.ToLower(input)

	var ranked []Match
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			continue
		}
		d := m.distance(input, lower)
		if d > m.maxDistance {
			continue
		}
		ranked = append(ranked, Match{Value: candidate, Distance: d, Score: m.score(input, lower, d)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score == ranked[j].Score {
			return ranked[i].Distance < ranked[j].Distance
		}
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// score weighs edit distance, shared prefix and length similarity.
func (m *Matcher) score(a, b string, d int) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}
	s := 1 - float64(d)/float64(longest)
	if p := commonPrefix(a, b); p > 0 {
		s += float64(p) / float64(min(len(a), len(b))) * 0.3
	}
	diff := len(a) - len(b)
	if diff < 0 {
		diff = -diff
	}
	s += (1 - float64(diff)/float64(longest)) * 0.2
	return min(s, 1)
}

// distance is the Levenshtein distance between a and b, cut short at
// maxDistance+1 once the result cannot stay within range.
func (m *Matcher) distance(a, b string) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(b)-len(a) > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) == 0 {
		return len(b)
	}

	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}
	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			cur[j] = min(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, cur[j])
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(a)]
}

func commonPrefix(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// Closest returns the best candidate for input within maxDistance, or "".
func Closest(input string, candidates []string, maxDistance int) string {
	return NewMatcher(maxDistance).Best(input, candidates)
}
