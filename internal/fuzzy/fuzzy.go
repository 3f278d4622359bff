// Package fuzzy implements approximate string matching, used to offer
// "did you mean" candidates when an option name is a near miss.
package fuzzy

import "strings"

// DefaultMaxDistance is the edit-distance budget used by BestOptionName.
const DefaultMaxDistance = 2

// Matcher finds the closest candidate within a fixed edit-distance budget.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher allowing up to maxDistance edits.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // don't suggest for very short inputs
	}
}

// FindBest returns the candidate closest to input. Ties on distance are
// broken by the longer shared prefix, then by candidate order. The boolean
// is false when no candidate is within the distance budget.
func (m *Matcher) FindBest(input string, candidates []string) (string, bool) {
	if len(input) < m.minLength {
		return "", false
	}

	input = strings.ToLower(input)
	best := ""
	bestDistance := m.maxDistance + 1
	bestPrefix := -1

	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			// Exact modulo case; lookups themselves are case-sensitive.
			return candidate, true
		}

		distance := m.distance(input, lower)
		prefix := commonPrefixLen(input, lower)
		if distance < bestDistance || (distance == bestDistance && prefix > bestPrefix) {
			best = candidate
			bestDistance = distance
			bestPrefix = prefix
		}
	}

	if bestDistance > m.maxDistance {
		return "", false
	}
	return best, true
}

// distance is the Levenshtein edit distance between a and b, computed with
// two rows and cut short as soon as the budget cannot be met.
func (m *Matcher) distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// The length gap alone is a lower bound on the distance.
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}

	if len(a) > len(b) {
		a, b = b, a
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
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}
			cur[j] = min(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			if cur[j] < rowMin {
				rowMin = cur[j]
			}
		}

		// Once every cell exceeds the budget the final distance must too.
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}

		prev, cur = cur, prev
	}

	return prev[len(a)]
}

func commonPrefixLen(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// BestOptionName finds the closest long option name using the default
// distance budget.
func BestOptionName(input string, names []string) (string, bool) {
	return NewMatcher(DefaultMaxDistance).FindBest(input, names)
}
