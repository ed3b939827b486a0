package interpreter

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// suggest formats a "did you mean" suffix for an unknown name, or an
// empty string when nothing in candidates comes close.
func suggest(name string, candidates []string) string {
	match := closestMatch(name, candidates)
	if match == "" {
		return ""
	}
	return fmt.Sprintf(". Did you mean '%s'?", match)
}

// closestMatch finds the closest candidate by fuzzy ranking, falling
// back to plain edit distance for typos like transposed letters that
// subsequence matching cannot see.
func closestMatch(target string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}

	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best := ""
	bestDistance := 4
	for _, candidate := range candidates {
		if d := fuzzy.LevenshteinDistance(target, candidate); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best
}
