package main

import (
	"math"
	"sort"

	"github.com/samber/lo"
)

// letterCounts tallies every letter occurrence across all candidates,
// counted with repetition. Words rich in letters common among the survivors
// score higher, which approximates the information a guess would gain.
func letterCounts(candidates []string) map[byte]int {
	counts := make(map[byte]int, 26)
	for _, word := range candidates {
		for i := 0; i < len(word); i++ {
			counts[word[i]]++
		}
	}
	return counts
}

// rawScore sums the frequency counts of the distinct letters in word.
// A doubled letter counts once, so repeated letters carry no bonus.
func rawScore(word string, counts map[byte]int) int {
	distinct := lo.Uniq([]byte(word))
	return lo.SumBy(distinct, func(letter byte) int {
		return counts[letter]
	})
}

// rankCandidates scores each surviving candidate and returns them ordered by
// FinalScore descending, with RawScore breaking ties among equal weights.
// The weight deprioritizes previously used words without removing them, so a
// near-exhausted catalog can still be searched when nothing else is left.
func rankCandidates(candidates []string, weights map[string]float64) []RankedWord {
	counts := letterCounts(candidates)

	ranked := lo.Map(candidates, func(word string, _ int) RankedWord {
		raw := rawScore(word, counts)
		weight, ok := weights[word]
		if !ok {
			weight = FallbackWeight
		}
		source := SourceOriginal
		if weight != DefaultWeight {
			source = SourceExpanded
		}
		return RankedWord{
			Word:       word,
			RawScore:   raw,
			Weight:     weight,
			FinalScore: roundScore(float64(raw) * weight),
			Source:     source,
		}
	})

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].FinalScore != ranked[j].FinalScore {
			return ranked[i].FinalScore > ranked[j].FinalScore
		}
		return ranked[i].RawScore > ranked[j].RawScore
	})
	return ranked
}

// roundScore rounds to 2 decimal places, matching the displayed precision.
func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
