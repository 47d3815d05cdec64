package main

import (
	"strings"

	mapset "github.com/deckarep/golang-set"
	"github.com/samber/lo"
)

// knownPresentLetters collects every letter with correct or present evidence
// anywhere in the guess log. An absent status for one of these letters only
// rules the letter out at that position, not from the whole word; this is
// what keeps words with repeated letters from being filtered out when one
// copy is marked absent and another is marked present or correct.
func knownPresentLetters(guesses []GuessFeedback) mapset.Set {
	known := mapset.NewSet()
	for _, guess := range guesses {
		for i, status := range guess.Statuses {
			if status == StatusCorrect || status == StatusPresent {
				known.Add(guess.Word[i])
			}
		}
	}
	return known
}

// matchesGuess reports whether word is consistent with a single guess's
// feedback, given the known-present letter set from the full guess log.
func matchesGuess(word string, guess GuessFeedback, known mapset.Set) bool {
	for i, status := range guess.Statuses {
		letter := guess.Word[i]
		switch status {
		case StatusCorrect:
			if word[i] != letter {
				return false
			}
		case StatusPresent:
			if word[i] == letter {
				return false
			}
			if !strings.ContainsRune(word, rune(letter)) {
				return false
			}
		case StatusAbsent:
			if known.Contains(letter) {
				if word[i] == letter {
					return false
				}
			} else if strings.ContainsRune(word, rune(letter)) {
				return false
			}
		}
	}
	return true
}

// filterCandidates returns the catalog words consistent with every guess in
// the log. Constraints accumulate, so the guess order does not matter. An
// empty log returns the full catalog; an empty result is a legitimate
// outcome, not an error.
func filterCandidates(words []string, guesses []GuessFeedback) []string {
	if len(guesses) == 0 {
		return words
	}
	known := knownPresentLetters(guesses)
	return lo.Filter(words, func(word string, _ int) bool {
		if len(word) != WordLength {
			return false
		}
		for _, guess := range guesses {
			if !matchesGuess(word, guess, known) {
				return false
			}
		}
		return true
	})
}
