package main

import (
	"encoding/json"
	"errors"
	"strings"
)

// parseFeedback accepts either a JSON array of per-letter statuses
// ("correct"/"present"/"absent", or the single letters g/y/b) or a compact
// 5-rune mask string like "gybbb". Returns normalized status names.
func parseFeedback(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, errors.New(ErrorInvalidFeedback)
	}

	var tokens []string
	if err := json.Unmarshal(raw, &tokens); err != nil {
		var mask string
		if err := json.Unmarshal(raw, &mask); err != nil {
			return nil, errors.New(ErrorInvalidFeedback)
		}
		runes := []rune(strings.TrimSpace(mask))
		tokens = make([]string, 0, len(runes))
		for _, r := range runes {
			tokens = append(tokens, string(r))
		}
	}

	if len(tokens) != WordLength {
		return nil, errors.New(ErrorInvalidFeedback)
	}

	statuses := make([]string, WordLength)
	for i, tok := range tokens {
		status, err := statusFromToken(tok)
		if err != nil {
			return nil, err
		}
		statuses[i] = status
	}
	return statuses, nil
}

// statusFromToken normalizes a single feedback token to a status constant.
// The g/y/b letters match the mask notation used for sharing results.
func statusFromToken(tok string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case StatusCorrect, "g":
		return StatusCorrect, nil
	case StatusPresent, "y":
		return StatusPresent, nil
	case StatusAbsent, "b":
		return StatusAbsent, nil
	default:
		return "", errors.New(ErrorUnknownStatus)
	}
}

// feedbackMask renders statuses as the compact g/y/b form for history display.
func feedbackMask(statuses []string) string {
	var sb strings.Builder
	for _, status := range statuses {
		switch status {
		case StatusCorrect:
			sb.WriteByte('g')
		case StatusPresent:
			sb.WriteByte('y')
		default:
			sb.WriteByte('b')
		}
	}
	return sb.String()
}

// normalizeGuess trims and uppercases a guess string for comparison.
func normalizeGuess(input string) string {
	return strings.ToUpper(strings.TrimSpace(input))
}

// isUppercaseWord reports whether w is exactly WordLength letters A-Z.
func isUppercaseWord(w string) bool {
	if len(w) != WordLength {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}
