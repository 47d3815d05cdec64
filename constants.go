package main

// Word and scoring configuration constants
const (
	WordLength     = 5    // Length of every catalog word and guess
	DefaultWeight  = 1.0  // Weight of a word never used as an answer
	UsedWordWeight = 0.02 // Weight assigned when a word is marked as used
	FallbackWeight = 0.02 // Weight assumed for words missing from the weight map
	MinScore       = 1    // Lowest valid tournament score
	MaxScore       = 7    // Highest valid tournament score (6 tries + 1 for a fail)
)

// Letter status constants
const (
	StatusCorrect = "correct"
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

// Suggestion source constants
const (
	SourceOriginal = "original"
	SourceExpanded = "expanded"
)

// Session configuration constants
const (
	SessionCookieName    = "session_id"
	DefaultSuggestionCap = 10
)

// Route constants
const (
	RouteHealthz       = "/healthz"
	RouteScores        = "/scores"
	RouteScoresMonthly = "/scores/monthly"
	RouteSolverGuess   = "/solver/guess"
	RouteSolverReset   = "/solver/reset"
	RouteSolverList    = "/solver/candidates"
	RouteCatalogUsed   = "/catalog/used"
	RouteCatalogFetch  = "/catalog/fetch-today"
)

// Error message constants
const (
	ErrorInvalidLength    = "Word must be 5 letters."
	ErrorInvalidWord      = "Word must contain only letters A-Z."
	ErrorInvalidFeedback  = "Feedback must have exactly one status per letter."
	ErrorUnknownStatus    = "Feedback statuses must be correct, present or absent."
	ErrorWordNotInCatalog = "Word is not in the catalog."
	ErrorUnknownPlayer    = "Player is not on the score sheet."
	ErrorInvalidDate      = "Date must be in YYYY-MM-DD format."
	ErrorScoreOutOfRange  = "Score must be between 1 and 7."
	ErrorNoCandidates     = "No catalog word satisfies the current constraints. Re-check the entered feedback, or the answer may be missing from the catalog."
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)

type contextKey string
