package main

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// CatalogEntry is a single word in the catalog with its remaining likelihood.
// Weight stays in (0, 1]; lower means the word was used in a past round.
type CatalogEntry struct {
	Word   string  `json:"word"`
	Weight float64 `json:"weight"`
}

// GuessFeedback pairs a guessed word with one status per letter position.
type GuessFeedback struct {
	Word     string   `json:"word"`
	Statuses []string `json:"feedback"` // exactly WordLength entries, position-aligned
}

// RankedWord is a surviving candidate with its suggestion scores.
type RankedWord struct {
	Word       string  `json:"word"`
	RawScore   int     `json:"rawScore"`
	Weight     float64 `json:"weight"`
	FinalScore float64 `json:"finalScore"`
	Source     string  `json:"source"` // "original" (full weight) or "expanded"
}

// SolverSession is the ordered guess log for one player's current game.
// It is session-local, in-memory only, and cleared by an explicit reset.
type SolverSession struct {
	Guesses        []GuessFeedback
	LastAccessTime time.Time
}

// ScoreRow is one date's scores, one cell per player. Cells without an
// entered score are simply absent from the map.
type ScoreRow struct {
	Date   string             `json:"date"`
	Scores map[string]float64 `json:"scores"`
}

// MonthlyAverage is the per-player mean score for one YYYY-MM month.
type MonthlyAverage struct {
	Month    string             `json:"month"`
	Averages map[string]float64 `json:"averages"`
}

// App holds all application state and configuration.
type App struct {
	Catalog *WordCatalog
	Scores  *ScoreStore

	SolverSessions map[string]*SolverSession
	SessionMutex   sync.RWMutex

	LimiterMap   map[string]*rate.Limiter
	LimiterMutex sync.Mutex

	IsProduction   bool
	StartTime      time.Time
	SessionTimeout time.Duration
	CookieMaxAge   time.Duration
	RateLimitRPS   int
	RateLimitBurst int

	AnswerBaseURL string
	HTTPClient    *http.Client
}
