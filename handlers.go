package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"env":           map[bool]string{true: "production", false: "development"}[app.IsProduction],
		"catalog_words": app.Catalog.Len(),
		"players":       app.Scores.Players(),
		"uptime":        formatUptime(uptime),
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
	})
}

// scoresHandler returns every score row, newest first.
func (app *App) scoresHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"players": app.Scores.Players(),
		"rows":    app.Scores.ReadAll(),
	})
}

// scoresMonthlyHandler returns the per-player monthly averages.
func (app *App) scoresMonthlyHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"players": app.Scores.Players(),
		"months":  app.Scores.MonthlyAverages(),
	})
}

type scoreRequest struct {
	Date   string `json:"date"`
	Player string `json:"player"`
	Score  int    `json:"score"`
}

// saveScoreHandler records or updates one player's score for a date.
func (app *App) saveScoreHandler(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
		return
	}
	if err := app.Scores.AppendOrUpdate(req.Date, req.Player, req.Score); err != nil {
		switch {
		case errors.Is(err, ErrUnknownPlayer):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrScoreOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logWarn("Saving score for %s on %s failed: %v", req.Player, req.Date, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save the score sheet."})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"saved":  true,
		"date":   req.Date,
		"player": req.Player,
		"score":  req.Score,
	})
}

type guessRequest struct {
	Word     string          `json:"word"`
	Feedback json.RawMessage `json:"feedback"`
}

// solverGuessHandler appends a guess with its feedback to the session log
// and responds with the surviving candidate count and top suggestions.
func (app *App) solverGuessHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	session := app.getSolverSession(sessionID)

	var req guessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
		return
	}

	statuses, err := parseFeedback(req.Feedback)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	word := normalizeGuess(req.Word)
	app.SessionMutex.Lock()
	err = session.submitGuess(word, statuses)
	app.SessionMutex.Unlock()
	if err != nil {
		logWarn("Session %s submitted invalid guess %q: %v", sessionID, req.Word, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logInfo("Session %s guessed %s %s", sessionID, word, feedbackMask(statuses))

	app.respondWithCandidates(c, session, DefaultSuggestionCap)
}

// solverResetHandler clears the session's guess log.
func (app *App) solverResetHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	session := app.getSolverSession(sessionID)

	app.SessionMutex.Lock()
	session.reset()
	app.SessionMutex.Unlock()
	logInfo("Session %s reset solver", sessionID)

	c.JSON(http.StatusOK, gin.H{
		"reset":          true,
		"candidateCount": app.Catalog.Len(),
	})
}

// solverCandidatesHandler returns the ranked candidate list for the session.
func (app *App) solverCandidatesHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	session := app.getSolverSession(sessionID)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := parseLimit(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}
	app.respondWithCandidates(c, session, limit)
}

// respondWithCandidates filters and ranks the catalog against the session's
// guess log. limit of 0 returns the full ranked list.
func (app *App) respondWithCandidates(c *gin.Context, session *SolverSession, limit int) {
	app.SessionMutex.RLock()
	guesses := make([]GuessFeedback, len(session.Guesses))
	copy(guesses, session.Guesses)
	app.SessionMutex.RUnlock()

	candidates := filterCandidates(app.Catalog.Words(), guesses)
	ranked := rankCandidates(candidates, app.Catalog.Weights())
	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}

	history := lo.Map(guesses, func(g GuessFeedback, _ int) gin.H {
		return gin.H{"word": g.Word, "feedback": feedbackMask(g.Statuses)}
	})

	payload := gin.H{
		"candidateCount": len(candidates),
		"candidates":     ranked,
		"history":        history,
	}
	if len(candidates) == 0 {
		payload["message"] = ErrorNoCandidates
	}
	c.JSON(http.StatusOK, payload)
}

type markUsedRequest struct {
	Word   string   `json:"word"`
	Weight *float64 `json:"weight,omitempty"`
	Remove bool     `json:"remove,omitempty"`
}

// markUsedHandler lowers a word's weight after it was the day's answer, or
// removes it outright when remove is set.
func (app *App) markUsedHandler(c *gin.Context) {
	var req markUsedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
		return
	}

	word := normalizeGuess(req.Word)
	if len(word) != WordLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidLength})
		return
	}
	if !isUppercaseWord(word) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidWord})
		return
	}

	if req.Remove {
		if err := app.Catalog.Remove(word); err != nil {
			respondCatalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"word": word, "removed": true})
		return
	}

	weight := UsedWordWeight
	if req.Weight != nil {
		if *req.Weight <= 0 || *req.Weight > 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "weight must be in (0, 1]"})
			return
		}
		weight = *req.Weight
	}
	if err := app.Catalog.MarkUsed(word, weight); err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"word": word, "weight": weight})
}

// respondCatalogError maps a catalog mutation error to an HTTP status:
// unknown words are 404, anything else is a failed word list save.
func respondCatalogError(c *gin.Context, err error) {
	if errors.Is(err, ErrWordNotInCatalog) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	logWarn("Saving word list failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save the word list."})
}

// fetchTodayHandler fetches the published daily answer and marks it used.
func (app *App) fetchTodayHandler(c *gin.Context) {
	answer, err := app.fetchTodaysAnswer(c.Request.Context())
	if err != nil {
		logWarn("Daily answer fetch failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not reach the daily answer service."})
		return
	}

	if !app.Catalog.Contains(answer) {
		c.JSON(http.StatusOK, gin.H{
			"word":    answer,
			"updated": false,
			"message": "Fetched answer is not in the catalog.",
		})
		return
	}
	if err := app.Catalog.MarkUsed(answer, UsedWordWeight); err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"word":    answer,
		"updated": true,
		"weight":  UsedWordWeight,
	})
}
