package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// submitGuess validates and appends one guess to the session log. On any
// validation failure the session is left unchanged.
func (s *SolverSession) submitGuess(word string, statuses []string) error {
	if len(word) != WordLength {
		return errors.New(ErrorInvalidLength)
	}
	if !isUppercaseWord(word) {
		return errors.New(ErrorInvalidWord)
	}
	if len(statuses) != WordLength {
		return errors.New(ErrorInvalidFeedback)
	}
	for _, status := range statuses {
		if status != StatusCorrect && status != StatusPresent && status != StatusAbsent {
			return errors.New(ErrorUnknownStatus)
		}
	}
	s.Guesses = append(s.Guesses, GuessFeedback{Word: word, Statuses: statuses})
	s.LastAccessTime = time.Now()
	return nil
}

// reset clears the guess log, returning the session to its empty state.
func (s *SolverSession) reset() {
	s.Guesses = nil
	s.LastAccessTime = time.Now()
}

// getOrCreateSession retrieves the session ID from the cookie or creates a new one.
func (app *App) getOrCreateSession(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || len(sessionID) < 10 {
		sessionID = uuid.NewString()
		c.SetSameSite(http.SameSiteStrictMode)
		secure := app.IsProduction
		c.SetCookie(SessionCookieName, sessionID, int(app.CookieMaxAge.Seconds()), "/", "", secure, true)
		logInfo("Created new solver session: %s", sessionID)
	}
	return sessionID
}

// getSolverSession retrieves or creates the solver session for a session ID.
func (app *App) getSolverSession(sessionID string) *SolverSession {
	app.SessionMutex.RLock()
	session, exists := app.SolverSessions[sessionID]
	app.SessionMutex.RUnlock()
	if exists {
		app.SessionMutex.Lock()
		session.LastAccessTime = time.Now()
		app.SessionMutex.Unlock()
		return session
	}

	logInfo("Creating new solver session state for: %s", sessionID)
	session = &SolverSession{LastAccessTime: time.Now()}
	app.SessionMutex.Lock()
	app.SolverSessions[sessionID] = session
	app.SessionMutex.Unlock()
	return session
}

// cleanupIdleSessions drops solver sessions untouched for longer than maxAge.
func (app *App) cleanupIdleSessions(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)
	removed := 0
	app.SessionMutex.Lock()
	for id, session := range app.SolverSessions {
		if session.LastAccessTime.Before(cutoff) {
			delete(app.SolverSessions, id)
			removed++
		}
	}
	app.SessionMutex.Unlock()
	if removed > 0 {
		logInfo("Session cleanup removed %d idle solver sessions", removed)
	}
	return removed
}

// startSessionJanitor sweeps idle sessions until the context is cancelled.
func (app *App) startSessionJanitor(ctx context.Context) {
	interval := app.SessionTimeout / 2
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				app.cleanupIdleSessions(app.SessionTimeout)
			}
		}
	}()
}
