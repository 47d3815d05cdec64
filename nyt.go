package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// DefaultAnswerBaseURL is the NYT endpoint serving the daily solution.
const DefaultAnswerBaseURL = "https://www.nytimes.com"

type dailySolution struct {
	Solution string `json:"solution"`
}

// fetchTodaysAnswer retrieves today's published answer so it can be
// down-weighted in the catalog without anyone typing it in. The endpoint
// rejects requests without a browser-looking User-Agent.
func (app *App) fetchTodaysAnswer(ctx context.Context) (string, error) {
	today := time.Now().Format(dateLayout)
	url := fmt.Sprintf("%s/svc/wordle/v2/%s.json", app.AnswerBaseURL, today)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := app.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("daily answer fetch returned status %d", resp.StatusCode)
	}

	var payload dailySolution
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}

	answer := normalizeGuess(payload.Solution)
	if !isUppercaseWord(answer) {
		return "", errors.New("daily answer fetch returned no usable solution")
	}
	logInfo("Fetched today's answer: %s", answer)
	return answer, nil
}
