package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func answerTestApp(baseURL string) *App {
	return &App{
		AnswerBaseURL: baseURL,
		HTTPClient:    &http.Client{Timeout: 5 * time.Second},
	}
}

// TestFetchTodaysAnswer checks the happy path against a stub server.
func TestFetchTodaysAnswer(t *testing.T) {
	var gotPath, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":123,"solution":"crane","print_date":"2026-08-30"}`))
	}))
	defer srv.Close()

	app := answerTestApp(srv.URL)
	answer, err := app.fetchTodaysAnswer(context.Background())
	if err != nil {
		t.Fatalf("fetchTodaysAnswer failed: %v", err)
	}
	if answer != "CRANE" {
		t.Errorf("answer = %q, want CRANE", answer)
	}

	wantPath := "/svc/wordle/v2/" + time.Now().Format(dateLayout) + ".json"
	if gotPath != wantPath {
		t.Errorf("request path = %q, want %q", gotPath, wantPath)
	}
	if gotUA == "" {
		t.Error("request sent without a User-Agent header")
	}
}

// TestFetchTodaysAnswerErrors checks the failure paths.
func TestFetchTodaysAnswerErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			},
		},
		{
			name: "bad json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
		},
		{
			name: "empty solution",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"solution":""}`))
			},
		},
		{
			name: "malformed solution",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"solution":"xy"}`))
			},
		},
	}
	for _, tt := range tests {
		srv := httptest.NewServer(tt.handler)
		app := answerTestApp(srv.URL)
		if _, err := app.fetchTodaysAnswer(context.Background()); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
		srv.Close()
	}
}

// TestFetchTodaysAnswerUnreachable checks a dead endpoint errors out.
func TestFetchTodaysAnswerUnreachable(t *testing.T) {
	app := answerTestApp("http://127.0.0.1:1")
	if _, err := app.fetchTodaysAnswer(context.Background()); err == nil {
		t.Error("expected error for unreachable endpoint")
	}
}
