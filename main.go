package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"

	ginGzip "github.com/gin-contrib/gzip"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	_ = godotenv.Load()

	isProduction := os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production"
	logInfo("Starting WordleHQ in %s mode", map[bool]string{true: "production", false: "development"}[isProduction])

	catalog, err := LoadWordCatalog(getEnv("WORD_LIST_FILE", "data/word_list.csv"))
	if err != nil {
		logFatal("Failed to load word catalog: %v", err)
	}
	logInfo("Loaded %d words from catalog", catalog.Len())

	scores, err := LoadScoreStore(getEnv("SCORES_FILE", "data/scores.csv"))
	if err != nil {
		logFatal("Failed to load score sheet: %v", err)
	}
	logInfo("Loaded score sheet with players: %v", scores.Players())

	app := &App{
		Catalog:        catalog,
		Scores:         scores,
		SolverSessions: make(map[string]*SolverSession),
		LimiterMap:     make(map[string]*rate.Limiter),
		IsProduction:   isProduction,
		StartTime:      time.Now(),
		SessionTimeout: getEnvDuration("SESSION_TIMEOUT", 2*time.Hour),
		CookieMaxAge:   getEnvDuration("COOKIE_MAX_AGE", 2*time.Hour),
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		AnswerBaseURL:  getEnv("ANSWER_BASE_URL", DefaultAnswerBaseURL),
		HTTPClient:     &http.Client{Timeout: 10 * time.Second},
	}

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	app.startSessionJanitor(janitorCtx)

	router := app.setupRouter()
	startServer(router)
}

// setupRouter wires middleware and routes onto a gin engine.
func (app *App) setupRouter() *gin.Engine {
	router := gin.Default()

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))
	router.Use(requestIDMiddleware())

	// Everything served here is per-session or mutable state.
	router.Use(cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	}))

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.GET(RouteHealthz, app.healthzHandler)

	router.GET(RouteScores, app.scoresHandler)
	router.GET(RouteScoresMonthly, app.scoresMonthlyHandler)
	router.POST(RouteScores, app.rateLimitMiddleware(), app.saveScoreHandler)

	router.POST(RouteSolverGuess, app.rateLimitMiddleware(), app.solverGuessHandler)
	router.POST(RouteSolverReset, app.rateLimitMiddleware(), app.solverResetHandler)
	router.GET(RouteSolverList, app.solverCandidatesHandler)

	router.POST(RouteCatalogUsed, app.rateLimitMiddleware(), app.markUsedHandler)
	router.POST(RouteCatalogFetch, app.rateLimitMiddleware(), app.fetchTodayHandler)

	return router
}

func startServer(router *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
