package main

import (
	"database/sql"
	"log"
	"net/http"

	"kopige-pos/internal/api"
	"kopige-pos/internal/config"
	"kopige-pos/internal/dashboard"
	"kopige-pos/internal/db"
	"kopige-pos/internal/logger"
	"kopige-pos/internal/menu"
	"kopige-pos/internal/metrics"
	"kopige-pos/internal/middleware"
	"kopige-pos/internal/sale"
	"kopige-pos/internal/staff"
	"kopige-pos/internal/store"
)

// Indirections for testing
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	handler := newServer(cfg, database)

	log.Printf("🚀 POS server running at http://localhost:%s/", cfg.AppPort)
	return startServerFunc(":"+cfg.AppPort, handler)
}

// newServer wires the document store, the domain services and the middleware
// chain into one handler.
func newServer(cfg *config.Config, database *sql.DB) http.Handler {
	documents := store.NewPostgres(database)

	saleSvc := sale.NewService(documents)
	srv := api.NewServer(
		menu.NewService(documents),
		staff.NewService(documents),
		saleSvc,
		dashboard.NewService(saleSvc),
		metrics.NewRegistry(),
		cfg.CafeName,
	)

	limiter := middleware.NewLimiter()

	var handler http.Handler = srv.Handler()
	handler = middleware.AuthMiddleware(handler)
	handler = limiter.Middleware(handler)
	handler = logger.LoggingMiddleware(handler)
	handler = logger.RequestIDMiddleware(handler)

	return handler
}
