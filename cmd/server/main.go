package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/devpulse/devpulse/internal/analysis"
	"github.com/devpulse/devpulse/internal/api"
	"github.com/devpulse/devpulse/internal/config"
	"github.com/devpulse/devpulse/internal/db"
	"github.com/devpulse/devpulse/internal/github"
	"github.com/devpulse/devpulse/internal/insights"
	"github.com/devpulse/devpulse/internal/snapshot"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Snapshot persistence is optional; without DATABASE_URL every request
	// goes to the GitHub API (through the in-memory cache).
	var database *db.Postgres
	var snapshots *snapshot.Store
	if cfg.DatabaseURL != "" {
		database, err = db.NewPostgres(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		// NOTE: database.Close() called explicitly in shutdown sequence below — no defer

		if err := db.RunMigrations(ctx, database.Pool()); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}

		snapshots = snapshot.NewStore(database.Pool())
		log.Println("Snapshot store initialized")
	} else {
		log.Println("DATABASE_URL not set, snapshot persistence disabled")
	}

	// GitHub client with an in-memory dataset cache
	cache := github.NewDatasetCache(cfg.CacheTTL)
	client := github.NewClient(github.ClientConfig{
		BaseURL:      cfg.GitHubAPI,
		Token:        cfg.GitHubToken,
		MaxEvents:    cfg.MaxEvents,
		LookbackDays: cfg.LookbackDays,
		Cache:        cache,
	})

	// Analysis pipeline and insight composer
	analyzer := analysis.New(analysis.Config{
		MaxEvents:    cfg.MaxEvents,
		LookbackDays: cfg.LookbackDays,
	})
	composer := insights.NewComposer()

	analyzeHandler := api.NewAnalyzeHandler(client, analyzer, composer, snapshots, cfg.SnapshotTTL)

	// Create router
	routerCfg := &api.RouterConfig{Analyze: analyzeHandler}
	if database != nil {
		routerCfg.Database = database
	}
	routerResult := api.NewRouter(routerCfg)

	// Create server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      routerResult.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // Analyze fans out to several GitHub calls
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Stop rate limiter cleanup goroutines
	routerResult.RateLimiters.Stop()

	// Cancel context to stop all services
	cancel()

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if database != nil {
		log.Println("Closing database connection...")
		database.Close()
	}

	log.Println("Server exited")
}
