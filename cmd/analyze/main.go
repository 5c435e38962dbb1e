// Command analyze runs the full pipeline for one GitHub username and
// prints the combined document (dataset, patterns, insights) to stdout.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/devpulse/devpulse/internal/analysis"
	"github.com/devpulse/devpulse/internal/config"
	"github.com/devpulse/devpulse/internal/github"
	"github.com/devpulse/devpulse/internal/insights"
)

func main() {
	var timeout time.Duration
	flag.DurationVar(&timeout, "timeout", 2*time.Minute, "overall fetch timeout")
	flag.Parse()

	username := flag.Arg(0)
	if username == "" {
		fmt.Fprintln(os.Stderr, "usage: analyze [-timeout 2m] <github-username>")
		os.Exit(2)
	}
	if !github.ValidUsername(username) {
		log.Fatalf("Invalid GitHub username: %q", username)
	}

	// Load .env file if it exists
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client := github.NewClient(github.ClientConfig{
		BaseURL:      cfg.GitHubAPI,
		Token:        cfg.GitHubToken,
		MaxEvents:    cfg.MaxEvents,
		LookbackDays: cfg.LookbackDays,
	})

	log.Printf("Fetching activity for %s...", username)
	dataset, err := client.FetchUserActivity(ctx, username)
	if err != nil {
		log.Fatalf("Failed to fetch activity: %v", err)
	}
	log.Printf("Fetched %d events, %d repositories", len(dataset.Events), len(dataset.Repositories))

	analyzer := analysis.New(analysis.Config{
		MaxEvents:    cfg.MaxEvents,
		LookbackDays: cfg.LookbackDays,
	})
	patterns, err := analyzer.Analyze(dataset)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	report := insights.NewComposer().Generate(patterns, dataset)

	out := map[string]interface{}{
		"success":  true,
		"data":     dataset,
		"patterns": patterns,
		"insights": report,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}
}
