package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shaun/portfolio-api/internal/aggregator"
	"github.com/shaun/portfolio-api/internal/api"
	"github.com/shaun/portfolio-api/internal/collector"
	"github.com/shaun/portfolio-api/internal/config"
	"github.com/shaun/portfolio-api/internal/mailer"
	"github.com/shaun/portfolio-api/internal/ratelimit"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if !cfg.MailConfigured() {
		log.Printf("Warning: mail relay not configured; contact submissions will be rejected")
	}

	// Contact pipeline: 5 submissions per client per 10-minute window
	limiter := ratelimit.NewLimiter(5, 10*time.Minute)
	relay := mailer.NewSMTPMailer(mailer.SMTPConfig{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		To:   cfg.ToEmail,
		From: cfg.FromEmail,
	})

	// Aggregation pipeline
	source := collector.NewGitHubRepoSource(cfg.GitHubToken)
	agg := aggregator.NewAggregator(source, cfg.GitHubUsername, cfg.FeaturedRepos, cfg.ExternalRepos)

	// Initialize handler and routes
	handler := api.NewHandler(limiter, relay, agg, cfg)
	router := api.SetupRoutes(handler)

	// Start server
	addr := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	fmt.Printf("Starting API server on %s\n", addr)
	fmt.Printf("Serving repositories for: %s\n", cfg.GitHubUsername)

	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
