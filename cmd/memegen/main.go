// Package main is the entry point for the memegen CLI.
// It runs the meme pipeline once: fetch a random quote, split it into
// top and bottom headings, render a meme, and write it to disk.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/google/uuid"

	"github.com/kdubovikov/testing-workshop/internal/config"
	"github.com/kdubovikov/testing-workshop/internal/meme"
	"github.com/kdubovikov/testing-workshop/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(os.Stdout, cfg.App.LogLevel).With("run_id", uuid.NewString())

	fetcher := meme.NewZenQuotesFetcher(
		&http.Client{Timeout: cfg.Quote.Timeout},
		cfg.Quote.APIURL,
	)
	renderer := meme.NewAPIMemeRenderer(
		&http.Client{Timeout: cfg.Meme.Timeout},
		cfg.Meme.APIURL,
		nil, // time-seeded template choice
	)
	writer := meme.NewFileWriter(cfg.Meme.OutputPath)

	pipeline := meme.NewPipeline(fetcher, renderer, writer, log)

	ctx := context.Background()
	if err := pipeline.Run(ctx); err != nil {
		log.Error("meme pipeline failed", "error", err.Error())
		return err
	}

	log.Info("meme written", "path", cfg.Meme.OutputPath)
	return nil
}
