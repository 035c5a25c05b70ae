// Package main provides the CLI entry point for the gallery scraper. It
// runs one extraction, prints the formatted records as a JSON array on
// stdout, and in pipeline mode suppresses all diagnostics so stdout carries
// only the payload for the datastore insert job.
package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/crimsonfrapp-beep/60fps-scraper/internal/config"
	"github.com/crimsonfrapp-beep/60fps-scraper/internal/models"
	"github.com/crimsonfrapp-beep/60fps-scraper/internal/pipeline"
	"github.com/crimsonfrapp-beep/60fps-scraper/internal/scraper"
)

var (
	limitFlag    int
	pipelineFlag bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "scrape",
		Short:         "Extract shot records from the 60fps.design gallery",
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.Flags().IntVar(&limitFlag, "limit", 0, "maximum number of records to emit (0 = all)")
	rootCmd.Flags().BoolVar(&pipelineFlag, "pipeline", false, "suppress diagnostics so stdout carries only JSON")

	if err := rootCmd.Execute(); err != nil {
		_ = json.NewEncoder(os.Stderr).Encode(models.ErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.FromEnv()
	if limitFlag > 0 {
		cfg.Limit = limitFlag
	}
	pipelineMode := pipelineFlag || config.BoolEnv("SCRAPE_PIPELINE")
	logger := newLogger(pipelineMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scr := scraper.New(cfg, scraper.DefaultBrowserOptions(cfg.UserAgent), logger)
	shots := scr.ScrapeOrFallback(ctx)
	records := pipeline.FormatRecords(shots, cfg.Limit, time.Now())
	logger.Info("run finished", "records", len(records))

	return json.NewEncoder(os.Stdout).Encode(records)
}

// newLogger installs the diagnostic sink: stderr normally, discarded in
// pipeline mode.
func newLogger(pipelineMode bool) *slog.Logger {
	if pipelineMode {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
