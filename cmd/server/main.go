// Package main provides the HTTP endpoint for the gallery scraper. Every
// request gets its own browser session, so concurrent requests are isolated
// by construction.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/crimsonfrapp-beep/60fps-scraper/internal/config"
	"github.com/crimsonfrapp-beep/60fps-scraper/internal/models"
	"github.com/crimsonfrapp-beep/60fps-scraper/internal/pipeline"
	"github.com/crimsonfrapp-beep/60fps-scraper/internal/scraper"
)

// Request timeout bounds, milliseconds. The hosting environment imposes its
// own wall-clock cap on top of these.
const (
	defaultTimeoutMs = 120000
	maxTimeoutMs     = 240000
	minTimeoutMs     = 1000
)

// ScrapeHandler serves extraction runs over HTTP using the reduced
// (time-limited) engine configuration.
type ScrapeHandler struct {
	logger *slog.Logger
}

func NewScrapeHandler(logger *slog.Logger) *ScrapeHandler {
	return &ScrapeHandler{logger: logger}
}

// Handle runs one scrape per request and responds with a JSON array of
// formatted records.
func (h *ScrapeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		h.errorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	cfg := config.ReducedScrapeConfig()
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			h.errorResponse(w, http.StatusBadRequest, "Invalid \"limit\" query parameter")
			return
		}
		cfg.Limit = limit
	}

	timeoutMs := defaultTimeoutMs
	if v := r.URL.Query().Get("timeout"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			timeoutMs = parsed
		}
	}
	if timeoutMs > maxTimeoutMs {
		timeoutMs = maxTimeoutMs
	}
	if timeoutMs < minTimeoutMs {
		timeoutMs = minTimeoutMs
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	h.logger.Info("request received", "method", r.Method, "limit", cfg.Limit, "timeout_ms", timeoutMs)
	start := time.Now()

	scr := scraper.New(cfg, scraper.ReducedBrowserOptions(cfg.UserAgent), h.logger)
	shots := scr.ScrapeOrFallback(ctx)
	records := pipeline.FormatRecords(shots, cfg.Limit, time.Now())

	h.logger.Info("request served", "records", len(records), "duration_ms", time.Since(start).Milliseconds())

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(records); err != nil {
		h.logger.Warn("response encoding failed", "err", err)
	}
}

// errorResponse writes the JSON error shape with a timestamp.
func (h *ScrapeHandler) errorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{
		Success:   false,
		Error:     message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	handler := NewScrapeHandler(logger)
	http.HandleFunc("/", handler.Handle)
	http.HandleFunc("/healthz", healthz)

	logger.Info("starting server", "port", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
}
