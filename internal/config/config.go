// Package config holds the tunable parameters of a scraping run and their
// environment overrides.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Site defaults.
const (
	DefaultTargetURL = "https://60fps.design/shots"
	DefaultBaseURL   = "https://60fps.design"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// ScrapeConfig carries every knob of a single scraping run.
type ScrapeConfig struct {
	TargetURL string
	BaseURL   string
	UserAgent string

	// NavigationTimeout bounds the initial page load only; the target is a
	// client-rendered app, so SettleDelay covers rendering after the DOM
	// is parsed.
	NavigationTimeout time.Duration
	SettleDelay       time.Duration
	ClickSettleDelay  time.Duration

	MaxLoadAttempts int
	MinLoadAttempts int
	AncestorDepth   int

	// Limit caps the number of formatted records. 0 means no limit.
	Limit int
}

// DefaultScrapeConfig returns the full-budget configuration used by the CLI.
func DefaultScrapeConfig() ScrapeConfig {
	return ScrapeConfig{
		TargetURL:         DefaultTargetURL,
		BaseURL:           DefaultBaseURL,
		UserAgent:         DefaultUserAgent,
		NavigationTimeout: 30 * time.Second,
		SettleDelay:       3 * time.Second,
		ClickSettleDelay:  2 * time.Second,
		MaxLoadAttempts:   20,
		MinLoadAttempts:   3,
		AncestorDepth:     8,
	}
}

// ReducedScrapeConfig returns the tightened configuration for environments
// with a strict wall-clock limit, such as the HTTP endpoint.
func ReducedScrapeConfig() ScrapeConfig {
	cfg := DefaultScrapeConfig()
	cfg.NavigationTimeout = 15 * time.Second
	cfg.SettleDelay = 1500 * time.Millisecond
	cfg.ClickSettleDelay = time.Second
	cfg.MaxLoadAttempts = 5
	cfg.AncestorDepth = 6
	return cfg
}

// FromEnv returns the default config with environment overrides applied.
// A .env file is honored when present.
func FromEnv() ScrapeConfig {
	_ = godotenv.Load()

	cfg := DefaultScrapeConfig()
	if v := os.Getenv("SCRAPE_TARGET_URL"); v != "" {
		cfg.TargetURL = v
	}
	if v := os.Getenv("SCRAPE_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("SCRAPE_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if n, ok := intEnv("SCRAPE_LIMIT"); ok {
		cfg.Limit = n
	}
	if n, ok := intEnv("SCRAPE_MAX_LOAD_ATTEMPTS"); ok {
		cfg.MaxLoadAttempts = n
	}
	return cfg
}

// BoolEnv reports whether the named variable is set to a truthy value.
func BoolEnv(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}

func intEnv(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
