package scraper

import (
	"context"
	"log/slog"

	"github.com/crimsonfrapp-beep/60fps-scraper/internal/config"
	"github.com/crimsonfrapp-beep/60fps-scraper/internal/models"
)

// Scraper wires the session manager, content-ready detector, incremental
// loader, and record extractor into a single sequential run. Each run owns
// its own browser; nothing is shared between runs.
type Scraper struct {
	cfg       config.ScrapeConfig
	session   *Session
	extractor *ShotExtractor
	logger    *slog.Logger

	// loadGallery is replaced in tests.
	loadGallery func(ctx context.Context) (string, error)
}

// New builds a scraper from a run configuration and a browser profile.
func New(cfg config.ScrapeConfig, opts BrowserOptions, logger *slog.Logger) *Scraper {
	s := &Scraper{
		cfg:       cfg,
		session:   NewSession(opts, cfg.NavigationTimeout, cfg.SettleDelay, logger),
		extractor: NewShotExtractor(cfg.BaseURL, cfg.AncestorDepth, logger),
		logger:    logger,
	}
	s.loadGallery = s.collectGalleryHTML
	return s
}

// Scrape runs the full pipeline and returns deduplicated raw shots.
// Navigation and structure failures are terminal; the caller decides
// whether to substitute fallback data.
func (s *Scraper) Scrape(ctx context.Context) ([]models.RawShot, error) {
	html, err := s.loadGallery(ctx)
	if err != nil {
		return nil, err
	}
	shots, err := s.extractor.ExtractShots(html)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("extraction finished", "shots", len(shots))
	return shots, nil
}

// ScrapeOrFallback never fails: any run-level error, and an empty
// extraction, are replaced with the fixed example set so the caller always
// receives a well-formed, non-empty list.
func (s *Scraper) ScrapeOrFallback(ctx context.Context) []models.RawShot {
	shots, err := s.Scrape(ctx)
	if err != nil {
		s.logger.Warn("scrape failed, serving fallback records", "err", err)
		return FallbackShots()
	}
	if len(shots) == 0 {
		s.logger.Warn("scrape produced no records, serving fallback records")
		return FallbackShots()
	}
	return shots
}

// collectGalleryHTML performs the browser-bound stages: navigate, detect
// shot content, drive the load loop, and snapshot the document.
func (s *Scraper) collectGalleryHTML(ctx context.Context) (string, error) {
	var html string
	err := s.session.Run(ctx, s.cfg.TargetURL, func(ctx context.Context) error {
		detected, err := DetectShotSelector(ctx, CountElements, PageTitle, ShotSelectors, s.logger)
		if err != nil {
			return err
		}

		loadCfg := LoadConfig{
			MaxAttempts:      s.cfg.MaxLoadAttempts,
			MinAttempts:      s.cfg.MinLoadAttempts,
			ClickSettleDelay: s.cfg.ClickSettleDelay,
		}
		total, err := LoadAll(ctx, ClickLoadControl, CountElements, detected.Selector, detected.Count, loadCfg, s.logger)
		if err != nil {
			return err
		}
		s.logger.Debug("gallery loaded", "selector", detected.Selector, "elements", total)

		html, err = CaptureHTML(ctx)
		return err
	})
	return html, err
}
