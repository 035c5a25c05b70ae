package scraper

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimsonfrapp-beep/60fps-scraper/internal/config"
	"github.com/crimsonfrapp-beep/60fps-scraper/internal/models"
)

func newTestScraper(loadGallery func(ctx context.Context) (string, error)) *Scraper {
	cfg := config.DefaultScrapeConfig()
	s := New(cfg, DefaultBrowserOptions(cfg.UserAgent), testLogger())
	s.loadGallery = loadGallery
	return s
}

func TestScrapeOrFallbackOnNavigationFailure(t *testing.T) {
	s := newTestScraper(func(ctx context.Context) (string, error) {
		return "", &models.NavigationError{URL: config.DefaultTargetURL, Err: errors.New("net::ERR_TIMED_OUT")}
	})

	shots := s.ScrapeOrFallback(context.Background())
	assert.Equal(t, FallbackShots(), shots)
}

func TestScrapeOrFallbackOnStructureFailure(t *testing.T) {
	s := newTestScraper(func(ctx context.Context) (string, error) {
		return "", &models.StructureError{Kind: models.StructureUnknownChange, PageTitle: "60fps"}
	})

	shots := s.ScrapeOrFallback(context.Background())
	assert.Equal(t, FallbackShots(), shots)
}

func TestScrapeOrFallbackOnEmptyExtraction(t *testing.T) {
	s := newTestScraper(func(ctx context.Context) (string, error) {
		return "<html><body><p>nothing here</p></body></html>", nil
	})

	shots := s.ScrapeOrFallback(context.Background())
	assert.Equal(t, FallbackShots(), shots)
}

func TestScrapePassesThroughExtractedShots(t *testing.T) {
	html := `
		<div class="shot-card">
			<a href="/shots/demo-swipe">Demo Swipe</a>
			<video><source src="https://video.gumlet.io/bucket1/abc12345/main.mp4"></video>
		</div>
	`
	s := newTestScraper(func(ctx context.Context) (string, error) {
		return html, nil
	})

	shots, err := s.Scrape(context.Background())
	require.NoError(t, err)
	require.Len(t, shots, 1)
	assert.Equal(t, "https://60fps.design/shots/demo-swipe?video=abc12345", shots[0].URL)
}

func TestFallbackShotsAreWellFormed(t *testing.T) {
	shots := FallbackShots()
	require.NotEmpty(t, shots)

	seen := make(map[string]bool)
	for _, shot := range shots {
		assert.NotEmpty(t, shot.URL)
		assert.NotEmpty(t, shot.PreviewURL)
		assert.NotEmpty(t, shot.Title)
		assert.False(t, seen[shot.URL], "duplicate fallback URL %s", shot.URL)
		seen[shot.URL] = true
	}
}
