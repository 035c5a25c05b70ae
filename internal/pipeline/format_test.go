package pipeline

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimsonfrapp-beep/60fps-scraper/internal/models"
)

func sampleShots(n int) []models.RawShot {
	shots := make([]models.RawShot, 0, n)
	for i := 1; i <= n; i++ {
		shots = append(shots, models.RawShot{
			URL:        fmt.Sprintf("https://60fps.design/shots/example-%d", i),
			PreviewURL: fmt.Sprintf("https://video.gumlet.io/bucket/vid%d/main.mp4", i),
			Title:      fmt.Sprintf("Example Interaction %d", i),
		})
	}
	return shots
}

func TestFormatRecordsAppliesLimit(t *testing.T) {
	shots := sampleShots(5)
	now := time.Now()

	limited := FormatRecords(shots, 2, now)
	require.Len(t, limited, 2)

	unlimited := FormatRecords(shots, 0, now)
	require.Len(t, unlimited, 5)

	// The limited run is a prefix of the unlimited one.
	assert.Equal(t, unlimited[:2], limited)

	oversized := FormatRecords(shots, 10, now)
	assert.Equal(t, unlimited, oversized)
}

func TestFormatRecordsSharesOneTimestamp(t *testing.T) {
	records := FormatRecords(sampleShots(3), 0, time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC))
	require.Len(t, records, 3)

	for _, r := range records {
		assert.Equal(t, "2024-06-01T12:30:00Z", r.ScrapedAt)
		assert.Equal(t, Source, r.Source)
	}
}

func TestFormatRecordsStripsTrailingNumerals(t *testing.T) {
	records := FormatRecords([]models.RawShot{
		{URL: "https://60fps.design/shots/a-long-example", PreviewURL: "https://cdn.example.com/a.mp4", Title: "Demo Swipe 3"},
	}, 0, time.Now())
	require.Len(t, records, 1)
	assert.Equal(t, "Demo Swipe", records[0].Title)
}

func TestFormatRecordsPreservesURLs(t *testing.T) {
	shots := sampleShots(2)
	records := FormatRecords(shots, 0, time.Now())
	require.Len(t, records, 2)
	for i := range records {
		assert.Equal(t, shots[i].URL, records[i].URL)
		assert.Equal(t, shots[i].PreviewURL, records[i].PreviewURL)
	}
}

func TestCleanTitle(t *testing.T) {
	assert.Equal(t, "Demo Swipe", CleanTitle("  Demo Swipe 12 "))
	assert.Equal(t, "Demo Swipe", CleanTitle("Demo Swipe"))
	assert.Equal(t, "", CleanTitle(" 7 "))
}
