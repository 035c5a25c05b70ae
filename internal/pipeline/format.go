// Package pipeline maps raw extracted shots into the persisted record
// shape consumed by the datastore insert job.
package pipeline

import (
	"regexp"
	"strings"
	"time"

	"github.com/crimsonfrapp-beep/60fps-scraper/internal/models"
)

// Source identifies the origin site on every persisted record.
const Source = "60fps.design"

var trailingNumeralPattern = regexp.MustCompile(`\s*\d+\s*$`)

// FormatRecords maps shots into datastore records, applying the optional
// result-count limit. All records of one run share the same scraped_at
// value: the run's completion time. limit <= 0 means no limit.
func FormatRecords(shots []models.RawShot, limit int, completedAt time.Time) []models.Record {
	if limit > 0 && limit < len(shots) {
		shots = shots[:limit]
	}

	stamp := completedAt.UTC().Format(time.RFC3339)
	records := make([]models.Record, 0, len(shots))
	for _, shot := range shots {
		records = append(records, models.Record{
			Title:      CleanTitle(shot.Title),
			URL:        shot.URL,
			PreviewURL: shot.PreviewURL,
			Source:     Source,
			ScrapedAt:  stamp,
		})
	}
	return records
}

// CleanTitle strips a trailing numeral suffix and surrounding whitespace.
func CleanTitle(title string) string {
	return strings.TrimSpace(trailingNumeralPattern.ReplaceAllString(strings.TrimSpace(title), ""))
}
