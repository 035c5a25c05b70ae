package scraper

import (
	"context"
	"log/slog"
	"strings"

	"github.com/crimsonfrapp-beep/60fps-scraper/internal/models"
)

// CountFunc counts elements matching a selector in the live DOM.
type CountFunc func(ctx context.Context, selector string) (int, error)

// TitleFunc returns the current page title.
type TitleFunc func(ctx context.Context) (string, error)

// DetectResult names the selector that identifies shot content and how many
// elements it matched at detection time.
type DetectResult struct {
	Selector string
	Count    int
}

// FindFirst returns the first item satisfying pred, keeping selection order
// an explicit priority list.
func FindFirst[T any](items []T, pred func(T) bool) (T, bool) {
	for _, item := range items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// DetectShotSelector probes the candidates in priority order and returns
// the first that matches at least one element. When every candidate yields
// zero, the page title decides between a site error page and an unknown
// structure change; both are terminal.
func DetectShotSelector(ctx context.Context, count CountFunc, title TitleFunc, candidates []string, logger *slog.Logger) (DetectResult, error) {
	for _, selector := range candidates {
		n, err := count(ctx, selector)
		if err != nil {
			logger.Warn("selector probe failed", "selector", selector, "err", err)
			continue
		}
		if n > 0 {
			logger.Debug("shot content detected", "selector", selector, "count", n)
			return DetectResult{Selector: selector, Count: n}, nil
		}
	}

	pageTitle, err := title(ctx)
	if err != nil {
		logger.Warn("page title probe failed", "err", err)
	}
	if isErrorPageTitle(pageTitle) {
		return DetectResult{}, &models.StructureError{Kind: models.StructureErrorPage, PageTitle: pageTitle}
	}
	return DetectResult{}, &models.StructureError{Kind: models.StructureUnknownChange, PageTitle: pageTitle}
}

func isErrorPageTitle(title string) bool {
	lower := strings.ToLower(title)
	_, found := FindFirst(errorTitleMarkers, func(marker string) bool {
		return strings.Contains(lower, marker)
	})
	return found
}
