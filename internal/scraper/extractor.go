package scraper

import (
	"fmt"
	"html"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"

	"github.com/crimsonfrapp-beep/60fps-scraper/internal/models"
)

// ShotExtractor recovers shot records from a loaded gallery DOM. The page
// exposes no stable data attribute for this, so every field comes from
// heuristic search anchored at the video elements.
type ShotExtractor struct {
	baseURL   string
	depth     int
	sanitizer *bluemonday.Policy
	logger    *slog.Logger
}

// NewShotExtractor creates an extractor composing absolute URLs against
// baseURL. depth bounds the ancestor walk per video element; it caps
// worst-case work, nothing more.
func NewShotExtractor(baseURL string, depth int, logger *slog.Logger) *ShotExtractor {
	return &ShotExtractor{
		baseURL:   strings.TrimRight(baseURL, "/"),
		depth:     depth,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger,
	}
}

// ExtractShots walks every video element in document order, recovers a
// permalink, preview URL, and title for each, and deduplicates by URL.
// Videos that yield no usable record are skipped silently; that is an
// expected, frequent outcome of heuristic matching.
func (e *ShotExtractor) ExtractShots(pageHTML string) ([]models.RawShot, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, fmt.Errorf("parse gallery document: %w", err)
	}

	var shots []models.RawShot
	doc.Find("video").Each(func(i int, video *goquery.Selection) {
		shot, ok := e.extractShot(video, i+1)
		if !ok {
			e.logger.Debug("skipping video without usable record", "position", i+1)
			return
		}
		shots = append(shots, shot)
	})

	return DedupeShots(shots), nil
}

// extractShot processes a single video element. position is 1-based among
// all processed video elements and feeds the title placeholder.
func (e *ShotExtractor) extractShot(video *goquery.Selection, position int) (models.RawShot, bool) {
	preview := resolvePreviewURL(video)
	if preview == "" {
		return models.RawShot{}, false
	}
	videoID := gumletVideoID(preview)

	var title, permalink string
	node := video
	for level := 0; level < e.depth; level++ {
		node = node.Parent()
		if node.Length() == 0 {
			break
		}
		if title == "" {
			title = findTitleCandidate(node)
		}
		link, linkText := findPermalinkCandidate(node)
		if link != "" {
			permalink = link
			if title == "" && utf8.RuneCountInString(strings.TrimSpace(linkText)) >= minAnchorTitleLen {
				title = stripTrailingDigits(linkText)
			}
			break
		}
	}

	var shotURL string
	switch {
	case permalink != "":
		shotURL = e.baseURL + permalink
		if videoID != "" {
			shotURL += "?video=" + videoID
		}
	case videoID != "":
		// No permalink anywhere in the ancestor chain; synthesize a slug.
		slug := Slugify(title)
		if slug == "" {
			slug = "shot-" + videoID[:min(8, len(videoID))]
		}
		shotURL = e.baseURL + ShotPathSegment + slug + "?video=" + videoID
	default:
		return models.RawShot{}, false
	}

	if title == "" {
		title = fmt.Sprintf("Video %d", position)
	} else {
		title = strings.TrimSpace(html.UnescapeString(e.sanitizer.Sanitize(title)))
	}

	return models.RawShot{URL: shotURL, PreviewURL: preview, Title: title}, true
}

// resolvePreviewURL resolves the playable preview asset: a nested source
// element's src, then the video's own src, then a data-src attribute.
func resolvePreviewURL(video *goquery.Selection) string {
	if src, ok := video.Find("source[src]").First().Attr("src"); ok && strings.TrimSpace(src) != "" {
		return strings.TrimSpace(src)
	}
	if src, ok := video.Attr("src"); ok && strings.TrimSpace(src) != "" {
		return strings.TrimSpace(src)
	}
	if src, ok := video.Attr("data-src"); ok && strings.TrimSpace(src) != "" {
		return strings.TrimSpace(src)
	}
	return ""
}

// gumletVideoID captures the media ID from a recognized CDN preview URL,
// or returns "" when the URL has another shape.
func gumletVideoID(previewURL string) string {
	m := gumletPattern.FindStringSubmatch(previewURL)
	if len(m) < 3 {
		return ""
	}
	return m[2]
}

// findTitleCandidate scans one ancestor level for a display title. Headings
// win within their length window unless they carry site chrome; generic
// text elements additionally need a motion-design keyword, otherwise they
// would collect unrelated copy.
func findTitleCandidate(node *goquery.Selection) string {
	headings := selectionsOf(node.Find("h1, h2, h3, h4, h5, h6"))
	if h, ok := FindFirst(headings, func(s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		length := utf8.RuneCountInString(text)
		return length >= minHeadingTitleLen &&
			length <= maxHeadingTitleLen &&
			!containsAnyFold(text, titleExcludeWords)
	}); ok {
		return strings.TrimSpace(h.Text())
	}

	generic := selectionsOf(node.Find("p, span, div"))
	if g, ok := FindFirst(generic, func(s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		length := utf8.RuneCountInString(text)
		return length >= minGenericTitleLen &&
			length <= maxGenericTitleLen &&
			containsAnyFold(text, motionKeywords)
	}); ok {
		return strings.TrimSpace(g.Text())
	}

	return ""
}

// findPermalinkCandidate scans one ancestor level for a shot permalink and
// returns the normalized href plus the anchor's own text.
func findPermalinkCandidate(node *goquery.Selection) (string, string) {
	anchors := selectionsOf(node.Find("a[href]"))
	a, ok := FindFirst(anchors, func(s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		return isShotPermalink(href)
	})
	if !ok {
		return "", ""
	}
	href, _ := a.Attr("href")
	return normalizePermalink(href), a.Text()
}

func isShotPermalink(href string) bool {
	lower := strings.ToLower(href)
	if !strings.Contains(lower, ShotPathSegment) {
		return false
	}
	for _, word := range permalinkExcludes {
		if strings.Contains(lower, word) {
			return false
		}
	}
	return len(href) >= minPermalinkLength
}

func normalizePermalink(href string) string {
	href = strings.TrimPrefix(href, "./")
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return href
}

// DedupeShots keeps the first occurrence of each URL, preserving input
// order.
func DedupeShots(shots []models.RawShot) []models.RawShot {
	seen := make(map[string]bool, len(shots))
	out := make([]models.RawShot, 0, len(shots))
	for _, shot := range shots {
		if seen[shot.URL] {
			continue
		}
		seen[shot.URL] = true
		out = append(out, shot)
	}
	return out
}

// selectionsOf splits a selection into its individual elements so they can
// be scanned as an explicit priority list.
func selectionsOf(sel *goquery.Selection) []*goquery.Selection {
	out := make([]*goquery.Selection, 0, sel.Length())
	sel.Each(func(i int, s *goquery.Selection) {
		out = append(out, s)
	})
	return out
}

func containsAnyFold(text string, words []string) bool {
	lower := strings.ToLower(text)
	_, found := FindFirst(words, func(w string) bool {
		return strings.Contains(lower, strings.ToLower(w))
	})
	return found
}
