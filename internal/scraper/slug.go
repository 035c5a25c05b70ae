package scraper

import (
	"regexp"
	"strings"
)

var (
	trailingDigitsPattern = regexp.MustCompile(`\s*\d+\s*$`)
	// trailingDigitRunsPattern eats every trailing digit/whitespace run
	// before hyphenation.
	trailingDigitRunsPattern = regexp.MustCompile(`[\s\d]+$`)
	// trailingSlugJunkPattern eats digit/hyphen runs that hyphenation can
	// leave at the end, so slug synthesis is a fixpoint: re-slugging a
	// slug changes nothing.
	trailingSlugJunkPattern = regexp.MustCompile(`[-\s\d]+$`)
	slugCharPattern         = regexp.MustCompile(`[^a-z0-9 -]+`)
	whitespaceRunPattern    = regexp.MustCompile(`\s+`)
	hyphenRunPattern        = regexp.MustCompile(`-{2,}`)
)

// Slugify converts a recovered title into a URL slug: lowercase, trailing
// digits stripped, non-alphanumeric characters removed, whitespace
// collapsed to single hyphens, hyphen runs collapsed, edges trimmed. The
// result never ends in a digit or hyphen, so
// Slugify(Slugify(s)) == Slugify(s) for every input.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = trailingDigitRunsPattern.ReplaceAllString(s, "")
	s = slugCharPattern.ReplaceAllString(s, "")
	s = whitespaceRunPattern.ReplaceAllString(s, "-")
	s = hyphenRunPattern.ReplaceAllString(s, "-")
	s = trailingSlugJunkPattern.ReplaceAllString(s, "")
	return strings.Trim(s, "-")
}

// stripTrailingDigits removes a trailing run of digits and surrounding
// whitespace from anchor-derived titles ("Demo Swipe 3" -> "Demo Swipe").
func stripTrailingDigits(text string) string {
	return strings.TrimSpace(trailingDigitsPattern.ReplaceAllString(strings.TrimSpace(text), ""))
}
