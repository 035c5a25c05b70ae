// Package scraper implements the content-discovery and extraction engine:
// a headless browser session, content-ready detection over ranked selector
// candidates, a bounded "load more" loop, and heuristic per-video record
// extraction from the loaded DOM.
package scraper

import "regexp"

// ShotSelectors lists candidate selectors for shot content, ranked from
// direct permalink-pattern anchors down to broad class-name substring
// matches. The site's component framework exposes no stable public
// selector, so detection must survive markup churn.
var ShotSelectors = []string{
	"a[href^='/shots/']",
	"a[href*='/shots/']",
	"[class*='shot-card']",
	"[class*='shot_card']",
	"[class*='shot']",
	"[class*='card'] video",
	"[class*='grid'] a",
}

// LoadControlSelectors lists button-like candidates scanned for a visible
// "load more" affordance.
var LoadControlSelectors = []string{
	"button",
	"a[role='button']",
	"[role='button']",
	"[class*='load']",
	"[class*='more']",
	"[class*='pagination'] button",
}

// LoadControlKeywords gates load-control candidates by their visible text,
// matched case-insensitively.
var LoadControlKeywords = []string{"load", "more", "show", "view"}

// Permalink heuristics.
const (
	ShotPathSegment    = "/shots/"
	minPermalinkLength = 16 // rejects bare category links
	minAnchorTitleLen  = 6
)

var permalinkExcludes = []string{"filter", "watch"}

// Title heuristics. Headings are trusted within a length window; generic
// text elements are noisy and additionally require a motion-design keyword.
const (
	minHeadingTitleLen = 11
	maxHeadingTitleLen = 99
	minGenericTitleLen = 16
	maxGenericTitleLen = 79
)

// titleExcludeWords are site chrome that headings must not contain.
var titleExcludeWords = []string{"Shots", "Apps", "Filter", "Learn"}

var motionKeywords = []string{
	"Interaction", "Animation", "Swipe", "Gesture", "Transition",
	"Scroll", "Hover", "Drag", "Onboarding", "Loading", "Carousel",
	"Toggle", "Micro",
}

// gumletPattern recognizes the CDN media URL shape
// video.gumlet.io/<bucket>/<id>; the second capture is the media ID.
var gumletPattern = regexp.MustCompile(`video\.gumlet\.io/([A-Za-z0-9]+)/([A-Za-z0-9]+)`)

// errorTitleMarkers flag a site error page when found in the page title.
var errorTitleMarkers = []string{"error", "404", "not found"}

// Browser window size.
const (
	defaultWindowWidth  = 1366
	defaultWindowHeight = 900
)
