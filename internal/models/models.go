// Package models defines the data structures exchanged between the
// extraction engine and its CLI/HTTP boundaries, plus the error types
// that classify run-level failures.
package models

import "fmt"

// RawShot is a single gallery entry as recovered by the extraction engine,
// prior to formatting. URL is the dedup key; emitted values always carry a
// non-empty URL and PreviewURL.
type RawShot struct {
	URL        string
	PreviewURL string
	Title      string
}

// Record is the persisted shape consumed by the datastore insert pipeline.
// ScrapedAt is shared by all records of a single run.
type Record struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	PreviewURL string `json:"preview_url"`
	Source     string `json:"source"`
	ScrapedAt  string `json:"scraped_at"`
}

// ErrorResponse is the JSON error shape emitted by the CLI (stderr) and the
// HTTP endpoint.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp,omitempty"`
}

// NavigationError indicates the browser could not reach or load the target
// page. It is terminal for the run and is not retried.
type NavigationError struct {
	URL string
	Err error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigation to %s failed: %v", e.URL, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// StructureErrorKind distinguishes a recognizable site error page from an
// unannounced markup change.
type StructureErrorKind int

const (
	StructureUnknownChange StructureErrorKind = iota
	StructureErrorPage
)

// StructureError indicates that no shot selector candidate matched the
// loaded DOM. Terminal for the run.
type StructureError struct {
	Kind      StructureErrorKind
	PageTitle string
}

func (e *StructureError) Error() string {
	if e.Kind == StructureErrorPage {
		return fmt.Sprintf("site returned an error page (title: %q)", e.PageTitle)
	}
	return fmt.Sprintf("no shot content found, page structure may have changed (title: %q)", e.PageTitle)
}
