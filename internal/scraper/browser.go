package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"

	"github.com/crimsonfrapp-beep/60fps-scraper/internal/models"
)

// Session owns a headless browser process and one isolated browsing
// context. The browser is acquired per run and released on every exit path.
type Session struct {
	opts              BrowserOptions
	navigationTimeout time.Duration
	settleDelay       time.Duration
	logger            *slog.Logger
}

func NewSession(opts BrowserOptions, navigationTimeout, settleDelay time.Duration, logger *slog.Logger) *Session {
	return &Session{
		opts:              opts,
		navigationTimeout: navigationTimeout,
		settleDelay:       settleDelay,
		logger:            logger,
	}
}

// Run acquires a browser, navigates to targetURL, and invokes fn with a
// live browser context once the initial DOM is parsed and the settle delay
// has elapsed. Navigation failures are terminal and not retried.
func (s *Session) Run(ctx context.Context, targetURL string, fn func(ctx context.Context) error) error {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, BuildChromeOptions(s.opts)...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx,
		chromedp.WithErrorf(func(format string, args ...interface{}) {
			s.logger.Debug("chromedp: " + fmt.Sprintf(format, args...))
		}),
	)
	defer cancelBrowser()

	navCtx, cancelNav := context.WithTimeout(browserCtx, s.navigationTimeout)
	defer cancelNav()

	s.logger.Debug("navigating", "url", targetURL)
	err := chromedp.Run(navCtx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			return emulation.SetDeviceMetricsOverride(
				int64(s.opts.WindowWidth), int64(s.opts.WindowHeight), 1, false,
			).Do(ctx)
		}),
		chromedp.Navigate(targetURL),
		// Wait for the parsed DOM only; the app keeps fetching after that,
		// which the settle delay absorbs.
		chromedp.WaitReady("body"),
		chromedp.Sleep(s.settleDelay),
	)
	if err != nil {
		return &models.NavigationError{URL: targetURL, Err: err}
	}

	return fn(browserCtx)
}

// CountElements returns the number of elements matching selector in the
// current DOM.
func CountElements(ctx context.Context, selector string) (int, error) {
	sel, err := json.Marshal(selector)
	if err != nil {
		return 0, err
	}
	var n int
	script := fmt.Sprintf(`document.querySelectorAll(%s).length`, sel)
	if err := chromedp.Run(ctx, chromedp.Evaluate(script, &n)); err != nil {
		return 0, fmt.Errorf("count %q: %w", selector, err)
	}
	return n, nil
}

// PageTitle returns the current document title.
func PageTitle(ctx context.Context) (string, error) {
	var title string
	if err := chromedp.Run(ctx, chromedp.Title(&title)); err != nil {
		return "", err
	}
	return title, nil
}

// CaptureHTML snapshots the full document for extraction.
func CaptureHTML(ctx context.Context) (string, error) {
	var html string
	if err := chromedp.Run(ctx, chromedp.OuterHTML("html", &html)); err != nil {
		return "", fmt.Errorf("capture document: %w", err)
	}
	return html, nil
}

// ClickLoadControl scans the load-control candidates for the first element
// that is visible and whose text mentions a load keyword, and clicks it.
// Reports whether a click happened.
func ClickLoadControl(ctx context.Context) (bool, error) {
	selectors, err := json.Marshal(LoadControlSelectors)
	if err != nil {
		return false, err
	}
	keywords, err := json.Marshal(LoadControlKeywords)
	if err != nil {
		return false, err
	}

	script := fmt.Sprintf(clickLoadControlScript, selectors, keywords)
	var clicked bool
	if err := chromedp.Run(ctx, chromedp.Evaluate(script, &clicked)); err != nil {
		return false, fmt.Errorf("click load control: %w", err)
	}
	return clicked, nil
}

const clickLoadControlScript = `(() => {
	const selectors = %s;
	const keywords = %s;
	for (const sel of selectors) {
		for (const el of document.querySelectorAll(sel)) {
			const style = window.getComputedStyle(el);
			if (style.display === 'none' || style.visibility === 'hidden') continue;
			if (el.offsetParent === null) continue;
			const text = (el.textContent || '').toLowerCase();
			if (keywords.some(k => text.includes(k))) {
				el.click();
				return true;
			}
		}
	}
	return false;
})()`
