// Package scraper provides browser configuration profiles for Chrome
// automation.
package scraper

import (
	"github.com/chromedp/chromedp"
)

// BrowserOptions contains configuration for browser automation.
type BrowserOptions struct {
	Reduced      bool
	BlockImages  bool
	BlockFonts   bool
	WindowWidth  int
	WindowHeight int
	UserAgent    string
}

// DefaultBrowserOptions returns the full-fidelity profile used by the CLI.
func DefaultBrowserOptions(userAgent string) BrowserOptions {
	return BrowserOptions{
		WindowWidth:  defaultWindowWidth,
		WindowHeight: defaultWindowHeight,
		UserAgent:    userAgent,
	}
}

// ReducedBrowserOptions returns a stripped-down profile for time-limited
// environments. JavaScript stays enabled, the gallery cannot render
// without it.
func ReducedBrowserOptions(userAgent string) BrowserOptions {
	return BrowserOptions{
		Reduced:      true,
		BlockImages:  true,
		BlockFonts:   true,
		WindowWidth:  defaultWindowWidth,
		WindowHeight: defaultWindowHeight,
		UserAgent:    userAgent,
	}
}

// BuildChromeOptions creates exec allocator options based on BrowserOptions.
func BuildChromeOptions(opts BrowserOptions) []chromedp.ExecAllocatorOption {
	chromeOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", "new"),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.WindowSize(opts.WindowWidth, opts.WindowHeight),
		// Stealth flags; the target discourages automated traffic.
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("exclude-switches", "enable-automation"),
		chromedp.Flag("disable-infobars", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-breakpad", true),
		chromedp.Flag("disable-component-update", true),
		chromedp.Flag("disable-domain-reliability", true),
		chromedp.Flag("disable-hang-monitor", true),
		chromedp.Flag("disable-popup-blocking", true),
		chromedp.Flag("disable-renderer-backgrounding", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("force-color-profile", "srgb"),
		chromedp.Flag("metrics-recording-only", true),
		chromedp.Flag("password-store", "basic"),
		chromedp.Flag("use-mock-keychain", true),
	)

	if opts.UserAgent != "" {
		chromeOpts = append(chromeOpts, chromedp.UserAgent(opts.UserAgent))
	}

	if opts.Reduced {
		if opts.BlockImages {
			chromeOpts = append(chromeOpts, chromedp.Flag("blink-settings", "imagesEnabled=false"))
		}
		chromeOpts = append(chromeOpts,
			chromedp.Flag("disable-plugins", true),
			chromedp.Flag("disable-extensions", true),
		)
	}

	return chromeOpts
}
