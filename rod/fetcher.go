// Package rod provides a browser-automation Fetcher for pages that only
// render their metadata client-side.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/fwojciec/linkdrop"
)

// DefaultStableWait is how long the DOM must stay unchanged before the
// page is considered rendered.
const DefaultStableWait = 300 * time.Millisecond

// Ensure Fetcher implements linkdrop.Fetcher at compile time.
var _ linkdrop.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using headless Chrome. Unlike a plain
// HTTP fetch it executes the page's JavaScript, so single-page apps and
// script-injected Open Graph tags come back populated.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser    *rod.Browser
	launcher   *launcher.Launcher
	stableWait time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithStableWait sets how long the DOM must stay unchanged before the
// rendered HTML is captured.
func WithStableWait(d time.Duration) Option {
	return func(f *Fetcher) {
		f.stableWait = d
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome
// browser. Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f := &Fetcher{
		browser:    browser,
		launcher:   l,
		stableWait: DefaultStableWait,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}
	// Let client-side rendering settle. WaitLoad fires on the document
	// load event, which precedes script-injected content.
	if err := page.WaitDOMStable(f.stableWait, 0); err != nil {
		return "", err
	}

	return page.HTML()
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
