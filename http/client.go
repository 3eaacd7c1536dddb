// Package http provides HTTP-based implementations of the linkdrop
// source adapters and the plain-HTTP Fetcher for static pages.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultTimeout bounds every outbound request. A slow upstream must not
// block the whole pipeline; callers treat a timeout like a no-data
// result.
const DefaultTimeout = 10 * time.Second

// DomainLimiter provides per-domain rate limiting for outbound requests
// using token buckets. Each domain gets its own limiter so concurrent
// analyses of different sites never throttle each other.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a new DomainLimiter with the specified
// requests-per-second limit. Each domain gets a burst of 1.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled while waiting.
func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.limiters[domain] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}

// Client is the shared outbound HTTP client for source adapters: bounded
// timeout, per-domain politeness limiting, and a JSON helper.
type Client struct {
	httpClient *http.Client
	limiter    *DomainLimiter
	userAgent  string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the request timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLimiter sets a per-domain rate limiter for outbound requests.
func WithLimiter(l *DomainLimiter) ClientOption {
	return func(c *Client) {
		c.limiter = l
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new Client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		userAgent:  "linkdrop/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a GET request with the client's timeout, rate limiting
// and headers applied. The caller owns the response body.
func (c *Client) Get(ctx context.Context, url string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, req.URL.Hostname()); err != nil {
			return nil, err
		}
	}

	return c.httpClient.Do(req)
}

// GetJSON performs a GET request and decodes a JSON body into out. It
// returns the response status code and headers so callers can read
// quota headers; a non-2xx status is returned without a decode error.
func (c *Client) GetJSON(ctx context.Context, url string, headers map[string]string, out any) (int, http.Header, error) {
	if headers == nil {
		headers = map[string]string{}
	}
	headers["Accept"] = "application/json"

	resp, err := c.Get(ctx, url, headers)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return resp.StatusCode, resp.Header, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, resp.Header, fmt.Errorf("decoding response from %s: %w", url, err)
	}

	return resp.StatusCode, resp.Header, nil
}
