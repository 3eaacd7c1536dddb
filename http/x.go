package http

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/linkdrop"
)

// DefaultXAPIURL is the base URL for X API v2.
const DefaultXAPIURL = "https://api.x.com/2"

// XQuotaResource is the quota-gate resource key for the X API. The free
// tier allows one tweet lookup per 15-minute window, so the persisted
// gate matters even for light use.
const XQuotaResource = "x-api"

// XDefaultQuota is the per-window request budget restored when a rate
// limit window rolls over.
const XDefaultQuota = 1

// Ensure XAdapter implements linkdrop.SourceAdapter at compile time.
var _ linkdrop.SourceAdapter = (*XAdapter)(nil)

// XAdapter fetches a post from the X API v2 with author expansion and
// public engagement metrics. Results are authoritative: the structured
// API is trusted over anything scraped from the page.
//
// The adapter reports quota headers from every response into the gate
// and marks the resource rate-limited on HTTP 429. Checking ShouldSkip
// before the call is the orchestrator's job.
type XAdapter struct {
	client  *Client
	bearer  string
	gate    linkdrop.QuotaGate
	baseURL string
}

// XOption configures an XAdapter.
type XOption func(*XAdapter)

// WithXBaseURL overrides the API base URL. Used in tests.
func WithXBaseURL(u string) XOption {
	return func(a *XAdapter) {
		a.baseURL = u
	}
}

// NewXAdapter creates an XAdapter. The bearer token may be empty, in
// which case Available reports false and Fetch returns no data. The gate
// may be nil (quota headers are then dropped).
func NewXAdapter(client *Client, bearer string, gate linkdrop.QuotaGate, opts ...XOption) *XAdapter {
	a := &XAdapter{client: client, bearer: bearer, gate: gate, baseURL: DefaultXAPIURL}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name identifies the adapter.
func (a *XAdapter) Name() string { return "x" }

// Available reports whether a bearer token is configured.
func (a *XAdapter) Available() bool { return a.bearer != "" }

type xResponse struct {
	Data struct {
		ID            string `json:"id"`
		Text          string `json:"text"`
		CreatedAt     string `json:"created_at"`
		PublicMetrics struct {
			LikeCount       int `json:"like_count"`
			ReplyCount      int `json:"reply_count"`
			RetweetCount    int `json:"retweet_count"`
			ImpressionCount int `json:"impression_count"`
		} `json:"public_metrics"`
	} `json:"data"`
	Includes struct {
		Users []struct {
			Name            string `json:"name"`
			Username        string `json:"username"`
			ProfileImageURL string `json:"profile_image_url"`
		} `json:"users"`
	} `json:"includes"`
}

// Fetch looks up the post by the status ID in the URL.
func (a *XAdapter) Fetch(ctx context.Context, rawURL string) (*linkdrop.SourceResult, error) {
	if !a.Available() {
		return nil, nil
	}
	statusID := xStatusID(rawURL)
	if statusID == "" {
		return nil, nil
	}

	endpoint := a.baseURL + "/tweets/" + statusID +
		"?expansions=author_id" +
		"&tweet.fields=" + url.QueryEscape("public_metrics,created_at") +
		"&user.fields=" + url.QueryEscape("name,username,profile_image_url")

	var body xResponse
	status, header, err := a.client.GetJSON(ctx, endpoint, map[string]string{
		"Authorization": "Bearer " + a.bearer,
	}, &body)
	if err != nil {
		return nil, err
	}

	a.recordQuota(ctx, status, header)

	if status != 200 || body.Data.ID == "" {
		return nil, nil
	}

	m := body.Data.PublicMetrics
	md := &linkdrop.Metadata{
		Domain:   linkdrop.ExtractDomain(rawURL),
		Content:  linkdrop.Ptr(body.Data.Text),
		Likes:    linkdrop.Ptr(m.LikeCount),
		Replies:  linkdrop.Ptr(m.ReplyCount),
		Retweets: linkdrop.Ptr(m.RetweetCount),
	}
	if m.ImpressionCount > 0 {
		md.Views = linkdrop.Ptr(m.ImpressionCount)
	}
	if body.Data.CreatedAt != "" {
		md.PublishedDate = linkdrop.Ptr(body.Data.CreatedAt)
	}
	if len(body.Includes.Users) > 0 {
		user := body.Includes.Users[0]
		if user.Username != "" {
			md.Username = linkdrop.Ptr(user.Username)
		}
		if user.Name != "" {
			md.DisplayName = linkdrop.Ptr(user.Name)
		}
		if user.ProfileImageURL != "" {
			md.ProfileImage = linkdrop.Ptr(user.ProfileImageURL)
		}
	}

	return &linkdrop.SourceResult{Metadata: md, Authoritative: true}, nil
}

// recordQuota persists rate-limit headers into the gate. On 429 the
// resource is marked rate-limited with the reset header when present.
func (a *XAdapter) recordQuota(ctx context.Context, status int, header map[string][]string) {
	if a.gate == nil || header == nil {
		return
	}

	var remaining *int
	if v := headerValue(header, "x-rate-limit-remaining"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			remaining = &n
		}
	}
	var resetUnix *int64
	if v := headerValue(header, "x-rate-limit-reset"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			resetUnix = &n
		}
	}

	if status == 429 {
		var resetAt *time.Time
		if resetUnix != nil {
			t := time.Unix(*resetUnix, 0)
			resetAt = &t
		}
		_ = a.gate.MarkRateLimited(ctx, XQuotaResource, resetAt)
		return
	}

	if remaining != nil || resetUnix != nil {
		_ = a.gate.UpdateFromResponse(ctx, XQuotaResource, remaining, resetUnix)
	}
}

func headerValue(header map[string][]string, key string) string {
	for k, vs := range header {
		if strings.EqualFold(k, key) && len(vs) > 0 {
			return vs[0]
		}
	}
	return ""
}

// xStatusID extracts the numeric status ID from x.com/twitter.com post
// URLs of the shape /<user>/status/<id>.
func xStatusID(rawURL string) string {
	u, err := url.Parse(linkdrop.NormalizeURL(rawURL))
	if err != nil {
		return ""
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, part := range parts {
		if (part == "status" || part == "statuses") && i+1 < len(parts) {
			id := parts[i+1]
			for _, r := range id {
				if r < '0' || r > '9' {
					return ""
				}
			}
			return id
		}
	}
	return ""
}
