package http

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/linkdrop"
)

// DefaultGitHubAPIURL is the base URL for the GitHub REST API.
const DefaultGitHubAPIURL = "https://api.github.com"

// Ensure GitHubAdapter implements linkdrop.SourceAdapter at compile time.
var _ linkdrop.SourceAdapter = (*GitHubAdapter)(nil)

// GitHubAdapter fetches repository metadata (stars, forks, language,
// description) from GitHub's public repos API. A token is optional; the
// unauthenticated quota is enough for interactive use.
type GitHubAdapter struct {
	client  *Client
	token   string
	baseURL string
}

// GitHubOption configures a GitHubAdapter.
type GitHubOption func(*GitHubAdapter)

// WithGitHubBaseURL overrides the API base URL. Used in tests.
func WithGitHubBaseURL(u string) GitHubOption {
	return func(a *GitHubAdapter) {
		a.baseURL = u
	}
}

// WithGitHubToken sets an access token for a higher rate limit.
func WithGitHubToken(token string) GitHubOption {
	return func(a *GitHubAdapter) {
		a.token = token
	}
}

// NewGitHubAdapter creates a GitHubAdapter over the shared client.
func NewGitHubAdapter(client *Client, opts ...GitHubOption) *GitHubAdapter {
	a := &GitHubAdapter{client: client, baseURL: DefaultGitHubAPIURL}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name identifies the adapter.
func (a *GitHubAdapter) Name() string { return "github" }

// Available always reports true; the public API works without a token.
func (a *GitHubAdapter) Available() bool { return true }

type githubRepoResponse struct {
	FullName        string   `json:"full_name"`
	Description     string   `json:"description"`
	Language        string   `json:"language"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	OpenIssuesCount int      `json:"open_issues_count"`
	Topics          []string `json:"topics"`
	Owner           struct {
		Login     string `json:"login"`
		AvatarURL string `json:"avatar_url"`
	} `json:"owner"`
}

// Fetch looks up the repository named in the URL path.
func (a *GitHubAdapter) Fetch(ctx context.Context, rawURL string) (*linkdrop.SourceResult, error) {
	owner, repo := githubRepoPath(rawURL)
	if owner == "" || repo == "" {
		return nil, nil
	}

	headers := map[string]string{"X-GitHub-Api-Version": "2022-11-28"}
	if a.token != "" {
		headers["Authorization"] = "Bearer " + a.token
	}

	var body githubRepoResponse
	status, _, err := a.client.GetJSON(ctx, a.baseURL+"/repos/"+owner+"/"+repo, headers, &body)
	if err != nil {
		return nil, err
	}
	if status != 200 {
		return nil, nil
	}

	md := &linkdrop.Metadata{
		Domain: linkdrop.ExtractDomain(rawURL),
		Stars:  linkdrop.Ptr(body.StargazersCount),
		Forks:  linkdrop.Ptr(body.ForksCount),
	}
	if body.FullName != "" {
		md.Title = linkdrop.Ptr(body.FullName)
	}
	// Overwrite the scraped description only when the host supplied one.
	if body.Description != "" {
		md.Description = linkdrop.Ptr(body.Description)
	}
	if body.Owner.Login != "" {
		md.Username = linkdrop.Ptr(body.Owner.Login)
		md.Author = linkdrop.Ptr(body.Owner.Login)
	}
	if body.Owner.AvatarURL != "" {
		md.ProfileImage = linkdrop.Ptr(body.Owner.AvatarURL)
	}

	platform := map[string]any{"openIssues": body.OpenIssuesCount}
	if body.Language != "" {
		platform["language"] = body.Language
	}
	if len(body.Topics) > 0 {
		topics := make([]any, len(body.Topics))
		for i, topic := range body.Topics {
			topics[i] = topic
		}
		platform["topics"] = topics
	}
	md.ExtraData = map[string]any{"platform": platform}

	return &linkdrop.SourceResult{Metadata: md, Authoritative: true}, nil
}

// githubRepoPath extracts owner and repository from a github.com URL.
// Paths beyond /owner/repo (issues, pulls, blobs) still resolve to the
// repository itself.
func githubRepoPath(rawURL string) (owner, repo string) {
	u, err := url.Parse(linkdrop.NormalizeURL(rawURL))
	if err != nil {
		return "", ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if host != "github.com" {
		return "", ""
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", ""
	}
	// Non-repo top-level paths.
	switch parts[0] {
	case "orgs", "topics", "collections", "settings", "marketplace", "sponsors":
		return "", ""
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git")
}
