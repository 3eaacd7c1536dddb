package http_test

import (
	"context"
	"net/http/httptest"
	"testing"

	nethttp "net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/linkdrop"
	linkhttp "github.com/fwojciec/linkdrop/http"
)

func TestGitHubAdapter_Fetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/repos/owner/repo", r.URL.Path)
		assert.Equal(t, "2022-11-28", r.Header.Get("X-GitHub-Api-Version"))
		_, _ = w.Write([]byte(`{
			"full_name": "owner/repo",
			"description": "a useful library",
			"language": "Go",
			"stargazers_count": 1200,
			"forks_count": 34,
			"open_issues_count": 7,
			"topics": ["golang", "parsing"],
			"owner": {"login": "owner", "avatar_url": "https://avatars.example/owner.png"}
		}`))
	}))
	defer srv.Close()

	adapter := linkhttp.NewGitHubAdapter(linkhttp.NewClient(), linkhttp.WithGitHubBaseURL(srv.URL))
	result, err := adapter.Fetch(context.Background(), "https://github.com/owner/repo")

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Authoritative)

	md := result.Metadata
	assert.Equal(t, "owner/repo", linkdrop.GetString(md.Title))
	assert.Equal(t, "a useful library", linkdrop.GetString(md.Description))
	assert.Equal(t, "owner", linkdrop.GetString(md.Author))
	assert.Equal(t, "https://avatars.example/owner.png", linkdrop.GetString(md.ProfileImage))
	require.NotNil(t, md.Stars)
	assert.Equal(t, 1200, *md.Stars)
	require.NotNil(t, md.Forks)
	assert.Equal(t, 34, *md.Forks)

	platform, ok := md.ExtraData["platform"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Go", platform["language"])
	assert.Equal(t, 7, platform["openIssues"])
}

func TestGitHubAdapter_Fetch_EmptyDescriptionStaysAbsent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		_, _ = w.Write([]byte(`{"full_name": "owner/repo", "description": "", "owner": {"login": "owner"}}`))
	}))
	defer srv.Close()

	adapter := linkhttp.NewGitHubAdapter(linkhttp.NewClient(), linkhttp.WithGitHubBaseURL(srv.URL))
	result, err := adapter.Fetch(context.Background(), "https://github.com/owner/repo")

	require.NoError(t, err)
	require.NotNil(t, result)
	// An empty upstream description must not clear a scraped one later in
	// the merge.
	assert.Nil(t, result.Metadata.Description)
}

func TestGitHubAdapter_Fetch_RepoGone(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusNotFound)
	}))
	defer srv.Close()

	adapter := linkhttp.NewGitHubAdapter(linkhttp.NewClient(), linkhttp.WithGitHubBaseURL(srv.URL))
	result, err := adapter.Fetch(context.Background(), "https://github.com/owner/gone")

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestGitHubRepoPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url       string
		wantOwner string
		wantRepo  string
	}{
		{"https://github.com/owner/repo", "owner", "repo"},
		{"https://github.com/owner/repo/issues/42", "owner", "repo"},
		{"https://github.com/owner/repo.git", "owner", "repo"},
		{"https://github.com/owner", "", ""},
		{"https://github.com/topics/golang", "", ""},
		{"https://github.com/orgs/someorg/repositories", "", ""},
		{"https://gitlab.com/owner/repo", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()

			owner, repo := linkhttp.GitHubRepoPath(tt.url)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantRepo, repo)
		})
	}
}
