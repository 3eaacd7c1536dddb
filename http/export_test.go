package http

// Hooks for external tests.
var (
	XStatusID      = xStatusID
	GitHubRepoPath = githubRepoPath
	LooksLikeFeed  = looksLikeFeed
)
