package domain

import "time"

// LanguageShare is one entry in a repository's language breakdown
type LanguageShare struct {
	Name    string `json:"name"`
	Percent int    `json:"percent"`
}

// RepositorySummary represents one GitHub repository as exposed by the
// aggregation endpoint. Field names match the GitHub REST shapes the site
// already consumes.
type RepositorySummary struct {
	Name            string          `json:"name"`
	FullName        string          `json:"full_name"`
	HTMLURL         string          `json:"html_url"`
	Description     *string         `json:"description"`
	Homepage        *string         `json:"homepage"`
	Stars           int             `json:"stargazers_count"`
	Forks           int             `json:"forks_count"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Language        *string         `json:"language"`
	LanguagesTop    []LanguageShare `json:"languagesTop"`
	RecentCommits30 int             `json:"recentCommits30d"`
}

// RepoStatus classifies the outcome of fetching and enriching one repository
type RepoStatus string

const (
	// RepoStatusOK means both enrichment calls succeeded
	RepoStatusOK RepoStatus = "ok"
	// RepoStatusDegraded means at least one enrichment call failed and the
	// summary carries zero/empty values for it
	RepoStatusDegraded RepoStatus = "degraded"
	// RepoStatusSkipped means the repository could not be fetched at all
	// and carries no summary
	RepoStatusSkipped RepoStatus = "skipped"
)

// RepoResult pairs a summary with how completely it was assembled. The HTTP
// response flattens this to the summaries alone; tests assert on Status.
type RepoResult struct {
	Summary RepositorySummary
	Status  RepoStatus
	Reason  string
}
