package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-github/v55/github"
	"golang.org/x/oauth2"

	"github.com/shaun/portfolio-api/internal/domain"
)

const userAgent = "shaun-portfolio"

// githubRepoSource implements RepoSource using the GitHub API
type githubRepoSource struct {
	client      *github.Client
	rateLimiter RateLimiter
}

// NewGitHubRepoSource creates a new GitHub-backed repo source. An empty token
// yields an unauthenticated client, subject to the lower anonymous API quota.
func NewGitHubRepoSource(token string) RepoSource {
	var client *github.Client
	if token != "" {
		ctx := context.Background()
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		client = github.NewClient(oauth2.NewClient(ctx, ts))
	} else {
		client = github.NewClient(nil)
	}
	client.UserAgent = userAgent

	return &githubRepoSource{
		client:      client,
		rateLimiter: NewRateLimiter(),
	}
}

// ListOwned retrieves up to 100 most-recently-updated repositories owned by
// user, excluding forks. One page only: the portfolio shows at most 12 repos,
// so pagination buys nothing.
func (s *githubRepoSource) ListOwned(ctx context.Context, user string) ([]domain.RepositorySummary, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	opts := &github.RepositoryListOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	repos, resp, err := s.client.Repositories.List(ctx, user, opts)
	if err != nil {
		return nil, wrapStatus(resp, fmt.Errorf("failed to list repositories for %s: %w", user, err))
	}
	s.updateRateLimitFromResponse(resp)

	var owned []domain.RepositorySummary
	for _, repo := range repos {
		if repo.GetFork() {
			continue
		}
		owned = append(owned, toSummary(repo))
	}
	return owned, nil
}

// GetRepo retrieves a single repository by owner and name
func (s *githubRepoSource) GetRepo(ctx context.Context, owner, name string) (domain.RepositorySummary, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return domain.RepositorySummary{}, err
	}

	repo, resp, err := s.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return domain.RepositorySummary{}, wrapStatus(resp, fmt.Errorf("failed to get %s/%s: %w", owner, name, err))
	}
	s.updateRateLimitFromResponse(resp)

	return toSummary(repo), nil
}

// Languages retrieves the byte-count-per-language mapping for a repository
func (s *githubRepoSource) Languages(ctx context.Context, owner, name string) (map[string]int, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	langs, resp, err := s.client.Repositories.ListLanguages(ctx, owner, name)
	if err != nil {
		return nil, wrapStatus(resp, fmt.Errorf("failed to list languages for %s/%s: %w", owner, name, err))
	}
	s.updateRateLimitFromResponse(resp)

	return langs, nil
}

// RecentCommitCount counts commits since the given time, capped at one page
// of 100
func (s *githubRepoSource) RecentCommitCount(ctx context.Context, owner, name string, since time.Time) (int, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return 0, err
	}

	opts := &github.CommitsListOptions{
		Since:       since,
		ListOptions: github.ListOptions{PerPage: 100},
	}

	commits, resp, err := s.client.Repositories.ListCommits(ctx, owner, name, opts)
	if err != nil {
		// Empty repositories report 409, which is zero commits, not a failure
		if resp != nil && resp.StatusCode == 409 {
			return 0, nil
		}
		return 0, wrapStatus(resp, fmt.Errorf("failed to list commits for %s/%s: %w", owner, name, err))
	}
	s.updateRateLimitFromResponse(resp)

	return len(commits), nil
}

// toSummary maps a GitHub API repository onto the domain summary. Enrichment
// fields (languages, commit count) start zeroed and are filled by the
// aggregator.
func toSummary(repo *github.Repository) domain.RepositorySummary {
	return domain.RepositorySummary{
		Name:        repo.GetName(),
		FullName:    repo.GetFullName(),
		HTMLURL:     repo.GetHTMLURL(),
		Description: repo.Description,
		Homepage:    repo.Homepage,
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		UpdatedAt:   repo.GetUpdatedAt().Time,
		Language:    repo.Language,
	}
}

// wrapStatus attaches the upstream response status to an error when available
func wrapStatus(resp *github.Response, err error) error {
	if resp != nil {
		return &StatusError{StatusCode: resp.StatusCode, Err: err}
	}
	return err
}

// updateRateLimitFromResponse updates the rate limiter from API response
func (s *githubRepoSource) updateRateLimitFromResponse(resp *github.Response) {
	if resp != nil && resp.Rate.Remaining >= 0 {
		s.rateLimiter.UpdateLimit(resp.Rate.Remaining, resp.Rate.Reset.Time)
	}
}
