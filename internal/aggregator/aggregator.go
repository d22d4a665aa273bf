package aggregator

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shaun/portfolio-api/internal/collector"
	"github.com/shaun/portfolio-api/internal/domain"
)

const (
	// maxRepos caps the merged owned + external list
	maxRepos = 12
	// topLanguageCount limits the language breakdown per repository
	topLanguageCount = 4
	// commitWindow is the trailing period for the recent-commit count
	commitWindow = 30 * 24 * time.Hour
	// cacheTTL is how long one enriched result set stays fresh
	cacheTTL = 20 * time.Minute
	// enrichConcurrency bounds parallel enrichment calls
	enrichConcurrency = 4
)

// Aggregator defines the interface for assembling the portfolio's
// repository list
type Aggregator interface {
	// Repositories returns the enriched repository set, served from cache
	// while fresh. Per-repository enrichment failures degrade to zero/empty
	// values; only a failure to list the owned repositories at all is an
	// error.
	Repositories(ctx context.Context) ([]domain.RepoResult, error)
}

// aggregator implements the Aggregator interface
type aggregator struct {
	source   collector.RepoSource
	user     string
	featured []string
	external []string
	cache    *repoCache
	now      func() time.Time
}

// NewAggregator creates a new aggregator for one account. featured filters
// owned repositories by name; external lists extra "owner/name" references.
func NewAggregator(source collector.RepoSource, user string, featured, external []string) Aggregator {
	return &aggregator{
		source:   source,
		user:     user,
		featured: featured,
		external: external,
		cache:    newRepoCache(cacheTTL),
		now:      time.Now,
	}
}

// Repositories returns the enriched repository set
func (a *aggregator) Repositories(ctx context.Context) ([]domain.RepoResult, error) {
	if cached, ok := a.cache.get(); ok {
		return cached, nil
	}

	owned, err := a.source.ListOwned(ctx, a.user)
	if err != nil {
		return nil, err
	}

	if len(a.featured) > 0 {
		owned = filterByName(owned, a.featured)
	}

	merged, skipped := a.mergeExternal(ctx, owned)
	if len(merged) > maxRepos {
		merged = merged[:maxRepos]
	}

	results := a.enrichAll(ctx, merged)
	results = append(results, skipped...)

	a.cache.put(results)
	return results, nil
}

// filterByName keeps only repositories whose name appears in names,
// preserving the input order
func filterByName(repos []domain.RepositorySummary, names []string) []domain.RepositorySummary {
	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[n] = true
	}

	var out []domain.RepositorySummary
	for _, r := range repos {
		if keep[r.Name] {
			out = append(out, r)
		}
	}
	return out
}

// mergeExternal fetches each configured external reference and appends it to
// the owned list, deduplicating by full name. Owned entries come first, so
// they win on duplicates. Unfetchable references are returned as skipped
// results rather than failing the aggregation.
func (a *aggregator) mergeExternal(ctx context.Context, owned []domain.RepositorySummary) ([]domain.RepositorySummary, []domain.RepoResult) {
	merged := make([]domain.RepositorySummary, 0, len(owned)+len(a.external))
	seen := make(map[string]bool)
	for _, r := range owned {
		if seen[r.FullName] {
			continue
		}
		seen[r.FullName] = true
		merged = append(merged, r)
	}

	var skipped []domain.RepoResult
	for _, ref := range a.external {
		owner, name, ok := strings.Cut(ref, "/")
		if !ok || owner == "" || name == "" {
			skipped = append(skipped, domain.RepoResult{
				Status: domain.RepoStatusSkipped,
				Reason: "invalid reference: " + ref,
			})
			continue
		}

		repo, err := a.source.GetRepo(ctx, owner, name)
		if err != nil {
			skipped = append(skipped, domain.RepoResult{
				Status: domain.RepoStatusSkipped,
				Reason: "fetch failed: " + ref,
			})
			continue
		}

		if seen[repo.FullName] {
			continue
		}
		seen[repo.FullName] = true
		merged = append(merged, repo)
	}

	return merged, skipped
}

// enrichAll enriches every repository concurrently. Each goroutine writes
// only its own index, so no result-level locking is needed.
func (a *aggregator) enrichAll(ctx context.Context, repos []domain.RepositorySummary) []domain.RepoResult {
	results := make([]domain.RepoResult, len(repos))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, enrichConcurrency)

	for i, repo := range repos {
		wg.Add(1)
		go func(index int, r domain.RepositorySummary) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results[index] = a.enrichOne(ctx, r)
		}(i, repo)
	}

	wg.Wait()
	return results
}

// enrichOne fills the language breakdown and recent commit count for one
// repository. Either call failing marks the result degraded with zero/empty
// values instead of propagating the error.
func (a *aggregator) enrichOne(ctx context.Context, repo domain.RepositorySummary) domain.RepoResult {
	result := domain.RepoResult{Status: domain.RepoStatusOK}

	owner, name, ok := strings.Cut(repo.FullName, "/")
	if !ok {
		owner, name = a.user, repo.Name
	}

	var reasons []string

	langs, err := a.source.Languages(ctx, owner, name)
	if err != nil {
		reasons = append(reasons, "languages unavailable")
	} else {
		repo.LanguagesTop = topLanguages(langs)
	}

	since := a.now().Add(-commitWindow)
	count, err := a.source.RecentCommitCount(ctx, owner, name, since)
	if err != nil {
		reasons = append(reasons, "commit count unavailable")
	} else {
		repo.RecentCommits30 = count
	}

	if len(reasons) > 0 {
		result.Status = domain.RepoStatusDegraded
		result.Reason = strings.Join(reasons, "; ")
	}

	result.Summary = repo
	return result
}

// topLanguages converts a byte-count mapping into the top-4 percentage
// breakdown, sorted by byte count descending. Percentages are rounded per
// entry and need not sum to 100.
func topLanguages(langs map[string]int) []domain.LanguageShare {
	if len(langs) == 0 {
		return nil
	}

	total := 0
	for _, bytes := range langs {
		total += bytes
	}
	if total == 0 {
		return nil
	}

	names := make([]string, 0, len(langs))
	for name := range langs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if langs[names[i]] != langs[names[j]] {
			return langs[names[i]] > langs[names[j]]
		}
		return names[i] < names[j]
	})

	if len(names) > topLanguageCount {
		names = names[:topLanguageCount]
	}

	shares := make([]domain.LanguageShare, 0, len(names))
	for _, name := range names {
		shares = append(shares, domain.LanguageShare{
			Name:    name,
			Percent: int(math.Round(float64(langs[name]) / float64(total) * 100)),
		})
	}
	return shares
}
