package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/shaun/portfolio-api/internal/domain"
)

// RepoSource defines the interface for retrieving repository data from the
// hosting API
type RepoSource interface {
	// ListOwned retrieves up to 100 most-recently-updated repositories owned
	// by user, excluding forks
	ListOwned(ctx context.Context, user string) ([]domain.RepositorySummary, error)

	// GetRepo retrieves a single repository by owner and name
	GetRepo(ctx context.Context, owner, name string) (domain.RepositorySummary, error)

	// Languages retrieves the byte-count-per-language mapping for a repository
	Languages(ctx context.Context, owner, name string) (map[string]int, error)

	// RecentCommitCount counts commits since the given time. Capped at one
	// page of 100; an approximation for highly active repositories.
	RecentCommitCount(ctx context.Context, owner, name string, since time.Time) (int, error)
}

// StatusError reports a non-success status from the upstream API so handlers
// can mirror it
type StatusError struct {
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned %d: %v", e.StatusCode, e.Err)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}
