// Package domain contains the core data structures and domain logic for the application.
package domain

import (
	"time"

	"github.com/montanaflynn/stats"
)

// Organization is the snapshot of an organization returned by a single fetch.
type Organization struct {
	Repositories []Repository
}

// Repository holds one repository together with its first page of open
// issues and pull requests. The totals count every open item, not only the
// fetched ones.
type Repository struct {
	Name              string
	URL               string
	UpdatedAt         time.Time
	TotalIssues       int
	TotalPullRequests int
	Issues            []Issue
	PullRequests      []PullRequest
}

// Issue is an open issue of a repository.
type Issue struct {
	Title     string
	URL       string
	CreatedAt time.Time
	UpdatedAt time.Time
	Labels    []Label
}

// Label is a colored tag attached to an issue. Color is a hex string
// without the leading '#', taken verbatim from the API.
type Label struct {
	Name  string
	Color string
}

// PullRequest is an open pull request of a repository.
// Author is empty when the contributing account no longer exists.
type PullRequest struct {
	Title     string
	URL       string
	CreatedAt time.Time
	UpdatedAt time.Time
	Author    string
}

// Stats holds the summary counters shown at the top of the dashboard.
type Stats struct {
	Repositories int
	OpenIssues   int
	OpenPRs      int
}

// Stats computes the aggregate counters from the per-repository totals.
func (o Organization) Stats() Stats {
	issues := make([]int, 0, len(o.Repositories))
	prs := make([]int, 0, len(o.Repositories))
	for _, repo := range o.Repositories {
		issues = append(issues, repo.TotalIssues)
		prs = append(prs, repo.TotalPullRequests)
	}
	return Stats{
		Repositories: len(o.Repositories),
		OpenIssues:   sum(issues),
		OpenPRs:      sum(prs),
	}
}

// sum adds up counts, treating an empty list as zero.
func sum(counts []int) int {
	if len(counts) == 0 {
		return 0
	}
	total, err := stats.Sum(stats.LoadRawData(counts))
	if err != nil {
		return 0
	}
	return int(total)
}
