// Package gateway provides a gateway to the GitHub GraphQL API.
package gateway

import (
	"context"
	"log"
	"net/http"

	"github.com/mage-os/github-dashboard/internal/domain"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchOrganization(ctx context.Context, org string) (*domain.Organization, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// organizationQuery fetches a single page of everything the dashboard shows.
// Lists beyond the first 100 items are not requested.
type organizationQuery struct {
	Organization struct {
		Repositories struct {
			Nodes []repositoryNode
		} `graphql:"repositories(first: 100, orderBy: {field: UPDATED_AT, direction: DESC})"`
	} `graphql:"organization(login: $org)"`
}

type repositoryNode struct {
	Name      string
	URL       string
	UpdatedAt githubv4.DateTime
	Issues    struct {
		TotalCount int
		Nodes      []issueNode
	} `graphql:"issues(states: OPEN, first: 100, orderBy: {field: UPDATED_AT, direction: DESC})"`
	PullRequests struct {
		TotalCount int
		Nodes      []pullRequestNode
	} `graphql:"pullRequests(states: OPEN, first: 100, orderBy: {field: UPDATED_AT, direction: DESC})"`
}

type issueNode struct {
	Title     string
	URL       string
	CreatedAt githubv4.DateTime
	UpdatedAt githubv4.DateTime
	Labels    struct {
		Nodes []struct {
			Name  string
			Color string
		}
	} `graphql:"labels(first: 5)"`
}

type pullRequestNode struct {
	Title     string
	URL       string
	CreatedAt githubv4.DateTime
	UpdatedAt githubv4.DateTime
	// Author is null for deleted accounts.
	Author *struct {
		Login string
	}
}

// NewGitHubGateway creates a gateway that sends token as a bearer credential
// to the GraphQL endpoint. The token is not validated.
func NewGitHubGateway(token, endpoint string, logger *log.Logger) *GitHubGateway {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   &statusTransport{base: http.DefaultTransport},
			Source: ts,
		},
	}
	return &GitHubGateway{
		graphqlClient: githubv4.NewEnterpriseClient(endpoint, httpClient),
		logger:        logger,
	}
}

// FetchOrganization issues one GraphQL query for org and converts the
// response into domain values, keeping the API's ordering.
func (g *GitHubGateway) FetchOrganization(ctx context.Context, org string) (*domain.Organization, error) {
	g.logger.Printf("Fetching repositories, issues and pull requests for %s...\n", org)
	variables := map[string]interface{}{"org": githubv4.String(org)}

	var q organizationQuery
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return nil, classify(err)
	}

	nodes := q.Organization.Repositories.Nodes
	result := &domain.Organization{Repositories: make([]domain.Repository, 0, len(nodes))}
	for _, node := range nodes {
		result.Repositories = append(result.Repositories, toRepository(node))
	}
	g.logger.Printf("Completed fetching %d repositories.\n", len(result.Repositories))
	return result, nil
}

func toRepository(node repositoryNode) domain.Repository {
	repo := domain.Repository{
		Name:              node.Name,
		URL:               node.URL,
		UpdatedAt:         node.UpdatedAt.Time,
		TotalIssues:       node.Issues.TotalCount,
		TotalPullRequests: node.PullRequests.TotalCount,
		Issues:            make([]domain.Issue, 0, len(node.Issues.Nodes)),
		PullRequests:      make([]domain.PullRequest, 0, len(node.PullRequests.Nodes)),
	}
	for _, in := range node.Issues.Nodes {
		issue := domain.Issue{
			Title:     in.Title,
			URL:       in.URL,
			CreatedAt: in.CreatedAt.Time,
			UpdatedAt: in.UpdatedAt.Time,
			Labels:    make([]domain.Label, 0, len(in.Labels.Nodes)),
		}
		for _, label := range in.Labels.Nodes {
			issue.Labels = append(issue.Labels, domain.Label{Name: label.Name, Color: label.Color})
		}
		repo.Issues = append(repo.Issues, issue)
	}
	for _, pn := range node.PullRequests.Nodes {
		pr := domain.PullRequest{
			Title:     pn.Title,
			URL:       pn.URL,
			CreatedAt: pn.CreatedAt.Time,
			UpdatedAt: pn.UpdatedAt.Time,
		}
		if pn.Author != nil {
			pr.Author = pn.Author.Login
		}
		repo.PullRequests = append(repo.PullRequests, pr)
	}
	return repo
}
