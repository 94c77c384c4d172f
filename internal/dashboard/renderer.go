// Package dashboard renders the organization snapshot as a single static
// HTML document. All HTML is built in code, no external templates needed.
//
// Text from the API (titles, names, logins, label colors) is written into
// the document verbatim, without HTML escaping.
package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/mage-os/github-dashboard/internal/domain"
)

const (
	// shortDateLayout and dateTimeLayout follow the en-US default
	// date and date-time renderings.
	shortDateLayout = "1/2/2006"
	dateTimeLayout  = "1/2/2006, 3:04:05 PM"

	// ghostLogin stands in for the author of a pull request whose account
	// has been deleted.
	ghostLogin = "ghost"
)

// HTMLRenderer turns an organization snapshot into the dashboard document.
type HTMLRenderer struct {
	location *time.Location
}

// NewHTMLRenderer creates a renderer that prints timestamps in loc.
// A nil loc means time.Local.
func NewHTMLRenderer(loc *time.Location) *HTMLRenderer {
	if loc == nil {
		loc = time.Local
	}
	return &HTMLRenderer{location: loc}
}

// Render returns the complete document. generatedAt is shown in the
// "Last updated" banner; the output is otherwise a function of org alone.
func (r *HTMLRenderer) Render(org domain.Organization, generatedAt time.Time) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n")
	b.WriteString(htmlHead(pageTitle))
	b.WriteString("\n<body>\n")
	fmt.Fprintf(&b, `	<header class="container">
		<h1>%s</h1>
		<p class="last-update">Last updated: %s</p>
	</header>
`, pageTitle, generatedAt.In(r.location).Format(dateTimeLayout))
	b.WriteString("\t<main class=\"container\">\n")
	b.WriteString(renderStats(org.Stats()))
	for _, repo := range org.Repositories {
		b.WriteString(r.renderRepository(repo))
	}
	b.WriteString("\t</main>\n</body>\n</html>\n")
	return b.String()
}

func renderStats(s domain.Stats) string {
	return fmt.Sprintf(`		<div class="stats">
			%s
			%s
			%s
		</div>
`, statBox("Total Repositories", s.Repositories),
		statBox("Total Open Issues", s.OpenIssues),
		statBox("Total Open PRs", s.OpenPRs))
}

func statBox(title string, value int) string {
	return fmt.Sprintf(`<div class="stat-box">
				<h4>%s</h4>
				<strong>%d</strong>
			</div>`, title, value)
}

func (r *HTMLRenderer) renderRepository(repo domain.Repository) string {
	var issues, prs strings.Builder
	for _, issue := range repo.Issues {
		issues.WriteString(r.renderIssue(issue))
	}
	for _, pr := range repo.PullRequests {
		prs.WriteString(r.renderPullRequest(pr))
	}
	return fmt.Sprintf(`		<article class="repo">
			<h3><a href="%s" target="_blank">%s</a></h3>
			<div class="issues">
				<h4>Open Issues (%d)</h4>
%s			</div>
			<div class="prs">
				<h4>Open Pull Requests (%d)</h4>
%s			</div>
		</article>
`, repo.URL, repo.Name, repo.TotalIssues, issues.String(), repo.TotalPullRequests, prs.String())
}

func (r *HTMLRenderer) renderIssue(issue domain.Issue) string {
	var labels strings.Builder
	for _, label := range issue.Labels {
		labels.WriteString(renderLabel(label))
	}
	return fmt.Sprintf(`				<div class="item">
					<a href="%s" target="_blank">%s</a>
					<div class="date">
						Created: %s
						| Updated: %s
					</div>
%s				</div>
`, issue.URL, issue.Title, r.shortDate(issue.CreatedAt), r.shortDate(issue.UpdatedAt), labels.String())
}

// renderLabel draws a pill tinted with the label color at 30 alpha.
func renderLabel(label domain.Label) string {
	return fmt.Sprintf("\t\t\t\t\t<span class=\"label\" style=\"background: #%s30; color: #%s;\">%s</span>\n",
		label.Color, label.Color, label.Name)
}

func (r *HTMLRenderer) renderPullRequest(pr domain.PullRequest) string {
	author := pr.Author
	if author == "" {
		author = ghostLogin
	}
	return fmt.Sprintf(`				<div class="item">
					<a href="%s" target="_blank">%s</a>
					<div class="date">
						Created: %s
						| Updated: %s
						| By: %s
					</div>
				</div>
`, pr.URL, pr.Title, r.shortDate(pr.CreatedAt), r.shortDate(pr.UpdatedAt), author)
}

func (r *HTMLRenderer) shortDate(t time.Time) string {
	return t.In(r.location).Format(shortDateLayout)
}
