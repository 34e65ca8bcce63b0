package session

import (
	"context"
	"regexp"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/google/go-github/v57/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/fyrsmithlabs/reflectd/internal/config"
)

// githubIssueLimit bounds each issue list in the snapshot.
const githubIssueLimit = 10

// githubRemotePattern extracts owner and repository from an origin URL in
// SSH (git@github.com:owner/repo.git) or HTTPS form.
var githubRemotePattern = regexp.MustCompile(`github\.com[:/]([^/]+)/([^/\s]+?)(?:\.git)?$`)

// gatherGitHub fetches a bounded issue snapshot when a token is configured
// and the origin remote points at GitHub. Any API failure degrades to an
// unavailable section.
func (g *Gatherer) gatherGitHub(ctx context.Context, token config.Secret) GitHubData {
	data := GitHubData{Open: []Issue{}, Closed: []Issue{}}
	if !token.IsSet() {
		return data
	}

	owner, repo := originOwnerRepo(g.dir)
	if owner == "" {
		return data
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token.Value()})
	client := github.NewClient(oauth2.NewClient(ctx, ts))

	open, err := listIssues(ctx, client, owner, repo, "open")
	if err != nil {
		g.logger.Debug("github issue fetch failed", zap.String("repo", owner+"/"+repo), zap.Error(err))
		return data
	}
	closed, err := listIssues(ctx, client, owner, repo, "closed")
	if err != nil {
		g.logger.Debug("github issue fetch failed", zap.String("repo", owner+"/"+repo), zap.Error(err))
		return data
	}

	data.Available = true
	data.Repo = owner + "/" + repo
	data.Open = open
	data.Closed = closed
	return data
}

func listIssues(ctx context.Context, client *github.Client, owner, repo, state string) ([]Issue, error) {
	issues, _, err := client.Issues.ListByRepo(ctx, owner, repo, &github.IssueListByRepoOptions{
		State:       state,
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: githubIssueLimit},
	})
	if err != nil {
		return nil, err
	}

	out := make([]Issue, 0, len(issues))
	for _, issue := range issues {
		// Pull requests come back through the issues API too.
		if issue.IsPullRequest() {
			continue
		}
		out = append(out, Issue{
			Number:    issue.GetNumber(),
			Title:     issue.GetTitle(),
			State:     issue.GetState(),
			UpdatedAt: issue.GetUpdatedAt().Format(time.RFC3339),
		})
	}
	return out, nil
}

// originOwnerRepo parses the origin remote of the repository at dir.
func originOwnerRepo(dir string) (owner, repo string) {
	r, err := git.PlainOpen(dir)
	if err != nil {
		return "", ""
	}
	remote, err := r.Remote("origin")
	if err != nil {
		return "", ""
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", ""
	}
	m := githubRemotePattern.FindStringSubmatch(urls[0])
	if m == nil {
		return "", ""
	}
	return m[1], m[2]
}
