package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/reflectd/internal/config"
)

// DefaultCommits is how many recent commits a gather inspects when the
// caller does not say.
const DefaultCommits = 20

// Options bounds a gather run.
type Options struct {
	// Commits is how many recent commits to collect.
	Commits int
	// GitHubToken enables the GitHub issue snapshot when set.
	GitHubToken config.Secret
}

// Gatherer collects session data from one project directory.
type Gatherer struct {
	dir    string
	logger *zap.Logger
}

// NewGatherer creates a gatherer rooted at dir. A nil logger disables
// logging.
func NewGatherer(dir string, logger *zap.Logger) *Gatherer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gatherer{dir: dir, logger: logger}
}

// Gather collects the full session snapshot. Each collector degrades to an
// unavailable section on its own; Gather itself never fails.
func (g *Gatherer) Gather(ctx context.Context, opts Options) Data {
	commits := opts.Commits
	if commits <= 0 {
		commits = DefaultCommits
	}

	data := Data{
		Timestamp: time.Now().Format(time.RFC3339),
		Git:       g.gatherGit(commits),
		Beads:     g.gatherBeads(ctx),
		GitHub:    g.gatherGitHub(ctx, opts.GitHubToken),
	}
	data.FilesEdited = filesEdited(data.Git.Status)
	return data
}

// filesEdited extracts the touched file list from status entries.
func filesEdited(status []StatusEntry) []string {
	files := make([]string, 0, len(status))
	for _, entry := range status {
		files = append(files, entry.File)
	}
	return files
}
