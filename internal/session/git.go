package session

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"go.uber.org/zap"
)

// diffStatDepth bounds how many recent commits feed the diff stats.
const diffStatDepth = 5

// gatherGit collects branch, recent commits, diff stats, and working-tree
// status. A directory that is not a git repository yields Available: false.
func (g *Gatherer) gatherGit(maxCommits int) GitData {
	data := GitData{
		Commits:   []Commit{},
		DiffStats: DiffStats{ByExtension: map[string]int{}},
		Status:    []StatusEntry{},
	}

	repo, err := git.PlainOpen(g.dir)
	if err != nil {
		return data
	}
	data.Available = true

	head, err := repo.Head()
	if err != nil {
		// Empty repository: no HEAD yet, but the repo exists.
		return data
	}
	if head.Name().IsBranch() {
		data.Branch = head.Name().Short()
	}

	data.Commits = g.recentCommits(repo, maxCommits)
	data.DiffStats = diffStatsFor(data.Commits, min(maxCommits, diffStatDepth))
	data.Status = g.worktreeStatus(repo)

	return data
}

// recentCommits walks the log from HEAD and records up to maxCommits entries
// with the files each one touched.
func (g *Gatherer) recentCommits(repo *git.Repository, maxCommits int) []Commit {
	iter, err := repo.Log(&git.LogOptions{})
	if err != nil {
		return []Commit{}
	}
	defer iter.Close()

	now := time.Now()
	commits := make([]Commit, 0, maxCommits)
	err = iter.ForEach(func(c *object.Commit) error {
		if len(commits) >= maxCommits {
			return storer.ErrStop
		}
		commits = append(commits, Commit{
			Hash:    c.Hash.String()[:8],
			Message: firstLine(c.Message),
			Author:  c.Author.Name,
			When:    relativeAge(c.Author.When, now),
			Files:   commitFiles(c),
		})
		return nil
	})
	if err != nil && err != storer.ErrStop {
		g.logger.Debug("commit walk stopped early", zap.Error(err))
	}
	return commits
}

func commitFiles(c *object.Commit) []string {
	stats, err := c.Stats()
	if err != nil {
		return []string{}
	}
	files := make([]string, 0, len(stats))
	for _, stat := range stats {
		files = append(files, stat.Name)
	}
	return files
}

// diffStatsFor counts distinct files changed in the most recent depth
// commits, grouped by file extension.
func diffStatsFor(commits []Commit, depth int) DiffStats {
	stats := DiffStats{ByExtension: map[string]int{}}
	seen := make(map[string]struct{})
	for _, commit := range commits[:min(depth, len(commits))] {
		for _, file := range commit.Files {
			if _, ok := seen[file]; ok {
				continue
			}
			seen[file] = struct{}{}
			ext := filepath.Ext(file)
			if ext == "" {
				ext = "(no ext)"
			}
			stats.ByExtension[ext]++
			stats.TotalFiles++
		}
	}
	return stats
}

// worktreeStatus lists modified and untracked paths in deterministic order.
func (g *Gatherer) worktreeStatus(repo *git.Repository) []StatusEntry {
	wt, err := repo.Worktree()
	if err != nil {
		return []StatusEntry{}
	}
	status, err := wt.Status()
	if err != nil {
		g.logger.Debug("worktree status failed", zap.Error(err))
		return []StatusEntry{}
	}

	paths := make([]string, 0, len(status))
	for path := range status {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	entries := make([]StatusEntry, 0, len(paths))
	for _, path := range paths {
		fs := status[path]
		state := strings.TrimSpace(string([]byte{byte(fs.Staging), byte(fs.Worktree)}))
		if state == "" {
			continue
		}
		entries = append(entries, StatusEntry{State: state, File: path})
	}
	return entries
}

func firstLine(message string) string {
	line, _, _ := strings.Cut(message, "\n")
	return strings.TrimSpace(line)
}

// relativeAge renders a commit timestamp the way git's %ar format does,
// coarsely.
func relativeAge(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "seconds ago"
	case d < time.Hour:
		return agoUnits(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return agoUnits(int(d.Hours()), "hour")
	case d < 30*24*time.Hour:
		return agoUnits(int(d.Hours()/24), "day")
	case d < 365*24*time.Hour:
		return agoUnits(int(d.Hours()/(24*30)), "month")
	default:
		return agoUnits(int(d.Hours()/(24*365)), "year")
	}
}

func agoUnits(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
