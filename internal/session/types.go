package session

import "encoding/json"

// Data is the full session snapshot produced by one gather run.
type Data struct {
	Timestamp   string     `json:"timestamp"`
	Git         GitData    `json:"git"`
	Beads       BeadsData  `json:"beads"`
	GitHub      GitHubData `json:"github"`
	FilesEdited []string   `json:"files_edited"`
}

// GitData holds repository activity for the session.
type GitData struct {
	Available bool          `json:"available"`
	Branch    string        `json:"branch"`
	Commits   []Commit      `json:"commits"`
	DiffStats DiffStats     `json:"diff_stats"`
	Status    []StatusEntry `json:"status"`
}

// Commit is one recent commit with the files it touched.
type Commit struct {
	Hash    string   `json:"hash"`
	Message string   `json:"message"`
	Author  string   `json:"author"`
	When    string   `json:"when"`
	Files   []string `json:"files"`
}

// DiffStats counts recently changed files by extension.
type DiffStats struct {
	TotalFiles  int            `json:"total_files"`
	ByExtension map[string]int `json:"by_extension"`
}

// StatusEntry is one modified or untracked path from the working tree.
type StatusEntry struct {
	State string `json:"state"`
	File  string `json:"file"`
}

// BeadsData holds issue lists from the bd CLI. The lists are passed through
// as the tracker emitted them.
type BeadsData struct {
	Available  bool            `json:"available"`
	Closed     json.RawMessage `json:"closed"`
	Created    json.RawMessage `json:"created"`
	InProgress json.RawMessage `json:"in_progress"`
}

// GitHubData holds a bounded snapshot of repository issues.
type GitHubData struct {
	Available bool    `json:"available"`
	Repo      string  `json:"repo,omitempty"`
	Open      []Issue `json:"open"`
	Closed    []Issue `json:"closed"`
}

// Issue is one GitHub issue in the snapshot.
type Issue struct {
	Number    int    `json:"number"`
	Title     string `json:"title"`
	State     string `json:"state"`
	UpdatedAt string `json:"updated_at"`
}

func emptyList() json.RawMessage {
	return json.RawMessage("[]")
}

// NewBeadsData returns an unavailable beads section with empty lists.
func NewBeadsData() BeadsData {
	return BeadsData{
		Closed:     emptyList(),
		Created:    emptyList(),
		InProgress: emptyList(),
	}
}
