package session

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"
)

// gatherBeads queries the bd issue tracker CLI for recent issue state.
// Absence of the binary or of a .beads directory means the tracker is not in
// use here.
func (g *Gatherer) gatherBeads(ctx context.Context) BeadsData {
	data := NewBeadsData()

	if _, err := exec.LookPath("bd"); err != nil {
		return data
	}
	if _, err := os.Stat(filepath.Join(g.dir, ".beads")); err != nil {
		return data
	}
	data.Available = true

	data.Closed = g.beadsList(ctx, "--status=closed", "--limit=10")
	data.InProgress = g.beadsList(ctx, "--status=in_progress")
	data.Created = g.beadsList(ctx, "--status=open", "--limit=10")
	return data
}

// beadsList runs one bd list query and returns its JSON output, or an empty
// list when the command fails or emits invalid JSON.
func (g *Gatherer) beadsList(ctx context.Context, args ...string) json.RawMessage {
	cmdArgs := append([]string{"list"}, args...)
	cmdArgs = append(cmdArgs, "--json")

	cmd := exec.CommandContext(ctx, "bd", cmdArgs...)
	cmd.Dir = g.dir
	out, err := cmd.Output()
	if err != nil {
		g.logger.Debug("bd list failed", zap.Strings("args", cmdArgs), zap.Error(err))
		return emptyList()
	}

	out = bytes.TrimSpace(out)
	if !json.Valid(out) {
		return emptyList()
	}
	return json.RawMessage(out)
}
