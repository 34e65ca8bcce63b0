package reflection

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Distinct fatal load conditions for CLI callers.
var (
	// ErrDirNotFound means the reflections directory does not exist.
	ErrDirNotFound = errors.New("reflections directory not found")
	// ErrNoReflections means the directory exists but contains no
	// reflection files.
	ErrNoReflections = errors.New("no reflection files found")
)

// Load enumerates *.md files in dir, most recent first by filename lexical
// order, and parses each one. Files that cannot be read are skipped without
// affecting the rest of the batch.
func Load(dir string) ([]*Reflection, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("enumerating reflections: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoReflections, dir)
	}

	// Filenames start with an ISO date, so reverse lexical order is most
	// recent first.
	sort.Sort(sort.Reverse(sort.StringSlice(paths)))

	reflections := make([]*Reflection, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		reflections = append(reflections, ParseReflection(path, string(content)))
	}
	return reflections, nil
}
