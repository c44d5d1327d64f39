// Package pathutil handles output-directory management, input
// discovery and filesystem-safe naming for extraction runs.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var unsafeRunes = regexp.MustCompile(`[\\/:"*?<>|]+`)

// SafeName replaces characters that are unsafe in file names with
// underscores. Path separators are deliberately included so a hostile
// name cannot escape the extraction directory.
func SafeName(name string) string {
	return unsafeRunes.ReplaceAllString(name, "_")
}

// ExtractionDir returns the extraction directory for an output base
// path, removing any stale directory from a previous run and recreating
// it. Failure here is fatal for that input's extraction.
func ExtractionDir(base string) (string, error) {
	dir := base + "_extracted"
	if err := os.RemoveAll(dir); err != nil {
		return "", fmt.Errorf("remove stale extraction dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create extraction dir: %w", err)
	}
	return dir, nil
}

// DiscoverInputs expands the given arguments into a sorted list of
// regular files. Directory arguments are walked one level deep; hidden
// files are skipped.
func DiscoverInputs(args []string) ([]string, error) {
	var inputs []string
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		st, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !st.IsDir() {
			inputs = append(inputs, filepath.Clean(arg))
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
				continue
			}
			inputs = append(inputs, filepath.Join(arg, e.Name()))
		}
	}
	sort.Strings(inputs)
	return inputs, nil
}
