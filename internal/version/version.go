// Package version exposes build metadata injected via -ldflags.
package version

var (
	// Version is the release version.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = ""
)

// String renders the version for --version style output.
func String() string {
	if Commit == "" {
		return Version
	}
	commit := Commit
	if len(commit) > 12 {
		commit = commit[:12]
	}
	return Version + " (" + commit + ")"
}
