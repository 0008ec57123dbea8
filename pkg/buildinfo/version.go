// Package buildinfo holds the release stamp of the treeseed binary.
//
// Release builds overwrite the variables at link time, e.g.
//
//	-ldflags "-X github.com/matzehuels/treeseed/pkg/buildinfo.Version=v0.3.0 \
//	          -X github.com/matzehuels/treeseed/pkg/buildinfo.Commit=$(git rev-parse HEAD)"
//
// Local builds keep the zero stamp below.
package buildinfo

import "fmt"

// Release stamp, injected with -X.
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

const shortCommitLen = 7

// ShortCommit returns the abbreviated commit hash, or "unknown" for local
// builds.
func ShortCommit() string {
	if Commit == "" {
		return "unknown"
	}
	if len(Commit) > shortCommitLen {
		return Commit[:shortCommitLen]
	}
	return Commit
}

// Template is the text printed by `treeseed --version`. The build date is
// appended only when it was stamped.
func Template() string {
	line := fmt.Sprintf("{{.Name}} %s (commit %s", Version, ShortCommit())
	if Date != "" {
		line += ", built " + Date
	}
	return line + ")\n"
}
