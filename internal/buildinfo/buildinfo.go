package buildinfo

import "fmt"

// Set via -ldflags "-X flavor_remover/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("afr %s (commit=%s, date=%s)", Version, Commit, Date)
}
