package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/aalvaropc/pnladl/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("pnladl %s (commit=%s, date=%s)", Version, Commit, Date)
}
