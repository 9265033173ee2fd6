// Package buildinfo carries version metadata stamped at link time with
// -ldflags "-X github.com/aalvaropc/staybook/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("staybook %s (commit=%s, date=%s)", Version, Commit, Date)
}
