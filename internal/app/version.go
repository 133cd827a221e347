package app

import "fmt"

// Stamped by the release build:
//
//	go build -ldflags "-X github.com/heartmarshall/wordlists/internal/app.Version=$(git describe --tags)" ./cmd/wordlists
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is logged once when wordlists starts.
func BuildVersion() string {
	return fmt.Sprintf("wordlists %s (commit %s, built %s)", Version, Commit, BuildTime)
}
