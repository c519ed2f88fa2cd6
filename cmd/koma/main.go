package main

import (
	"os"

	"github.com/yomikata/koma/internal/cli"
)

// Build-time version information, injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
