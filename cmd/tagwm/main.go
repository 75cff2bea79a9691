// Package main is the entry point for the tagwm CLI.
package main

import (
	"runtime"

	"github.com/bnema/tagwm/internal/cli/cmd"
	"github.com/bnema/tagwm/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
