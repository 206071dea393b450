package main

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via ldflags
	Version = "dev"
	// Commit is the git commit hash, set at build time via ldflags
	Commit = "unknown"
)

const shortCommitLen = 7

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if info, ok := debug.ReadBuildInfo(); ok {
			applyBuildInfo(info)
		}
		printVersion(cmd.OutOrStdout())
	},
}

// printVersion prints the version and commit information
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "cursorignore %s (%s)\n", Version, Commit)
}

// applyBuildInfo fills Version and Commit from module build info
// when they were not set via ldflags.
func applyBuildInfo(info *debug.BuildInfo) {
	if info == nil {
		return
	}

	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	if Commit != "unknown" {
		return
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			Commit = s.Value
			if len(Commit) > shortCommitLen {
				Commit = Commit[:shortCommitLen]
			}
			return
		}
	}
}
