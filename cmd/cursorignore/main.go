// Package main provides the entry point for the cursorignore CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dongho-jung/cursorignore/internal/constants"
	"github.com/dongho-jung/cursorignore/internal/initializer"
	"github.com/dongho-jung/cursorignore/internal/logging"
	"github.com/dongho-jung/cursorignore/internal/report"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cursorignore",
	Short: "Create a .cursorignore file in the current directory",
	Long: `cursorignore writes a default .cursorignore to the current directory.
An existing .cursorignore is never modified.`,
	Args:          cobra.NoArgs,
	RunE:          runMain,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// runMain ensures the ignore file exists in the working directory
func runMain(cmd *cobra.Command, args []string) error {
	closeLog := setupLogging()
	defer closeLog()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	return runInDir(cwd, cmd.OutOrStdout())
}

// runInDir creates the ignore file in dir and prints the status line to w
func runInDir(dir string, w io.Writer) error {
	logging.Debug("Project: %s", dir)

	outcome, err := initializer.Ensure(dir)
	if err != nil {
		logging.Info("Failed to ensure %s: %v", constants.IgnoreFileName, err)
		return err
	}
	logging.Info("%s %s in %s", constants.IgnoreFileName, outcome, dir)

	return report.New(w).Print(outcome, constants.IgnoreFileName)
}

// setupLogging installs a file logger as the global logger when
// CURSORIGNORE_LOG is set. The returned func closes it and restores the
// previous global.
func setupLogging() func() {
	previous := logging.Global()
	previous.SetScript("cursorignore")

	logPath := os.Getenv(constants.EnvLogFile)
	if logPath == "" {
		return func() {}
	}

	logger, err := logging.New(logPath, os.Getenv(constants.EnvDebug) == "1")
	if err != nil {
		logging.Warn("Failed to setup logging: %v", err)
		return func() {}
	}
	logger.SetScript("cursorignore")
	logging.SetGlobal(logger)

	return func() {
		logging.SetGlobal(previous)
		_ = logger.Close()
	}
}
