// Package main provides the CLI entry point for xlartifact.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr, defaultArtifactsPath()))
}

// execute runs the CLI and returns the process exit status. Failures are
// reported as a single "Error:" line on stderr.
func execute(args []string, stdout, stderr io.Writer, defaultPath string) int {
	cmd := newRootCmd(newApp(stdout, stderr, defaultPath))
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", strings.ReplaceAll(err.Error(), "\n", " "))
		return 1
	}
	return 0
}

// defaultArtifactsPath is the directory holding the running executable,
// resolved once at startup.
func defaultArtifactsPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
