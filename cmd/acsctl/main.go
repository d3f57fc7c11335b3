// Package main is the entry point for the acsctl CLI.
//
// acsctl checks the flags used to enable or disable Azure Container
// Storage on a managed Kubernetes cluster before any provisioning request
// is sent, using a local description of the cluster's current state.
//
// Commands: update, state, version, completion.
//
// For detailed usage information, run:
//
//	acsctl --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/acsctl/cmd/acsctl/commands"
	"github.com/imamik/acsctl/internal/containerstorage"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps rejected arguments to 2 and every other failure to 1.
func exitCode(err error) int {
	if containerstorage.IsArgumentError(err) {
		return 2
	}
	return 1
}
