package handlers

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
)

// StateOptions carries the flag values of the state command.
type StateOptions struct {
	StatePath string
	Verbose   bool

	// SetInstalled records the extension install state in the file when
	// non-nil, before the state is printed.
	SetInstalled *bool
}

// State prints the cluster state the update command validates against.
func State(ctx context.Context, opts StateOptions) error {
	log, err := logr.FromContext(ctx)
	if err != nil {
		log = newLogger(opts.Verbose)
	}

	state, path, err := loadState(log, opts.StatePath)
	if err != nil {
		return err
	}

	if opts.SetInstalled != nil && *opts.SetInstalled != state.ExtensionInstalled {
		state.ExtensionInstalled = *opts.SetInstalled
		if err := saveClusterState(state, path); err != nil {
			return fmt.Errorf("failed to save cluster state: %w", err)
		}
		log.V(1).Info("Updated cluster state", "path", path, "extensionInstalled", state.ExtensionInstalled)
	}

	installed := "not installed"
	if state.ExtensionInstalled {
		installed = "installed"
	}

	fmt.Printf("Cluster: %s\n", state.ClusterName)
	if state.ResourceGroup != "" {
		fmt.Printf("Resource group: %s\n", state.ResourceGroup)
	}
	fmt.Printf("Azure Container Storage: %s\n", installed)
	fmt.Printf("Agent pools (%d):\n", len(state.AgentPools))
	for _, pool := range state.AgentPools {
		vmSize := pool.VMSize
		if vmSize == "" {
			vmSize = "-"
		}
		fmt.Printf("  %-12s count=%-3d vmSize=%s\n", pool.Name, pool.Count, vmSize)
	}
	return nil
}
