// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/mattn/go-isatty"

	"github.com/imamik/acsctl/internal/config"
	"github.com/imamik/acsctl/internal/containerstorage"
	"github.com/imamik/acsctl/internal/logging"
)

// UpdateOptions carries the raw flag values of the update command.
// A nil pointer means the flag was not supplied on the command line.
type UpdateOptions struct {
	StatePath string
	Verbose   bool

	Enable  bool
	Disable bool

	PoolName   *string
	PoolType   *string
	PoolSKU    *string
	PoolOption *string
	PoolSize   *string
	NodePools  *string
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// findStateFile resolves the default cluster state path.
	findStateFile = config.FindStateFile

	// loadClusterState loads and validates the cluster state file.
	loadClusterState = config.Load

	// saveClusterState writes the cluster state file.
	saveClusterState = config.Save

	// newLogger creates the console logger for warnings and debug output.
	newLogger = func(verbose bool) logr.Logger {
		verbosity := 0
		if verbose {
			verbosity = 1
		}
		return logging.NewConsole(os.Stderr, verbosity)
	}

	// isTerminal reports whether stdout is an interactive terminal.
	isTerminal = isInteractiveTTY
)

// Update validates a request to enable or disable Azure Container Storage.
//
// The workflow is:
//  1. Converts the enum flags (type, sku, option) into typed values
//  2. Loads the cluster state to learn the install state and agent pools
//  3. Runs the enable or disable rules, stopping at the first violation
//  4. Prints a summary of the accepted request
//
// Argument errors are returned unwrapped so the CLI prints their message
// verbatim. A request that neither enables nor disables is a no-op.
func Update(ctx context.Context, opts UpdateOptions) error {
	log, err := logr.FromContext(ctx)
	if err != nil {
		log = newLogger(opts.Verbose)
	}

	if !opts.Enable && !opts.Disable {
		fmt.Println("Nothing to do: pass --enable-azure-container-storage or --disable-azure-container-storage.")
		return nil
	}

	params, err := buildParams(opts)
	if err != nil {
		return err
	}

	state, _, err := loadState(log, opts.StatePath)
	if err != nil {
		return err
	}
	params.AgentPoolNames = state.AgentPoolNames()
	params.ExtensionInstalled = state.ExtensionInstalled

	if err := containerstorage.NewValidator(log).Validate(params); err != nil {
		return err
	}

	if isTerminal() {
		fmt.Print(renderUpdateSummary(state, params))
	} else {
		fmt.Println(updateSummaryLine(state, params))
	}
	return nil
}

// buildParams converts raw flag values into validator params.
// Enum values are checked here, before any rule runs.
func buildParams(opts UpdateOptions) (containerstorage.Params, error) {
	params := containerstorage.Params{
		Enable:    opts.Enable,
		Disable:   opts.Disable,
		PoolName:  opts.PoolName,
		PoolType:  containerstorage.DefaultPoolType,
		PoolSize:  opts.PoolSize,
		NodePools: opts.NodePools,
	}

	if opts.PoolType != nil {
		poolType, err := containerstorage.ParsePoolType(*opts.PoolType)
		if err != nil {
			return params, err
		}
		params.PoolType = poolType
	}

	if opts.PoolSKU != nil {
		sku, err := containerstorage.ParsePoolSKU(*opts.PoolSKU)
		if err != nil {
			return params, err
		}
		params.PoolSKU = &sku
	}

	if opts.PoolOption != nil {
		option, err := containerstorage.ParsePoolOption(*opts.PoolOption)
		if err != nil {
			return params, err
		}
		params.PoolOption = &option
	}

	return params, nil
}

// loadState loads the cluster state from path, or from the discovered
// default location when path is empty. It also returns the resolved path.
func loadState(log logr.Logger, path string) (*config.ClusterState, string, error) {
	if path == "" {
		found, err := findStateFile()
		if err != nil {
			return nil, "", fmt.Errorf("no cluster state file found: %w\nPass --cluster-state or set %s", err, config.StatePathEnv)
		}
		path = found
	}

	state, err := loadClusterState(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load cluster state: %w", err)
	}

	log.V(1).Info("Loaded cluster state", "path", path, "cluster", state.ClusterName, "agentPools", len(state.AgentPools))
	return state, path, nil
}

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
