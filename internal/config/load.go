package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultStateFilename is the cluster state file looked up when no path is given.
const DefaultStateFilename = "acsctl.yaml"

// StatePathEnv overrides the cluster state file location.
const StatePathEnv = "ACSCTL_STATE"

// Load reads, parses and validates a cluster state file.
func Load(path string) (*ClusterState, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cluster state file: %w", err)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes parses and validates a cluster state document.
func LoadFromBytes(data []byte) (*ClusterState, error) {
	var state ClusterState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := state.Validate(); err != nil {
		return nil, err
	}

	return &state, nil
}

// FindStateFile resolves the cluster state path. It prefers $ACSCTL_STATE,
// then looks for acsctl.yaml in the current directory and its parents.
func FindStateFile() (string, error) {
	if path := os.Getenv(StatePathEnv); path != "" {
		return path, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := cwd
	for {
		path := filepath.Join(dir, DefaultStateFilename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("cluster state file %s not found", DefaultStateFilename)
}

// Save writes the cluster state to path.
func Save(state *ClusterState, path string) error {
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal cluster state: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write cluster state file: %w", err)
	}

	return nil
}
