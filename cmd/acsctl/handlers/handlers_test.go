package handlers

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/go-logr/logr"

	"github.com/imamik/acsctl/internal/config"
)

// saveAndRestoreFactories saves and restores handler factory functions.
func saveAndRestoreFactories(t *testing.T) {
	origFindStateFile := findStateFile
	origLoadClusterState := loadClusterState
	origSaveClusterState := saveClusterState
	origNewLogger := newLogger
	origIsTerminal := isTerminal

	t.Cleanup(func() {
		findStateFile = origFindStateFile
		loadClusterState = origLoadClusterState
		saveClusterState = origSaveClusterState
		newLogger = origNewLogger
		isTerminal = origIsTerminal
	})
}

// stubState makes the handlers load state without touching the filesystem.
func stubState(t *testing.T, state *config.ClusterState) {
	t.Helper()
	saveAndRestoreFactories(t)

	findStateFile = func() (string, error) { return "acsctl.yaml", nil }
	loadClusterState = func(string) (*config.ClusterState, error) { return state, nil }
	saveClusterState = func(*config.ClusterState, string) error { return nil }
	newLogger = func(bool) logr.Logger { return logr.Discard() }
	isTerminal = func() bool { return false }
}

func testState(installed bool) *config.ClusterState {
	return &config.ClusterState{
		ClusterName:        "demo",
		ResourceGroup:      "rg-demo",
		ExtensionInstalled: installed,
		AgentPools: []config.AgentPool{
			{Name: "nodepool1", Count: 3, VMSize: "Standard_D4s_v5"},
			{Name: "storage", Count: 3},
		},
	}
}

func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}
