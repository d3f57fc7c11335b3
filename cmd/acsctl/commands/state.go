package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/acsctl/cmd/acsctl/handlers"
)

const flagSetInstalled = "set-installed"

// State returns the command that prints the loaded cluster state.
func State() *cobra.Command {
	var (
		opts         handlers.StateOptions
		setInstalled bool
	)

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Show the cluster state used for validation",
		Long: `Show the cluster state used for validation.

Pass --set-installed=true after enabling Azure Container Storage, or
--set-installed=false after disabling it, to record the change in the
cluster state file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed(flagSetInstalled) {
				opts.SetInstalled = &setInstalled
			}
			opts.Verbose = verboseFlag(cmd)
			return handlers.State(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.StatePath, flagState, "s", "", "Path to cluster state file (default: acsctl.yaml)")
	cmd.Flags().BoolVar(&setInstalled, flagSetInstalled, false, "Record whether Azure Container Storage is installed")

	return cmd
}
