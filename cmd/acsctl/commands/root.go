// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the acsctl CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "acsctl",
		Short:         "Validate Azure Container Storage settings for a managed cluster",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug output to stderr")

	cmd.AddCommand(Update())
	cmd.AddCommand(State())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}

// verboseFlag reads the inherited --verbose flag, false when run standalone.
func verboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return false
	}
	return verbose
}
