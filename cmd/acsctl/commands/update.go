package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/imamik/acsctl/cmd/acsctl/handlers"
	"github.com/imamik/acsctl/internal/containerstorage"
)

// Flag names shared with the validation messages.
const (
	flagEnable     = "enable-azure-container-storage"
	flagDisable    = "disable-azure-container-storage"
	flagPoolName   = "storage-pool-name"
	flagPoolType   = "storage-pool-type"
	flagPoolSKU    = "storage-pool-sku"
	flagPoolOption = "storage-pool-option"
	flagPoolSize   = "storage-pool-size"
	flagNodePools  = "azure-container-storage-nodepools"
	flagState      = "cluster-state"
)

// Update returns the command that validates enabling or disabling
// Azure Container Storage.
//
// Flags:
//
//	--enable-azure-container-storage / --disable-azure-container-storage
//	--storage-pool-name, --storage-pool-type, --storage-pool-sku,
//	--storage-pool-option, --storage-pool-size
//	--azure-container-storage-nodepools
//	--cluster-state, -s: Path to the cluster state file (default: auto-detect acsctl.yaml)
func Update() *cobra.Command {
	var (
		opts       handlers.UpdateOptions
		poolName   string
		poolType   string
		poolSKU    string
		poolOption string
		poolSize   string
		nodePools  string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Validate enabling or disabling Azure Container Storage",
		Long: `Validate a request to enable or disable Azure Container Storage.

The flags are checked against each other and against the cluster state
file before any provisioning request is made. The first problem found is
reported and the command exits with status 2.

If no state file is given, acsctl.yaml is looked up in the current
directory and its parents, or taken from $ACSCTL_STATE.

Examples:
  # Enable with an Elastic SAN pool on two node pools
  acsctl update --enable-azure-container-storage \
    --storage-pool-type elasticSan --storage-pool-size 2Ti \
    --azure-container-storage-nodepools nodepool1,storage

  # Disable
  acsctl update --disable-azure-container-storage`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			opts.Verbose = verboseFlag(cmd)
			opts.PoolName = changed(flags, flagPoolName, poolName)
			opts.PoolType = changed(flags, flagPoolType, poolType)
			opts.PoolSKU = changed(flags, flagPoolSKU, poolSKU)
			opts.PoolOption = changed(flags, flagPoolOption, poolOption)
			opts.PoolSize = changed(flags, flagPoolSize, poolSize)
			opts.NodePools = changed(flags, flagNodePools, nodePools)
			return handlers.Update(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.Enable, flagEnable, false, "Enable Azure Container Storage on the cluster")
	flags.BoolVar(&opts.Disable, flagDisable, false, "Disable Azure Container Storage on the cluster")
	flags.StringVar(&poolName, flagPoolName, "", "Name of the storage pool")
	flags.StringVar(&poolType, flagPoolType, string(containerstorage.DefaultPoolType),
		"Storage pool type: "+enumList(containerstorage.PoolTypes))
	flags.StringVar(&poolSKU, flagPoolSKU, "", "Storage pool SKU: "+enumList(containerstorage.PoolSKUs))
	flags.StringVar(&poolOption, flagPoolOption, "", "Ephemeral disk option: "+enumList(containerstorage.PoolOptions))
	flags.StringVar(&poolSize, flagPoolSize, "", "Storage pool size, e.g. 512Gi or 2Ti")
	flags.StringVar(&nodePools, flagNodePools, "", "Comma separated node pools to install on")
	flags.StringVarP(&opts.StatePath, flagState, "s", "", "Path to cluster state file (default: acsctl.yaml)")

	_ = cmd.RegisterFlagCompletionFunc(flagPoolType, completeValues(containerstorage.PoolTypes))
	_ = cmd.RegisterFlagCompletionFunc(flagPoolSKU, completeValues(containerstorage.PoolSKUs))
	_ = cmd.RegisterFlagCompletionFunc(flagPoolOption, completeValues(containerstorage.PoolOptions))

	return cmd
}

// changed returns a pointer to value when the flag was set on the command
// line, and nil otherwise. An explicitly empty value counts as set.
func changed(flags *pflag.FlagSet, name, value string) *string {
	if !flags.Changed(name) {
		return nil
	}
	return &value
}

func enumList[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, "|")
}

func completeValues[T ~string](values []T) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		out := make([]string, len(values))
		for i, v := range values {
			out[i] = string(v)
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}
