package containerstorage

// Params is the argument set of a single enable or disable invocation.
// A nil optional field means the corresponding flag was not supplied.
type Params struct {
	Enable  bool
	Disable bool

	PoolName   *string
	PoolType   PoolType
	PoolSKU    *PoolSKU
	PoolOption *PoolOption
	PoolSize   *string

	// NodePools is the raw --azure-container-storage-nodepools value.
	NodePools *string

	// AgentPoolNames and ExtensionInstalled describe the current cluster
	// and are supplied by the caller, not by flags.
	AgentPoolNames     []string
	ExtensionInstalled bool
}
