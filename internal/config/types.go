package config

// ClusterState describes the managed cluster a command operates on.
type ClusterState struct {
	// ClusterName is the managed cluster name (required).
	ClusterName string `yaml:"clusterName" validate:"required"`

	// ResourceGroup is the Azure resource group of the cluster.
	ResourceGroup string `yaml:"resourceGroup,omitempty"`

	// ExtensionInstalled is true when Azure Container Storage is already
	// installed on the cluster.
	ExtensionInstalled bool `yaml:"extensionInstalled"`

	// AgentPools lists the node pools of the cluster in display order.
	AgentPools []AgentPool `yaml:"agentPools" validate:"min=1,unique=Name,dive"`
}

// AgentPool is a single node pool of the cluster.
type AgentPool struct {
	Name   string `yaml:"name" validate:"required,agentPoolName"`
	Count  int    `yaml:"count,omitempty" validate:"gte=0"`
	VMSize string `yaml:"vmSize,omitempty"`
}

// AgentPoolNames returns the pool names in file order.
func (s *ClusterState) AgentPoolNames() []string {
	names := make([]string, 0, len(s.AgentPools))
	for _, pool := range s.AgentPools {
		names = append(names, pool.Name)
	}
	return names
}
