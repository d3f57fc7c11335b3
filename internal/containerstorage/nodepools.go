package containerstorage

import (
	"fmt"
	"regexp"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

// nodePoolListPattern matches a comma separated list of node pool names,
// each a lowercase letter followed by lowercase alphanumerics.
var nodePoolListPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(?:,[a-z][a-z0-9]*)*$`)

// ValidateNodePoolNames checks that list is well formed and that every
// node pool it names exists in agentPools. Checking stops at the first
// missing pool.
func ValidateNodePoolNames(list string, agentPools []string) error {
	if !nodePoolListPattern.MatchString(list) {
		return invalidValue(
			"Invalid --azure-container-storage-nodepools value. " +
				"Accepted value is a comma separated string of valid nodepool " +
				"names without any spaces.\nA valid nodepool name may only contain lowercase " +
				"alphanumeric characters and must begin with a lowercase letter.")
	}

	existing := sets.New(agentPools...)
	for _, name := range strings.Split(list, ",") {
		if existing.Has(name) {
			continue
		}
		if len(agentPools) == 1 {
			return invalidValue(fmt.Sprintf(
				"Nodepool: %s not found. "+
					"Please provide a comma separated string of existing nodepool names "+
					"in --azure-container-storage-nodepools."+
					"\nNodepool available in the cluster is: %s."+
					"\nAborting installation of Azure Container Storage.",
				name, agentPools[0]))
		}
		return invalidValue(fmt.Sprintf(
			"Nodepool: %s not found. "+
				"Please provide a comma separated string of existing nodepool names "+
				"in --azure-container-storage-nodepools."+
				"\nNodepools available in the cluster are: %s."+
				"\nAborting installation of Azure Container Storage.",
			name, strings.Join(agentPools, ", ")))
	}
	return nil
}
