package containerstorage

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/go-logr/logr"
)

// poolNamePattern is a DNS-1123 subdomain: dot separated labels of lowercase
// alphanumerics and '-', each starting and ending with an alphanumeric.
var poolNamePattern = regexp.MustCompile(`^[a-z0-9]([-a-z0-9]*[a-z0-9])?(\.[a-z0-9]([-a-z0-9]*[a-z0-9])?)*$`)

// Validator checks enable and disable requests. It keeps no state between
// calls and is safe for concurrent use.
type Validator struct {
	log logr.Logger
}

// NewValidator creates a Validator that reports non-fatal warnings to log.
func NewValidator(log logr.Logger) *Validator {
	return &Validator{log: log}
}

// Validate returns the first rule p violates, or nil.
// Requests that neither enable nor disable the extension are not checked.
func (v *Validator) Validate(p Params) error {
	if p.Enable && p.Disable {
		return mutuallyExclusive(
			"Conflicting flags. Cannot set --enable-azure-container-storage " +
				"and --disable-azure-container-storage together.")
	}

	switch {
	case p.Disable:
		return validateDisable(p)
	case p.Enable:
		if err := v.validateEnable(p); err != nil {
			return err
		}
		// An omitted node pool list is left to the caller's default.
		if p.NodePools == nil {
			return nil
		}
		return ValidateNodePoolNames(*p.NodePools, p.AgentPoolNames)
	}
	return nil
}

func validateDisable(p Params) error {
	if !p.ExtensionInstalled {
		return invalidValue(
			"Invalid usage of --disable-azure-container-storage. " +
				"Azure Container Storage is not enabled on the cluster. " +
				"Aborting disabling of Azure Container Storage.")
	}

	conflicts := []struct {
		flag string
		set  bool
	}{
		{"--storage-pool-name", p.PoolName != nil},
		{"--storage-pool-sku", p.PoolSKU != nil},
		{"--storage-pool-size", p.PoolSize != nil},
		{"--storage-pool-option", p.PoolOption != nil},
		{"--azure-container-storage-nodepools", p.NodePools != nil},
	}
	for _, c := range conflicts {
		if c.set {
			return mutuallyExclusive(fmt.Sprintf(
				"Conflicting flags. Cannot define %s value "+
					"when --disable-azure-container-storage is set.", c.flag))
		}
	}
	return nil
}

func (v *Validator) validateEnable(p Params) error {
	if p.ExtensionInstalled {
		return invalidValue(
			"Invalid usage of --enable-azure-container-storage. " +
				"Azure Container Storage is already enabled on the cluster. " +
				"Aborting installation of Azure Container Storage.")
	}

	if p.PoolName != nil && !poolNamePattern.MatchString(*p.PoolName) {
		return invalidValue(
			"Invalid --storage-pool-name value. " +
				"Accepted values are lowercase alphanumeric characters, " +
				"'-' or '.', and must start and end with an alphanumeric character.")
	}

	if p.PoolSKU != nil {
		switch {
		case p.PoolType == PoolTypeEphemeralDisk:
			return argumentUsage("Cannot set --storage-pool-sku when --enable-azure-container-storage is ephemeralDisk.")
		case p.PoolType == PoolTypeElasticSan && !slices.Contains(ElasticSanSKUs, *p.PoolSKU):
			return argumentUsage(fmt.Sprintf(
				"Invalid --storage-pool-sku value. "+
					"Supported value for --storage-pool-sku are %s "+
					"when --enable-azure-container-storage is set to elasticSan.",
				joinValues(ElasticSanSKUs)))
		}
	}

	if p.PoolType != PoolTypeEphemeralDisk && p.PoolOption != nil {
		return argumentUsage("Cannot set --storage-pool-option when --enable-azure-container-storage is not ephemeralDisk.")
	}

	if p.PoolType == PoolTypeEphemeralDisk && p.PoolOption != nil && *p.PoolOption == PoolOptionSSD {
		return argumentUsage("--storage-pool-option Temp storage (SSD) currently not supported.")
	}

	if p.PoolSize != nil {
		if _, err := ParsePoolSize(*p.PoolSize); err != nil {
			return err
		}

		switch p.PoolType {
		case PoolTypeElasticSan:
			if belowElasticSanMinimum(*p.PoolSize) {
				return argumentUsage(
					"Value for --storage-pool-size must be at least 1Ti when " +
						"--enable-azure-container-storage is elasticSan.")
			}
		case PoolTypeEphemeralDisk:
			v.log.Info("WARNING: Storage pools using Ephemeral disk use all capacity available on the local device. " +
				" --storage-pool-size will be ignored.")
		}
	}

	return nil
}
