package containerstorage

import (
	"fmt"
	"slices"
	"strings"
)

// PoolType selects which sku, option and size rules apply to a storage pool.
type PoolType string

// Supported storage pool types.
const (
	PoolTypeAzureDisk     PoolType = "azureDisk"
	PoolTypeEphemeralDisk PoolType = "ephemeralDisk"
	PoolTypeElasticSan    PoolType = "elasticSan"
)

// PoolSKU is the performance and replication tier of a storage pool.
type PoolSKU string

// Supported storage pool SKUs.
const (
	PoolSKUPremiumLRS     PoolSKU = "Premium_LRS"
	PoolSKUStandardLRS    PoolSKU = "Standard_LRS"
	PoolSKUStandardSSDLRS PoolSKU = "StandardSSD_LRS"
	PoolSKUUltraSSDLRS    PoolSKU = "UltraSSD_LRS"
	PoolSKUPremiumZRS     PoolSKU = "Premium_ZRS"
	PoolSKUPremiumV2LRS   PoolSKU = "PremiumV2_LRS"
	PoolSKUStandardSSDZRS PoolSKU = "StandardSSD_ZRS"
)

// PoolOption is the local device class backing an ephemeral disk pool.
type PoolOption string

// Supported ephemeral disk options.
const (
	PoolOptionNVMe PoolOption = "NVMe"
	PoolOptionSSD  PoolOption = "SSD"
)

// DefaultPoolType is used when --storage-pool-type is not supplied.
const DefaultPoolType = PoolTypeAzureDisk

// PoolTypes lists every accepted pool type in flag help order.
var PoolTypes = []PoolType{PoolTypeAzureDisk, PoolTypeEphemeralDisk, PoolTypeElasticSan}

// PoolSKUs lists every accepted pool SKU in flag help order.
var PoolSKUs = []PoolSKU{
	PoolSKUPremiumLRS,
	PoolSKUStandardLRS,
	PoolSKUStandardSSDLRS,
	PoolSKUUltraSSDLRS,
	PoolSKUPremiumZRS,
	PoolSKUPremiumV2LRS,
	PoolSKUStandardSSDZRS,
}

// PoolOptions lists every accepted ephemeral disk option.
var PoolOptions = []PoolOption{PoolOptionNVMe, PoolOptionSSD}

// ElasticSanSKUs are the only SKUs an elasticSan pool can be created with.
var ElasticSanSKUs = []PoolSKU{PoolSKUPremiumLRS, PoolSKUPremiumZRS}

// ParsePoolType converts a flag value into a PoolType.
func ParsePoolType(s string) (PoolType, error) {
	if !slices.Contains(PoolTypes, PoolType(s)) {
		return "", invalidValue(fmt.Sprintf("Invalid --storage-pool-type value %q. Allowed values are %s.", s, joinValues(PoolTypes)))
	}
	return PoolType(s), nil
}

// ParsePoolSKU converts a flag value into a PoolSKU.
func ParsePoolSKU(s string) (PoolSKU, error) {
	if !slices.Contains(PoolSKUs, PoolSKU(s)) {
		return "", invalidValue(fmt.Sprintf("Invalid --storage-pool-sku value %q. Allowed values are %s.", s, joinValues(PoolSKUs)))
	}
	return PoolSKU(s), nil
}

// ParsePoolOption converts a flag value into a PoolOption.
func ParsePoolOption(s string) (PoolOption, error) {
	if !slices.Contains(PoolOptions, PoolOption(s)) {
		return "", invalidValue(fmt.Sprintf("Invalid --storage-pool-option value %q. Allowed values are %s.", s, joinValues(PoolOptions)))
	}
	return PoolOption(s), nil
}

// joinValues renders enum values as a comma separated list for messages.
func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
