package containerstorage

import (
	"regexp"
	"strconv"

	"k8s.io/apimachinery/pkg/api/resource"
)

const poolSizeFormatMessage = "Value for --storage-pool-size should be defined " +
	"with size followed by Gi or Ti e.g. 512Gi or 2Ti."

var poolSizePattern = regexp.MustCompile(`^\d+(\.\d+)?[GT]i$`)

// Smallest elasticSan pool, per unit.
const (
	minElasticSanGi = 1024
	minElasticSanTi = 1
)

// ParsePoolSize checks that s is a size in Gi or Ti (e.g. 512Gi, 2Ti)
// and returns it as a resource quantity.
func ParsePoolSize(s string) (resource.Quantity, error) {
	if !poolSizePattern.MatchString(s) {
		return resource.Quantity{}, argumentUsage(poolSizeFormatMessage)
	}

	qty, err := resource.ParseQuantity(s)
	if err != nil {
		return resource.Quantity{}, argumentUsage(poolSizeFormatMessage)
	}
	return qty, nil
}

// belowElasticSanMinimum reports whether s is smaller than 1Ti. The numeric
// part is read as a float64 and compared against the minimum in its own
// unit, so 1023.99999999999999999999Gi and 0.99999999999999999999Ti both
// round to the minimum. s must already match poolSizePattern.
func belowElasticSanMinimum(s string) bool {
	n, err := strconv.ParseFloat(s[:len(s)-2], 64)
	if err != nil {
		return true
	}

	if s[len(s)-2] == 'T' {
		return n < minElasticSanTi
	}
	return n < minElasticSanGi
}
