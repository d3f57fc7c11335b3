// Package containerstorage validates the argument set used to enable or
// disable Azure Container Storage on a managed cluster.
//
// [Validator.Validate] runs the enable or disable rules against [Params]
// before any provisioning request is built. Checks run in a fixed order and
// the first violation is returned as an [*ArgumentError] whose message is
// shown to the user verbatim. Nothing is retried or aggregated.
package containerstorage
