// Package config loads the cluster state the storage commands validate
// against.
//
// A [ClusterState] records whether Azure Container Storage is already
// installed and which agent pools exist. It is read from a YAML file
// (acsctl.yaml by default) discovered in the working directory or one of
// its parents, and checked with struct tags before use.
package config
