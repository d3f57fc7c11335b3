package handlers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/acsctl/internal/config"
	"github.com/imamik/acsctl/internal/containerstorage"
	"github.com/imamik/acsctl/internal/util/ptr"
)

func TestUpdate_NothingToDo(t *testing.T) {
	saveAndRestoreFactories(t)
	loadClusterState = func(string) (*config.ClusterState, error) {
		t.Fatal("state must not be loaded")
		return nil, nil
	}

	output := captureOutput(func() {
		err := Update(context.Background(), UpdateOptions{PoolName: ptr.String("-bad")})
		require.NoError(t, err)
	})

	assert.Contains(t, output, "Nothing to do")
}

func TestUpdate_EnableValid(t *testing.T) {
	stubState(t, testState(false))

	output := captureOutput(func() {
		err := Update(context.Background(), UpdateOptions{
			Enable:    true,
			PoolName:  ptr.String("my-pool.1"),
			PoolType:  ptr.String("elasticSan"),
			PoolSKU:   ptr.String("Premium_ZRS"),
			PoolSize:  ptr.String("1Ti"),
			NodePools: ptr.String("nodepool1,storage"),
		})
		require.NoError(t, err)
	})

	assert.Contains(t, output, "arguments valid: enable Azure Container Storage on demo")
	assert.Contains(t, output, "pool-name=my-pool.1")
	assert.Contains(t, output, "pool-type=elasticSan")
	assert.Contains(t, output, "pool-sku=Premium_ZRS")
	assert.Contains(t, output, "node-pools=nodepool1,storage")
}

func TestUpdate_DisableValid(t *testing.T) {
	stubState(t, testState(true))

	output := captureOutput(func() {
		err := Update(context.Background(), UpdateOptions{Disable: true, PoolType: ptr.String("azureDisk")})
		require.NoError(t, err)
	})

	assert.Equal(t, "arguments valid: disable Azure Container Storage on demo\n", output)
}

func TestUpdate_ArgumentErrorsAreUnwrapped(t *testing.T) {
	tests := []struct {
		name      string
		installed bool
		opts      UpdateOptions
		wantKind  containerstorage.Kind
		wantMsg   string
	}{
		{
			name:     "enable and disable",
			opts:     UpdateOptions{Enable: true, Disable: true},
			wantKind: containerstorage.KindMutuallyExclusive,
			wantMsg:  "Conflicting flags. Cannot set --enable-azure-container-storage",
		},
		{
			name:     "disable when not installed",
			opts:     UpdateOptions{Disable: true},
			wantKind: containerstorage.KindInvalidValue,
			wantMsg:  "Azure Container Storage is not enabled on the cluster.",
		},
		{
			name:      "disable with pool size",
			installed: true,
			opts:      UpdateOptions{Disable: true, PoolSize: ptr.String("1Ti")},
			wantKind:  containerstorage.KindMutuallyExclusive,
			wantMsg:   "Cannot define --storage-pool-size value",
		},
		{
			name:      "enable when installed",
			installed: true,
			opts:      UpdateOptions{Enable: true},
			wantKind:  containerstorage.KindInvalidValue,
			wantMsg:   "already enabled on the cluster",
		},
		{
			name:     "ephemeral disk with sku",
			opts:     UpdateOptions{Enable: true, PoolType: ptr.String("ephemeralDisk"), PoolSKU: ptr.String("Premium_LRS")},
			wantKind: containerstorage.KindArgumentUsage,
			wantMsg:  "Cannot set --storage-pool-sku when --enable-azure-container-storage is ephemeralDisk.",
		},
		{
			name:     "elastic san too small",
			opts:     UpdateOptions{Enable: true, PoolType: ptr.String("elasticSan"), PoolSize: ptr.String("500Gi")},
			wantKind: containerstorage.KindArgumentUsage,
			wantMsg:  "must be at least 1Ti",
		},
		{
			name:     "unknown node pool",
			opts:     UpdateOptions{Enable: true, NodePools: ptr.String("missing")},
			wantKind: containerstorage.KindInvalidValue,
			wantMsg:  "Nodepools available in the cluster are: nodepool1, storage.",
		},
		{
			name:     "unknown pool type",
			opts:     UpdateOptions{Enable: true, PoolType: ptr.String("blob")},
			wantKind: containerstorage.KindInvalidValue,
			wantMsg:  `Invalid --storage-pool-type value "blob"`,
		},
		{
			name:     "unknown sku",
			opts:     UpdateOptions{Enable: true, PoolSKU: ptr.String("Premium")},
			wantKind: containerstorage.KindInvalidValue,
			wantMsg:  `Invalid --storage-pool-sku value "Premium"`,
		},
		{
			name:     "unknown option",
			opts:     UpdateOptions{Enable: true, PoolType: ptr.String("ephemeralDisk"), PoolOption: ptr.String("HDD")},
			wantKind: containerstorage.KindInvalidValue,
			wantMsg:  `Invalid --storage-pool-option value "HDD"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubState(t, testState(tt.installed))

			err := Update(context.Background(), tt.opts)
			require.Error(t, err)

			var argErr *containerstorage.ArgumentError
			require.True(t, errors.As(err, &argErr))
			assert.Equal(t, tt.wantKind, argErr.Kind)
			assert.Same(t, argErr, err, "argument errors must reach the user unwrapped")
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestUpdate_EphemeralDiskSizeWarns(t *testing.T) {
	stubState(t, testState(false))

	var logged []string
	log := funcr.New(func(_, args string) { logged = append(logged, args) }, funcr.Options{})
	ctx := logr.NewContext(context.Background(), log)

	output := captureOutput(func() {
		err := Update(ctx, UpdateOptions{
			Enable:   true,
			PoolType: ptr.String("ephemeralDisk"),
			PoolSize: ptr.String("100Gi"),
		})
		require.NoError(t, err)
	})

	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], "--storage-pool-size will be ignored.")
	assert.Contains(t, output, "pool-size=100Gi (ignored)")
}

func TestUpdate_StateFileNotFound(t *testing.T) {
	saveAndRestoreFactories(t)
	findStateFile = func() (string, error) { return "", errors.New("cluster state file acsctl.yaml not found") }
	newLogger = func(bool) logr.Logger { return logr.Discard() }

	err := Update(context.Background(), UpdateOptions{Enable: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no cluster state file found")
	assert.Contains(t, err.Error(), config.StatePathEnv)
	assert.False(t, containerstorage.IsArgumentError(err))
}

func TestUpdate_ExplicitStatePath(t *testing.T) {
	saveAndRestoreFactories(t)
	newLogger = func(bool) logr.Logger { return logr.Discard() }
	isTerminal = func() bool { return false }
	findStateFile = func() (string, error) {
		t.Fatal("explicit path must skip discovery")
		return "", nil
	}

	var gotPath string
	loadClusterState = func(path string) (*config.ClusterState, error) {
		gotPath = path
		return testState(false), nil
	}

	captureOutput(func() {
		require.NoError(t, Update(context.Background(), UpdateOptions{Enable: true, StatePath: "custom.yaml"}))
	})
	assert.Equal(t, "custom.yaml", gotPath)
}

func TestUpdate_LoadError(t *testing.T) {
	saveAndRestoreFactories(t)
	newLogger = func(bool) logr.Logger { return logr.Discard() }
	loadClusterState = func(string) (*config.ClusterState, error) {
		return nil, errors.New("invalid cluster state")
	}

	err := Update(context.Background(), UpdateOptions{Disable: true, StatePath: "bad.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load cluster state: invalid cluster state")
}

func TestUpdate_InteractiveSummary(t *testing.T) {
	stubState(t, testState(false))
	isTerminal = func() bool { return true }

	output := captureOutput(func() {
		require.NoError(t, Update(context.Background(), UpdateOptions{Enable: true}))
	})

	assert.Contains(t, output, "acsctl: enable Azure Container Storage")
	assert.Contains(t, output, "Arguments are valid")
	assert.True(t, strings.Contains(output, "Pool type:") && strings.Contains(output, "azureDisk"))
}

func TestBuildParams_Defaults(t *testing.T) {
	params, err := buildParams(UpdateOptions{Enable: true})
	require.NoError(t, err)

	assert.Equal(t, containerstorage.PoolTypeAzureDisk, params.PoolType)
	assert.Nil(t, params.PoolSKU)
	assert.Nil(t, params.PoolOption)
	assert.Nil(t, params.NodePools)
}

func TestBuildParams_TypedEnums(t *testing.T) {
	params, err := buildParams(UpdateOptions{
		Enable:     true,
		PoolType:   ptr.String("ephemeralDisk"),
		PoolSKU:    ptr.String("Premium_LRS"),
		PoolOption: ptr.String("NVMe"),
	})
	require.NoError(t, err)

	assert.Equal(t, containerstorage.PoolTypeEphemeralDisk, params.PoolType)
	require.NotNil(t, params.PoolSKU)
	assert.Equal(t, containerstorage.PoolSKUPremiumLRS, *params.PoolSKU)
	require.NotNil(t, params.PoolOption)
	assert.Equal(t, containerstorage.PoolOptionNVMe, *params.PoolOption)
}
