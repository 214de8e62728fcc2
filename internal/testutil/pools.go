package testutil

import (
	"testing"

	"ppmdesk.io/ppmdesk/internal/pkg/worker"
)

// Pools returns small worker pools released at cleanup.
func Pools(t testing.TB) *worker.Pools {
	t.Helper()
	pools, err := worker.NewPools(worker.PoolConfig{QueryPoolSize: 8, MutationPoolSize: 4})
	if err != nil {
		t.Fatalf("create worker pools: %v", err)
	}
	t.Cleanup(pools.Shutdown)
	return pools
}
