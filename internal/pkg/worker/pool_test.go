package worker

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"

	"ppmdesk.io/ppmdesk/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestNewPools(t *testing.T) {
	pools, err := NewPools(DefaultPoolConfig())
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	defer pools.Shutdown()

	if pools.Query == nil {
		t.Error("Query pool is nil")
	}
	if pools.Mutation == nil {
		t.Error("Mutation pool is nil")
	}
}

func TestGroup_WaitsForAll(t *testing.T) {
	pools, err := NewPools(PoolConfig{QueryPoolSize: 2, MutationPoolSize: 1})
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	defer pools.Shutdown()

	var done atomic.Int32
	g := pools.Query.Group(context.Background())
	for i := 0; i < 6; i++ {
		delay := time.Duration(6-i) * time.Millisecond
		g.Go(func(ctx context.Context) error {
			time.Sleep(delay)
			done.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if done.Load() != 6 {
		t.Errorf("completed = %d, want 6", done.Load())
	}
}

func TestGroup_ReturnsEarliestScheduledError(t *testing.T) {
	pools, err := NewPools(PoolConfig{QueryPoolSize: 4, MutationPoolSize: 1})
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	defer pools.Shutdown()

	errFirst := errors.New("first")
	errSecond := errors.New("second")
	var ran atomic.Int32

	g := pools.Query.Group(context.Background())
	g.Go(func(ctx context.Context) error { ran.Add(1); return nil })
	g.Go(func(ctx context.Context) error {
		// Finishes after the later failure.
		time.Sleep(5 * time.Millisecond)
		ran.Add(1)
		return errFirst
	})
	g.Go(func(ctx context.Context) error { ran.Add(1); return errSecond })

	if err := g.Wait(); !errors.Is(err, errFirst) {
		t.Errorf("Wait() error = %v, want %v", err, errFirst)
	}
	if ran.Load() != 3 {
		t.Errorf("ran = %d, a failure must not cancel siblings", ran.Load())
	}

	errs := g.Errors()
	if len(errs) != 3 || errs[0] != nil || !errors.Is(errs[2], errSecond) {
		t.Errorf("Errors() = %v", errs)
	}
}

func TestGroup_CancelledContext(t *testing.T) {
	pools, err := NewPools(DefaultPoolConfig())
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	defer pools.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := pools.Query.Group(ctx)
	g.Go(func(ctx context.Context) error {
		t.Error("task should not run")
		return nil
	})
	if err := g.Wait(); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() error = %v, want context.Canceled", err)
	}
}

func TestPools_RegisterMetrics(t *testing.T) {
	pools, err := NewPools(PoolConfig{QueryPoolSize: 3, MutationPoolSize: 2})
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	defer pools.Shutdown()

	reg := prometheus.NewPedanticRegistry()
	if err := pools.RegisterMetrics(reg); err != nil {
		t.Fatalf("RegisterMetrics() error = %v", err)
	}

	expected := `
# HELP ppmdesk_worker_pool_capacity Configured pool size.
# TYPE ppmdesk_worker_pool_capacity gauge
ppmdesk_worker_pool_capacity{pool="mutation"} 2
ppmdesk_worker_pool_capacity{pool="query"} 3
`
	if err := promtestutil.GatherAndCompare(reg, strings.NewReader(expected), "ppmdesk_worker_pool_capacity"); err != nil {
		t.Error(err)
	}
	if n := promtestutil.CollectAndCount(reg, "ppmdesk_worker_pool_running"); n != 2 {
		t.Errorf("running series = %d, want 2", n)
	}

	if err := pools.RegisterMetrics(reg); err == nil {
		t.Error("registering twice should fail")
	}
}
