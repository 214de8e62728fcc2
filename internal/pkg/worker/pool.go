// Package worker provides goroutine pool management.
//
// Naked goroutines are not used for request work. Every parallel GraphQL
// call goes through a bounded pool with context propagation, so a burst of
// screen loads cannot open an unbounded number of upstream connections.
package worker

import (
	"errors"
	"fmt"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"ppmdesk.io/ppmdesk/internal/pkg/logger"
)

// ErrPoolClosed is returned when submitting to a closed pool.
var ErrPoolClosed = errors.New("worker pool is closed")

// Pool wraps an ants.Pool. Work is submitted through Group.
type Pool struct {
	pool *ants.Pool
	name string
}

// Pools is the worker pool collection.
type Pools struct {
	// Query runs the parallel reads behind a screen load.
	Query *Pool
	// Mutation runs fan-out writes (building links, instruction inserts).
	Mutation *Pool
}

// PoolConfig contains worker pool configuration.
type PoolConfig struct {
	QueryPoolSize    int
	MutationPoolSize int
}

// DefaultPoolConfig returns default configuration.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		QueryPoolSize:    64,
		MutationPoolSize: 16,
	}
}

// NewPools creates the worker pool collection.
func NewPools(cfg PoolConfig) (*Pools, error) {
	panicHandler := func(p interface{}) {
		logger.Error("Worker panic recovered",
			zap.Any("panic", p),
			zap.Stack("stack"),
		)
	}

	queryAnts, err := ants.NewPool(cfg.QueryPoolSize,
		ants.WithPanicHandler(panicHandler),
		ants.WithNonblocking(false),
		ants.WithExpiryDuration(10*time.Second),
	)
	if err != nil {
		return nil, err
	}

	mutationAnts, err := ants.NewPool(cfg.MutationPoolSize,
		ants.WithPanicHandler(panicHandler),
		ants.WithNonblocking(false),
		ants.WithExpiryDuration(30*time.Second),
	)
	if err != nil {
		queryAnts.Release()
		return nil, err
	}

	return &Pools{
		Query:    &Pool{pool: queryAnts, name: "query"},
		Mutation: &Pool{pool: mutationAnts, name: "mutation"},
	}, nil
}

// Shutdown releases all pools, waiting at most 30s for running tasks.
func (p *Pools) Shutdown() {
	const shutdownTimeout = 30 * time.Second
	if err := p.Query.pool.ReleaseTimeout(shutdownTimeout); err != nil {
		logger.Warn("Query pool shutdown timeout", zap.Error(err))
	}
	if err := p.Mutation.pool.ReleaseTimeout(shutdownTimeout); err != nil {
		logger.Warn("Mutation pool shutdown timeout", zap.Error(err))
	}
}

// RegisterMetrics exposes the occupancy of both pools as gauges on reg.
// Values are read at scrape time.
func (p *Pools) RegisterMetrics(reg prometheus.Registerer) error {
	for _, pool := range []*Pool{p.Query, p.Mutation} {
		gauges := []prometheus.Collector{
			poolGauge(pool, "running", "Goroutines currently running tasks.", pool.pool.Running),
			poolGauge(pool, "free", "Idle worker slots.", pool.pool.Free),
			poolGauge(pool, "capacity", "Configured pool size.", pool.pool.Cap),
		}
		for _, g := range gauges {
			if err := reg.Register(g); err != nil {
				return fmt.Errorf("register %s pool metrics: %w", pool.name, err)
			}
		}
	}
	return nil
}

func poolGauge(pool *Pool, name, help string, read func() int) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace:   "ppmdesk",
		Subsystem:   "worker_pool",
		Name:        name,
		Help:        help,
		ConstLabels: prometheus.Labels{"pool": pool.name},
	}, func() float64 { return float64(read()) })
}
