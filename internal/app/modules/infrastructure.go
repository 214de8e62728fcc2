package modules

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"ppmdesk.io/ppmdesk/internal/api/middleware"
	"ppmdesk.io/ppmdesk/internal/config"
	"ppmdesk.io/ppmdesk/internal/governance/audit"
	"ppmdesk.io/ppmdesk/internal/hasura"
	"ppmdesk.io/ppmdesk/internal/pkg/inflight"
	"ppmdesk.io/ppmdesk/internal/pkg/worker"
	"ppmdesk.io/ppmdesk/internal/provider"
)

// Infrastructure holds shared cross-cutting dependencies for all modules.
// It is a provider, not a Module.
type Infrastructure struct {
	Config      *config.Config
	Registry    *prometheus.Registry
	HTTPMetrics *middleware.HTTPMetrics
	Pools       *worker.Pools
	Hasura      *hasura.Client
	Provider    provider.Provider
	AuditLogger *audit.Logger
	Tracker     *inflight.Tracker
}

// NewInfrastructure builds the metrics registry, worker pools, Hasura
// client and data provider.
func NewInfrastructure(cfg *config.Config) (*Infrastructure, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics, err := middleware.NewHTTPMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("register http metrics: %w", err)
	}
	hasuraMetrics, err := hasura.NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("register hasura metrics: %w", err)
	}

	client, err := NewHasuraClient(cfg, hasuraMetrics)
	if err != nil {
		return nil, err
	}

	pools, err := worker.NewPools(worker.PoolConfig{
		QueryPoolSize:    cfg.Worker.QueryPoolSize,
		MutationPoolSize: cfg.Worker.MutationPoolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("init worker pools: %w", err)
	}
	if err := pools.RegisterMetrics(reg); err != nil {
		pools.Shutdown()
		return nil, err
	}

	p := provider.NewHasuraProvider(client)
	return &Infrastructure{
		Config:      cfg,
		Registry:    reg,
		HTTPMetrics: httpMetrics,
		Pools:       pools,
		Hasura:      client,
		Provider:    p,
		AuditLogger: audit.NewLogger(p),
		Tracker:     inflight.NewTracker(),
	}, nil
}

// NewHasuraClient parses the embedded documents and creates the client.
// metrics may be nil.
func NewHasuraClient(cfg *config.Config, metrics *hasura.Metrics) (*hasura.Client, error) {
	catalog, err := hasura.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("load graphql documents: %w", err)
	}
	client, err := hasura.NewClient(hasura.Config{
		Endpoint:    cfg.Hasura.Endpoint,
		AdminSecret: cfg.Hasura.AdminSecret,
		Role:        cfg.Hasura.Role,
		Timeout:     cfg.Hasura.Timeout,
	}, catalog, metrics)
	if err != nil {
		return nil, fmt.Errorf("init hasura client: %w", err)
	}
	return client, nil
}

// Close releases infra resources.
func (i *Infrastructure) Close() {
	if i == nil {
		return
	}
	if i.Pools != nil {
		i.Pools.Shutdown()
	}
}
