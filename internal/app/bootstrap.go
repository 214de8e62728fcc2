// Package app is the composition root. Bootstrap stays orchestration-only:
// modules build their own services.
package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"ppmdesk.io/ppmdesk/internal/api/handlers"
	"ppmdesk.io/ppmdesk/internal/app/modules"
	"ppmdesk.io/ppmdesk/internal/config"
	"ppmdesk.io/ppmdesk/internal/pkg/worker"
)

// Application holds composed application dependencies.
type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	Pools   *worker.Pools
	Modules []modules.Module
}

// Bootstrap initializes all dependencies using module-oriented manual DI.
// Nothing is contacted here: Hasura is first reached by a request or by
// the readiness check.
func Bootstrap(cfg *config.Config) (*Application, error) {
	infra, err := modules.NewInfrastructure(cfg)
	if err != nil {
		return nil, fmt.Errorf("init infrastructure: %w", err)
	}

	allModules := []modules.Module{
		modules.NewGovernanceModule(infra),
		modules.NewEstateModule(infra),
		modules.NewAssetModule(infra),
		modules.NewServicePlanModule(infra),
	}
	serverDeps := modules.NewServerDeps(cfg, allModules)
	server := handlers.NewServer(serverDeps)

	return &Application{
		Config: cfg,
		Router: newRouter(server, RouterDeps{
			Config:   cfg,
			JWTCfg:   serverDeps.JWTCfg,
			Metrics:  infra.HTTPMetrics,
			Gatherer: infra.Registry,
		}),
		Pools:   infra.Pools,
		Modules: allModules,
	}, nil
}
