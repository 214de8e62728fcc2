package modules

import (
	"context"

	"ppmdesk.io/ppmdesk/internal/api/handlers"
	"ppmdesk.io/ppmdesk/internal/service"
	"ppmdesk.io/ppmdesk/internal/usecase"
)

// AssetModule wires the asset grid, asset detail and discipline
// reassignment.
type AssetModule struct {
	assets   *service.AssetService
	reassign *usecase.ReassignDisciplineUseCase
}

// NewAssetModule creates an asset module with explicit constructor wiring.
func NewAssetModule(infra *Infrastructure) *AssetModule {
	return &AssetModule{
		assets:   service.NewAssetService(infra.Provider, infra.Provider, infra.Pools.Query),
		reassign: usecase.NewReassignDisciplineUseCase(infra.Provider).WithAuditLogger(infra.AuditLogger),
	}
}

func (m *AssetModule) Name() string { return "asset" }

func (m *AssetModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.AssetService = m.assets
	deps.ReassignUC = m.reassign
}

func (m *AssetModule) Shutdown(context.Context) error { return nil }
