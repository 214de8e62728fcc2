package modules

import (
	"context"

	"ppmdesk.io/ppmdesk/internal/api/handlers"
	"ppmdesk.io/ppmdesk/internal/service"
)

// EstateModule wires the organization/building/location hierarchy and the
// reference pick lists.
type EstateModule struct {
	estate    *service.EstateService
	reference *service.ReferenceService
}

// NewEstateModule creates an estate module with explicit constructor wiring.
func NewEstateModule(infra *Infrastructure) *EstateModule {
	return &EstateModule{
		estate:    service.NewEstateService(infra.Provider),
		reference: service.NewReferenceService(infra.Provider),
	}
}

func (m *EstateModule) Name() string { return "estate" }

func (m *EstateModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.EstateService = m.estate
	deps.ReferenceService = m.reference
}

func (m *EstateModule) Shutdown(context.Context) error { return nil }
