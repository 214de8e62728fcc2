package modules

import (
	"context"

	"ppmdesk.io/ppmdesk/internal/api/handlers"
)

// GovernanceModule owns operator login, audit, readiness and the
// stale-request tracker shared by every screen.
type GovernanceModule struct {
	infra *Infrastructure
}

func NewGovernanceModule(infra *Infrastructure) *GovernanceModule {
	return &GovernanceModule{infra: infra}
}

func (m *GovernanceModule) Name() string { return "governance" }

func (m *GovernanceModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil || m.infra == nil {
		return
	}
	deps.Operators = m.infra.Config.Security.Operators
	deps.Audit = m.infra.AuditLogger
	deps.Tracker = m.infra.Tracker
	if m.infra.Hasura != nil {
		deps.Upstream = m.infra.Hasura
	}
}

func (m *GovernanceModule) Shutdown(context.Context) error { return nil }
