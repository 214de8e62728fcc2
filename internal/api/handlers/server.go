// Package handlers implements the PPM Desk JSON API.
//
// Handlers are thin: they bind the request, call one service or use case,
// and either write the result or push the error with c.Error for the
// error middleware to render. Server implements generated.ServerInterface;
// routes come from api/openapi.yaml and are registered by internal/app.
package handlers

import (
	"context"

	"ppmdesk.io/ppmdesk/internal/api/generated"
	"ppmdesk.io/ppmdesk/internal/api/middleware"
	"ppmdesk.io/ppmdesk/internal/config"
	"ppmdesk.io/ppmdesk/internal/governance/audit"
	"ppmdesk.io/ppmdesk/internal/pkg/inflight"
	"ppmdesk.io/ppmdesk/internal/service"
	"ppmdesk.io/ppmdesk/internal/usecase"
)

var _ generated.ServerInterface = (*Server)(nil)

// Pinger checks that the upstream GraphQL API is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds every dependency of the HTTP handlers.
type Server struct {
	jwtCfg    middleware.JWTConfig
	operators map[string]config.OperatorConfig
	audit     *audit.Logger
	upstream  Pinger
	tracker   *inflight.Tracker

	estate       *service.EstateService
	reference    *service.ReferenceService
	assets       *service.AssetService
	plans        *service.ServicePlanService
	calendar     *service.CalendarService
	reassignUC   *usecase.ReassignDisciplineUseCase
	bulkUC       *usecase.BulkRevisionUseCase
	createPlanUC *usecase.CreateServicePlanUseCase
	saveInstrUC  *usecase.SaveInstructionsUseCase
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI: modules fill in the fields they own.
type ServerDeps struct {
	JWTCfg    middleware.JWTConfig
	Operators []config.OperatorConfig
	Audit     *audit.Logger
	Upstream  Pinger
	Tracker   *inflight.Tracker

	EstateService    *service.EstateService
	ReferenceService *service.ReferenceService
	AssetService     *service.AssetService
	ServicePlans     *service.ServicePlanService
	CalendarService  *service.CalendarService
	ReassignUC       *usecase.ReassignDisciplineUseCase
	BulkRevisionUC   *usecase.BulkRevisionUseCase
	CreatePlanUC     *usecase.CreateServicePlanUseCase
	SaveInstrUC      *usecase.SaveInstructionsUseCase
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	operators := make(map[string]config.OperatorConfig, len(deps.Operators))
	for _, op := range deps.Operators {
		operators[op.Username] = op
	}
	tracker := deps.Tracker
	if tracker == nil {
		tracker = inflight.NewTracker()
	}
	return &Server{
		jwtCfg:       deps.JWTCfg,
		operators:    operators,
		audit:        deps.Audit,
		upstream:     deps.Upstream,
		tracker:      tracker,
		estate:       deps.EstateService,
		reference:    deps.ReferenceService,
		assets:       deps.AssetService,
		plans:        deps.ServicePlans,
		calendar:     deps.CalendarService,
		reassignUC:   deps.ReassignUC,
		bulkUC:       deps.BulkRevisionUC,
		createPlanUC: deps.CreatePlanUC,
		saveInstrUC:  deps.SaveInstrUC,
	}
}

// actorFromCtx returns the authenticated operator name.
func actorFromCtx(ctx context.Context) string {
	if name := middleware.GetUsername(ctx); name != "" {
		return name
	}
	return "anonymous"
}
