package modules

import (
	"context"

	"ppmdesk.io/ppmdesk/internal/api/handlers"
	"ppmdesk.io/ppmdesk/internal/service"
	"ppmdesk.io/ppmdesk/internal/usecase"
)

// ServicePlanModule wires the PPM grid, plan detail tabs, bulk revision and
// the calendar.
type ServicePlanModule struct {
	plans      *service.ServicePlanService
	calendar   *service.CalendarService
	createPlan *usecase.CreateServicePlanUseCase
	saveInstr  *usecase.SaveInstructionsUseCase
	bulk       *usecase.BulkRevisionUseCase
}

// NewServicePlanModule creates a service plan module with explicit
// constructor wiring.
func NewServicePlanModule(infra *Infrastructure) *ServicePlanModule {
	p := infra.Provider
	plans := service.NewServicePlanService(p, infra.Pools.Mutation)
	return &ServicePlanModule{
		plans:      plans,
		calendar:   service.NewCalendarService(p),
		createPlan: usecase.NewCreateServicePlanUseCase(p, infra.Pools.Mutation).WithAuditLogger(infra.AuditLogger),
		saveInstr:  usecase.NewSaveInstructionsUseCase(p, plans, infra.Pools.Mutation),
		bulk:       usecase.NewBulkRevisionUseCase(p, p, plans, infra.AuditLogger, infra.Config.BulkRevision.Atomic),
	}
}

func (m *ServicePlanModule) Name() string { return "service_plan" }

func (m *ServicePlanModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.ServicePlans = m.plans
	deps.CalendarService = m.calendar
	deps.CreatePlanUC = m.createPlan
	deps.SaveInstrUC = m.saveInstr
	deps.BulkRevisionUC = m.bulk
}

func (m *ServicePlanModule) Shutdown(context.Context) error { return nil }
