package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"ppmdesk.io/ppmdesk/internal/domain"
	"ppmdesk.io/ppmdesk/internal/governance/audit"
	apperrors "ppmdesk.io/ppmdesk/internal/pkg/errors"
	"ppmdesk.io/ppmdesk/internal/pkg/logger"
	"ppmdesk.io/ppmdesk/internal/pkg/worker"
	"ppmdesk.io/ppmdesk/internal/provider"
	"ppmdesk.io/ppmdesk/internal/service"
)

// BuildingLinkInput attaches the new plan to one building. Unset values
// inherit from the plan.
type BuildingLinkInput struct {
	BuildingID   int         `json:"fk_bld_id" validate:"required,gt=0"`
	Cost         *float64    `json:"ppm_cost,omitempty" validate:"omitempty,gte=0"`
	SupplierID   *int        `json:"fk_sup_id,omitempty" validate:"omitempty,gt=0"`
	ScheduleDate domain.Date `json:"ppm_b_schedule_date,omitzero"`
}

// InstructionInput is one work instruction.
type InstructionInput struct {
	Detail string `json:"inst_set_detail" validate:"required"`
	Pass   string `json:"inst_set_pass"`
}

// CreateServicePlanInput represents the new-plan form.
type CreateServicePlanInput struct {
	ServiceName      string      `json:"ppm_service_name" validate:"required"`
	Description      string      `json:"ppm_description" validate:"required"`
	Standard         string      `json:"ppm_standard" validate:"required"`
	Status           string      `json:"ppm_status" validate:"required"`
	Type             string      `json:"ppm_type" validate:"required"`
	Frequency        string      `json:"ppm_frequency" validate:"required"`
	Cost             *float64    `json:"ppm_cost" validate:"required,gte=0"`
	DisciplineID     int         `json:"fk_disc_id" validate:"required"`
	SupplierID       int         `json:"fk_sup_id" validate:"required"`
	Schedule         domain.Date `json:"ppm_schedule" validate:"required"`
	CompliancePPM    bool        `json:"compliance_ppm"`
	ComplianceExpiry domain.Date `json:"compliance_ppm_expiry,omitzero"`
	Notes            string      `json:"notes,omitempty"`

	Buildings    []BuildingLinkInput `json:"buildings" validate:"required,min=1,dive"`
	Instructions []InstructionInput  `json:"instructions" validate:"dive"`

	CreatedBy string `json:"-"`
}

// CreateServicePlanOutput identifies what was created. On a partial
// failure PlanID is still set.
type CreateServicePlanOutput struct {
	PlanID          int   `json:"ppm_id"`
	BuildingPlanIDs []int `json:"ppm_bsp_keys"`
	InstructionIDs  []int `json:"pk_inst_set_ids"`
}

// CreateServicePlanUseCase inserts a plan, then its building links and
// instructions in parallel.
type CreateServicePlanUseCase struct {
	plans       provider.ServicePlanProvider
	pool        *worker.Pool
	auditLogger *audit.Logger
}

// NewCreateServicePlanUseCase creates a new CreateServicePlanUseCase.
func NewCreateServicePlanUseCase(plans provider.ServicePlanProvider, pool *worker.Pool) *CreateServicePlanUseCase {
	return &CreateServicePlanUseCase{plans: plans, pool: pool}
}

// WithAuditLogger sets the audit logger (optional dependency).
func (uc *CreateServicePlanUseCase) WithAuditLogger(al *audit.Logger) *CreateServicePlanUseCase {
	uc.auditLogger = al
	return uc
}

// Execute runs the three steps. Every parallel insert resolves before the
// next step starts. Nothing is compensated on a later failure.
func (uc *CreateServicePlanUseCase) Execute(ctx context.Context, input CreateServicePlanInput) (*CreateServicePlanOutput, error) {
	if err := service.Validate(input); err != nil {
		return nil, err
	}

	planID, err := uc.plans.CreateServicePlan(ctx, planColumns(input))
	if err != nil {
		return nil, fmt.Errorf("create service plan: %w", err)
	}
	out := &CreateServicePlanOutput{PlanID: planID}

	out.BuildingPlanIDs = make([]int, len(input.Buildings))
	g := uc.pool.Group(ctx)
	for i, link := range input.Buildings {
		g.Go(func(ctx context.Context) (err error) {
			out.BuildingPlanIDs[i], err = uc.plans.LinkServicePlanToBuilding(ctx, linkColumns(planID, input, link))
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return out, partialFailure(ctx, planID, "link buildings", err)
	}

	out.InstructionIDs = make([]int, len(input.Instructions))
	g = uc.pool.Group(ctx)
	for i, inst := range input.Instructions {
		g.Go(func(ctx context.Context) (err error) {
			out.InstructionIDs[i], err = uc.plans.InsertInstruction(ctx, planID, inst.Detail, inst.Pass)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return out, partialFailure(ctx, planID, "insert instructions", err)
	}

	logger.FromContext(ctx).Info("Service plan created",
		zap.Int("ppm_id", planID),
		zap.Int("buildings", len(out.BuildingPlanIDs)),
		zap.Int("instructions", len(out.InstructionIDs)),
	)
	if uc.auditLogger != nil {
		uc.auditLogger.LogAction(ctx, "service_plan.create", "ppm_service_plan", strconv.Itoa(planID), input.CreatedBy,
			map[string]interface{}{"ppm_bsp_keys": out.BuildingPlanIDs})
	}
	return out, nil
}

func planColumns(in CreateServicePlanInput) provider.Columns {
	cols := provider.Columns{
		"ppm_service_name": in.ServiceName,
		"ppm_description":  in.Description,
		"ppm_standard":     in.Standard,
		"ppm_status":       in.Status,
		"ppm_type":         in.Type,
		"ppm_frequency":    in.Frequency,
		"ppm_cost":         *in.Cost,
		"fk_disc_id":       in.DisciplineID,
		"fk_sup_id":        in.SupplierID,
		"ppm_schedule":     in.Schedule,
		"compliance_ppm":   in.CompliancePPM,
	}
	if !in.ComplianceExpiry.IsZero() {
		cols["compliance_ppm_expiry"] = in.ComplianceExpiry
	}
	if in.Notes != "" {
		cols["notes"] = in.Notes
	}
	return cols
}

func linkColumns(planID int, plan CreateServicePlanInput, link BuildingLinkInput) provider.Columns {
	cols := provider.Columns{
		"ppm_fk_ppm_id":       planID,
		"fk_bld_id":           link.BuildingID,
		"ppm_cost":            *plan.Cost,
		"fk_sup_id":           plan.SupplierID,
		"ppm_frequency":       plan.Frequency,
		"ppm_b_schedule_date": plan.Schedule,
	}
	if link.Cost != nil {
		cols["ppm_cost"] = *link.Cost
	}
	if link.SupplierID != nil {
		cols["fk_sup_id"] = *link.SupplierID
	}
	if !link.ScheduleDate.IsZero() {
		cols["ppm_b_schedule_date"] = link.ScheduleDate
	}
	return cols
}

// partialFailure reports a failure after the plan row exists. The upstream
// status is kept and the plan id is attached.
func partialFailure(ctx context.Context, planID int, step string, cause error) error {
	logger.FromContext(ctx).Warn("Service plan created with failures",
		zap.Int("ppm_id", planID),
		zap.String("step", step),
		zap.Error(cause),
	)
	status := http.StatusBadGateway
	if appErr, ok := apperrors.IsAppError(cause); ok {
		status = appErr.HTTPStatus
	}
	return apperrors.Wrap(cause, apperrors.CodeServicePlanCreateFail,
		"service plan was created but "+step+" failed", status).
		WithParams(map[string]interface{}{"ppm_id": planID, "step": step})
}
