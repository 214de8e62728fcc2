package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"ppmdesk.io/ppmdesk/internal/domain"
	apperrors "ppmdesk.io/ppmdesk/internal/pkg/errors"
	"ppmdesk.io/ppmdesk/internal/pkg/logger"
	"ppmdesk.io/ppmdesk/internal/pkg/worker"
	"ppmdesk.io/ppmdesk/internal/provider"
)

// ServicePlanService handles the PPM grid and the PPM detail tabs.
type ServicePlanService struct {
	plans provider.ServicePlanProvider
	pool  *worker.Pool
}

// NewServicePlanService creates a new ServicePlanService. Link inserts run
// on pool.
func NewServicePlanService(plans provider.ServicePlanProvider, pool *worker.Pool) *ServicePlanService {
	return &ServicePlanService{plans: plans, pool: pool}
}

// Detail returns the plan with its building links, supplier and discipline.
func (s *ServicePlanService) Detail(ctx context.Context, ppmID int) (domain.ServicePlan, error) {
	sp, err := s.plans.GetServicePlan(ctx, ppmID)
	if err != nil {
		return domain.ServicePlan{}, fmt.Errorf("get service plan: %w", err)
	}
	return sp, nil
}

// ServicePlanPatch carries the editable plan fields. Nil fields are left
// unchanged.
type ServicePlanPatch struct {
	ServiceName      *string      `json:"ppm_service_name,omitempty" validate:"omitempty,min=1"`
	Description      *string      `json:"ppm_description,omitempty"`
	Schedule         *domain.Date `json:"ppm_schedule,omitempty"`
	Frequency        *string      `json:"ppm_frequency,omitempty"`
	Standard         *string      `json:"ppm_standard,omitempty"`
	Status           *string      `json:"ppm_status,omitempty"`
	Type             *string      `json:"ppm_type,omitempty"`
	Cost             *float64     `json:"ppm_cost,omitempty" validate:"omitempty,gte=0"`
	CompliancePPM    *bool        `json:"compliance_ppm,omitempty"`
	ComplianceExpiry *domain.Date `json:"compliance_ppm_expiry,omitempty"`
	Notes            *string      `json:"notes,omitempty"`
	LastServiceDate  *domain.Date `json:"last_service_date,omitempty"`
	NextServiceDate  *domain.Date `json:"next_service_date,omitempty"`
	SupplierID       *int         `json:"fk_sup_id,omitempty" validate:"omitempty,gt=0"`
	DisciplineID     *int         `json:"fk_disc_id,omitempty" validate:"omitempty,gt=0"`
}

func (p ServicePlanPatch) columns() provider.Columns {
	cols := provider.Columns{}
	putStringPtr(cols, "ppm_service_name", p.ServiceName)
	putStringPtr(cols, "ppm_description", p.Description)
	putDate(cols, "ppm_schedule", p.Schedule)
	putStringPtr(cols, "ppm_frequency", p.Frequency)
	putStringPtr(cols, "ppm_standard", p.Standard)
	putStringPtr(cols, "ppm_status", p.Status)
	putStringPtr(cols, "ppm_type", p.Type)
	putFloat(cols, "ppm_cost", p.Cost)
	putBool(cols, "compliance_ppm", p.CompliancePPM)
	putDate(cols, "compliance_ppm_expiry", p.ComplianceExpiry)
	putStringPtr(cols, "notes", p.Notes)
	putDate(cols, "last_service_date", p.LastServiceDate)
	putDate(cols, "next_service_date", p.NextServiceDate)
	putInt(cols, "fk_sup_id", p.SupplierID)
	putInt(cols, "fk_disc_id", p.DisciplineID)
	return cols
}

// Update applies the non-nil fields of patch.
func (s *ServicePlanService) Update(ctx context.Context, ppmID int, patch ServicePlanPatch) error {
	if err := Validate(patch); err != nil {
		return err
	}
	cols := patch.columns()
	if len(cols) == 0 {
		return fieldError("patch", "required", "at least one field must be set")
	}
	if err := s.plans.UpdateServicePlan(ctx, ppmID, cols); err != nil {
		return fmt.Errorf("update service plan: %w", err)
	}
	logger.FromContext(ctx).Info("Service plan updated", zap.Int("ppm_id", ppmID), zap.Int("columns", len(cols)))
	return nil
}

// CandidateAssets lists assets of discipline discID in building bldID that
// could be linked to the plan. A zero discID defaults to the plan's own
// discipline.
func (s *ServicePlanService) CandidateAssets(ctx context.Context, ppmID, discID, bldID int) ([]domain.AssetOverview, error) {
	if bldID <= 0 {
		return nil, fieldError("bld_id", "required", "bld_id is required")
	}
	if discID <= 0 {
		sp, err := s.plans.GetServicePlan(ctx, ppmID)
		if err != nil {
			return nil, fmt.Errorf("get service plan: %w", err)
		}
		if sp.DisciplineID == nil {
			return nil, fieldError("disc_id", "required", "disc_id is required for a plan without a discipline")
		}
		discID = *sp.DisciplineID
	}

	rows, err := s.plans.CandidateAssets(ctx, discID, bldID)
	if err != nil {
		return nil, fmt.Errorf("list candidate assets: %w", err)
	}
	if rows == nil {
		rows = []domain.AssetOverview{}
	}
	return rows, nil
}

// LinkedAssets lists the assets linked to the plan.
func (s *ServicePlanService) LinkedAssets(ctx context.Context, ppmID int) ([]domain.AssetServicePlan, error) {
	links, err := s.plans.LinkedAssets(ctx, ppmID)
	if err != nil {
		return nil, fmt.Errorf("list linked assets: %w", err)
	}
	if links == nil {
		links = []domain.AssetServicePlan{}
	}
	return links, nil
}

// AddAssets links every asset to the plan. Inserts run in parallel and the
// call returns once all have resolved; links created before a failure are
// kept.
func (s *ServicePlanService) AddAssets(ctx context.Context, ppmID int, asIDs []int) ([]domain.AssetServicePlan, error) {
	ids := uniqueInts(asIDs)
	if len(ids) == 0 {
		return nil, fieldError("as_ids", "min", "as_ids must contain at least 1 item(s)")
	}

	links := make([]domain.AssetServicePlan, len(ids))
	g := s.pool.Group(ctx)
	for i, asID := range ids {
		g.Go(func(ctx context.Context) (err error) {
			links[i], err = s.plans.AddAssetToServicePlan(ctx, asID, ppmID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("link assets: %w", err)
	}
	logger.FromContext(ctx).Info("Assets linked to service plan", zap.Int("ppm_id", ppmID), zap.Ints("as_ids", ids))
	return links, nil
}

// RemoveAsset unlinks one asset from the plan.
func (s *ServicePlanService) RemoveAsset(ctx context.Context, ppmID, asID int) error {
	n, err := s.plans.RemoveAssetFromServicePlan(ctx, asID, ppmID)
	if err != nil {
		return fmt.Errorf("unlink asset: %w", err)
	}
	if n == 0 {
		return apperrors.NotFound(apperrors.CodeAssetNotFound, "asset is not linked to this service plan").
			WithParams(map[string]interface{}{"as_id": asID, "ppm_id": ppmID})
	}
	logger.FromContext(ctx).Info("Asset unlinked from service plan", zap.Int("ppm_id", ppmID), zap.Int("as_id", asID))
	return nil
}

// Instructions lists the plan's instructions ordered by id, excluding
// deleted ones.
func (s *ServicePlanService) Instructions(ctx context.Context, ppmID int) ([]domain.Instruction, error) {
	insts, err := s.plans.Instructions(ctx, ppmID)
	if err != nil {
		return nil, fmt.Errorf("list instructions: %w", err)
	}
	out := make([]domain.Instruction, 0, len(insts))
	for _, inst := range insts {
		if !inst.Deleted {
			out = append(out, inst)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// DeleteInstruction soft-deletes an instruction.
func (s *ServicePlanService) DeleteInstruction(ctx context.Context, instID int) error {
	if err := s.plans.SoftDeleteInstruction(ctx, instID); err != nil {
		return fmt.Errorf("delete instruction: %w", err)
	}
	logger.FromContext(ctx).Info("Instruction deleted", zap.Int("pk_inst_set_id", instID))
	return nil
}

func uniqueInts(in []int) []int {
	seen := make(map[int]bool, len(in))
	out := make([]int, 0, len(in))
	for _, v := range in {
		if v > 0 && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
