package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"go.uber.org/zap"

	"ppmdesk.io/ppmdesk/internal/domain"
	"ppmdesk.io/ppmdesk/internal/governance/audit"
	apperrors "ppmdesk.io/ppmdesk/internal/pkg/errors"
	"ppmdesk.io/ppmdesk/internal/pkg/logger"
	"ppmdesk.io/ppmdesk/internal/provider"
	"ppmdesk.io/ppmdesk/internal/service"
)

// BulkRevisionInput revises one field on a selection of PPM grid rows.
type BulkRevisionInput struct {
	RowIDs        []int             `json:"row_ids" validate:"required,min=1,dive,gt=0"`
	Field         service.BulkField `json:"field" validate:"required,oneof=cost schedule frequency supplier"`
	Value         string            `json:"value"`
	FrequencyUnit string            `json:"frequency_unit"`
	Reason        string            `json:"reason" validate:"max=500"`
	RequestedBy   string            `json:"requested_by"`
}

// BulkRevisionOutput carries the locally patched rows and the refetched grid.
type BulkRevisionOutput struct {
	Updated          int                      `json:"updated"`
	AuditEntries     int                      `json:"audit_entries"`
	PatchedRows      []service.ServicePlanRow `json:"patched_rows"`
	SelectionCleared bool                     `json:"selection_cleared"`
	Rows             []service.ServicePlanRow `json:"rows,omitempty"`
}

// BulkRevisionUseCase applies one validated value to many building
// service plans and writes one audit row per plan.
type BulkRevisionUseCase struct {
	plans       provider.ServicePlanProvider
	ref         provider.ReferenceProvider
	rows        *service.ServicePlanService
	auditLogger *audit.Logger
	atomic      bool
}

// NewBulkRevisionUseCase creates a new BulkRevisionUseCase. With atomic
// set, updates and audit rows go out in one mutation document.
func NewBulkRevisionUseCase(
	plans provider.ServicePlanProvider,
	ref provider.ReferenceProvider,
	rows *service.ServicePlanService,
	auditLogger *audit.Logger,
	atomic bool,
) *BulkRevisionUseCase {
	return &BulkRevisionUseCase{
		plans:       plans,
		ref:         ref,
		rows:        rows,
		auditLogger: auditLogger,
		atomic:      atomic,
	}
}

// Execute validates the input and sends the bulk update and audit insert.
//
// An unknown row id or invalid value sends nothing. A failed update writes
// no audit rows. A successful update whose audit insert fails returns
// AUDIT_TRAIL_INCOMPLETE naming the updated rows; nothing is rolled back.
func (uc *BulkRevisionUseCase) Execute(ctx context.Context, input BulkRevisionInput) (*BulkRevisionOutput, error) {
	if err := service.Validate(input); err != nil {
		return nil, err
	}

	var suppliers []domain.Supplier
	if input.Field == service.BulkFieldSupplier {
		var err error
		if suppliers, err = uc.ref.Suppliers(ctx); err != nil {
			return nil, fmt.Errorf("load suppliers: %w", err)
		}
	}
	value, err := service.ResolveBulkValue(input.Field, input.Value, input.FrequencyUnit, suppliers)
	if err != nil {
		return nil, err
	}

	current, err := uc.rows.Rows(ctx)
	if err != nil {
		return nil, err
	}
	selected, err := selectRows(service.IndexRows(current), input.RowIDs)
	if err != nil {
		return nil, err
	}

	updates := make([]provider.BuildingPlanUpdate, 0, len(selected))
	changes := make([]domain.BulkChange, 0, len(selected))
	keys := make([]int, 0, len(selected))
	for _, row := range selected {
		updates = append(updates, provider.BuildingPlanUpdate{
			Key: row.Key,
			Set: provider.Columns{value.Column: value.Value},
		})
		changes = append(changes, domain.BulkChange{
			ChangeType:    value.Column,
			ChangeReason:  input.Reason,
			RequestedBy:   input.RequestedBy,
			ServicePlanID: row.PlanID,
			BuildingID:    row.BuildingID,
		})
		keys = append(keys, row.Key)
	}

	out := &BulkRevisionOutput{}
	if uc.atomic {
		out.Updated, out.AuditEntries, err = uc.plans.BulkReviseAtomic(ctx, updates, changes)
		if err != nil {
			return nil, fmt.Errorf("bulk revise: %w", err)
		}
	} else {
		out.Updated, err = uc.plans.BulkUpdateBuildingServicePlans(ctx, updates)
		if err != nil {
			return nil, fmt.Errorf("bulk update building service plans: %w", err)
		}
		out.AuditEntries, err = uc.auditLogger.RecordBulkChanges(ctx, changes)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeAuditTrailIncomplete,
				"rows were updated but the audit trail could not be written", http.StatusBadGateway).
				WithParams(map[string]interface{}{"updated_rows": keys})
		}
	}
	uc.auditLogger.LogBulkRevision(ctx, input.RequestedBy, value.Column, keys, uc.atomic)

	out.PatchedRows = patchRows(selected, value, suppliers)
	out.SelectionCleared = true

	refreshed, err := uc.rows.Rows(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn("Refetch after bulk revision failed", zap.Error(err))
	} else {
		out.Rows = refreshed
	}

	logger.FromContext(ctx).Info("Bulk revision applied",
		zap.String("column", value.Column),
		zap.Ints("ppm_bsp_keys", keys),
		zap.Int("updated", out.Updated),
		zap.Bool("atomic", uc.atomic),
	)
	return out, nil
}

// selectRows resolves row ids against the grid, deduplicated and ordered
// by key. Any unknown id fails the whole selection.
func selectRows(idx service.RowIndex, ids []int) ([]service.ServicePlanRow, error) {
	seen := make(map[int]bool, len(ids))
	var (
		selected []service.ServicePlanRow
		unknown  []int
	)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		row, ok := idx[id]
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		selected = append(selected, row)
	}
	if len(unknown) > 0 {
		return nil, apperrors.ErrValidation(apperrors.FieldError{
			Field:   "row_ids",
			Code:    "exists",
			Message: fmt.Sprintf("unknown building service plan keys: %v", unknown),
		}).WithParams(map[string]interface{}{"unknown_ids": unknown})
	}
	sort.Slice(selected, func(i, j int) bool { return selected[i].Key < selected[j].Key })
	return selected, nil
}

// patchRows applies the revision to copies of rows, as the grid would show
// them before the refetch.
func patchRows(rows []service.ServicePlanRow, value service.BulkValue, suppliers []domain.Supplier) []service.ServicePlanRow {
	out := make([]service.ServicePlanRow, len(rows))
	for i, row := range rows {
		switch v := value.Value.(type) {
		case json.Number:
			// Display only; the stored value comes back on refetch.
			if cost, err := v.Float64(); err == nil {
				row.Cost = &cost
			}
		case domain.Date:
			row.Schedule = v
		case string:
			row.Frequency = v
		case int:
			id := v
			row.SupplierID = &id
			row.SupplierName = service.NotAvailable
			for _, s := range suppliers {
				if s.ID == v {
					row.SupplierName = s.Name
				}
			}
		}
		out[i] = row
	}
	return out
}
