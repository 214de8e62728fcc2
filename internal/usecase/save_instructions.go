package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"ppmdesk.io/ppmdesk/internal/domain"
	apperrors "ppmdesk.io/ppmdesk/internal/pkg/errors"
	"ppmdesk.io/ppmdesk/internal/pkg/logger"
	"ppmdesk.io/ppmdesk/internal/pkg/worker"
	"ppmdesk.io/ppmdesk/internal/provider"
	"ppmdesk.io/ppmdesk/internal/service"
)

// InstructionItem is one row of the instructions tab. Items without an id
// are new.
type InstructionItem struct {
	ID       int    `json:"pk_inst_set_id,omitempty" validate:"gte=0"`
	Detail   string `json:"inst_set_detail" validate:"required"`
	Pass     string `json:"inst_set_pass"`
	Archived bool   `json:"inst_set_archived"`
}

// SaveInstructionsInput is the whole tab.
type SaveInstructionsInput struct {
	PlanID int               `json:"-"`
	Items  []InstructionItem `json:"items" validate:"required,min=1,dive"`
}

// SaveInstructionsOutput is the refetched instruction list.
type SaveInstructionsOutput struct {
	Updated      int                  `json:"updated"`
	Inserted     []int                `json:"inserted"`
	Instructions []domain.Instruction `json:"instructions"`
}

// SaveInstructionsUseCase updates existing instructions and inserts new ones.
type SaveInstructionsUseCase struct {
	plans provider.ServicePlanProvider
	svc   *service.ServicePlanService
	pool  *worker.Pool
}

// NewSaveInstructionsUseCase creates a new SaveInstructionsUseCase.
func NewSaveInstructionsUseCase(plans provider.ServicePlanProvider, svc *service.ServicePlanService, pool *worker.Pool) *SaveInstructionsUseCase {
	return &SaveInstructionsUseCase{plans: plans, svc: svc, pool: pool}
}

// Execute sends every update and insert in parallel, waits for all of
// them, then returns the refetched list. An item id that is not a live
// instruction of the plan is rejected before anything is written.
func (uc *SaveInstructionsUseCase) Execute(ctx context.Context, input SaveInstructionsInput) (*SaveInstructionsOutput, error) {
	if err := service.Validate(input); err != nil {
		return nil, err
	}
	if err := uc.checkOwnership(ctx, input); err != nil {
		return nil, err
	}

	inserted := make([]int, len(input.Items))
	updated := 0
	g := uc.pool.Group(ctx)
	for i, item := range input.Items {
		if item.ID > 0 {
			updated++
			g.Go(func(ctx context.Context) error {
				return uc.plans.UpdateInstruction(ctx, domain.Instruction{
					ID:       item.ID,
					PlanID:   input.PlanID,
					Detail:   item.Detail,
					Pass:     item.Pass,
					Archived: item.Archived,
				})
			})
			continue
		}
		g.Go(func(ctx context.Context) (err error) {
			inserted[i], err = uc.plans.InsertInstruction(ctx, input.PlanID, item.Detail, item.Pass)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("save instructions: %w", err)
	}

	out := &SaveInstructionsOutput{Updated: updated, Inserted: []int{}}
	for _, id := range inserted {
		if id > 0 {
			out.Inserted = append(out.Inserted, id)
		}
	}

	insts, err := uc.svc.Instructions(ctx, input.PlanID)
	if err != nil {
		return nil, err
	}
	out.Instructions = insts

	logger.FromContext(ctx).Info("Instructions saved",
		zap.Int("ppm_id", input.PlanID),
		zap.Int("updated", out.Updated),
		zap.Int("inserted", len(out.Inserted)),
	)
	return out, nil
}

func (uc *SaveInstructionsUseCase) checkOwnership(ctx context.Context, input SaveInstructionsInput) error {
	hasUpdates := false
	for _, item := range input.Items {
		if item.ID > 0 {
			hasUpdates = true
			break
		}
	}
	if !hasUpdates {
		return nil
	}

	current, err := uc.plans.Instructions(ctx, input.PlanID)
	if err != nil {
		return fmt.Errorf("load instructions: %w", err)
	}
	owned := make(map[int]bool, len(current))
	for _, inst := range current {
		owned[inst.ID] = true
	}
	for _, item := range input.Items {
		if item.ID > 0 && !owned[item.ID] {
			logger.FromContext(ctx).Warn("Instruction does not belong to plan",
				zap.Int("ppm_id", input.PlanID),
				zap.Int("pk_inst_set_id", item.ID),
			)
			return apperrors.NotFound(apperrors.CodeInstructionNotFound, "instruction not found on this service plan").
				WithParams(map[string]interface{}{"id": item.ID, "ppm_id": input.PlanID})
		}
	}
	return nil
}
