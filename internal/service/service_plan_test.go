package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "ppmdesk.io/ppmdesk/internal/pkg/errors"
	"ppmdesk.io/ppmdesk/internal/testutil"
)

func TestServicePlanService_Detail(t *testing.T) {
	svc, _ := newServicePlanService(t)

	sp, err := svc.Detail(context.Background(), 301)
	require.NoError(t, err)
	assert.Equal(t, "Electrical inspection", sp.ServiceName)
	assert.Equal(t, "Electrical", sp.DisciplineName())
	assert.Equal(t, "Brightline Electrical", sp.SupplierName())
	require.Len(t, sp.BuildingPlans, 2)
	assert.Equal(t, 402, sp.BuildingPlans[0].Key)

	_, err = svc.Detail(context.Background(), 999)
	assert.Equal(t, apperrors.CodeServicePlanNotFound, apperrors.CodeOf(err))
}

func TestServicePlanService_Update(t *testing.T) {
	svc, _ := newServicePlanService(t)
	ctx := context.Background()
	status := "Suspended"
	cost := 500.0

	require.NoError(t, svc.Update(ctx, 300, ServicePlanPatch{Status: &status, Cost: &cost}))

	sp, err := svc.Detail(ctx, 300)
	require.NoError(t, err)
	assert.Equal(t, "Suspended", sp.Status)
	assert.Equal(t, 500.0, *sp.Cost)
	assert.Equal(t, "AHU quarterly service", sp.ServiceName)
}

func TestServicePlanService_Update_Invalid(t *testing.T) {
	svc, _ := newServicePlanService(t)
	negative := -1.0

	err := svc.Update(context.Background(), 300, ServicePlanPatch{})
	assert.Equal(t, apperrors.CodeValidationFailed, apperrors.CodeOf(err))

	err = svc.Update(context.Background(), 300, ServicePlanPatch{Cost: &negative})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Len(t, appErr.FieldErrors, 1)
	assert.Equal(t, "ppm_cost", appErr.FieldErrors[0].Field)
	assert.Equal(t, "gte", appErr.FieldErrors[0].Code)
}

func TestServicePlanService_CandidateAssets(t *testing.T) {
	svc, _ := newServicePlanService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		ppmID  int
		discID int
		bldID  int
		want   []int
	}{
		{name: "explicit discipline", ppmID: 300, discID: 1, bldID: 10, want: []int{201}},
		{name: "plan discipline by default", ppmID: 300, bldID: 10, want: []int{200, 202}},
		{name: "no matches", ppmID: 302, bldID: 10, want: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := svc.CandidateAssets(ctx, tt.ppmID, tt.discID, tt.bldID)
			require.NoError(t, err)
			ids := make([]int, 0, len(rows))
			for _, r := range rows {
				ids = append(ids, r.AssetID)
			}
			assert.ElementsMatch(t, tt.want, ids)
		})
	}

	_, err := svc.CandidateAssets(ctx, 300, 2, 0)
	assert.Equal(t, apperrors.CodeValidationFailed, apperrors.CodeOf(err))
}

func TestServicePlanService_AddAndRemoveAssets(t *testing.T) {
	mock := testutil.SeededProvider(t)
	svc := NewServicePlanService(mock, testutil.Pools(t).Mutation)
	ctx := context.Background()

	links, err := svc.AddAssets(ctx, 301, []int{200, 204, 200})
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, 200, links[0].AssetID)
	assert.Equal(t, 204, links[1].AssetID)

	linked, err := svc.LinkedAssets(ctx, 301)
	require.NoError(t, err)
	var ids []int
	for _, l := range linked {
		ids = append(ids, l.AssetID)
	}
	assert.Equal(t, []int{200, 201, 204}, ids)

	require.NoError(t, svc.RemoveAsset(ctx, 301, 204))
	err = svc.RemoveAsset(ctx, 301, 204)
	assert.Equal(t, apperrors.CodeAssetNotFound, apperrors.CodeOf(err))
}

func TestServicePlanService_AddAssets_Errors(t *testing.T) {
	svc, _ := newServicePlanService(t)
	ctx := context.Background()

	_, err := svc.AddAssets(ctx, 300, nil)
	assert.Equal(t, apperrors.CodeValidationFailed, apperrors.CodeOf(err))

	// 200 is already on plan 300.
	_, err = svc.AddAssets(ctx, 300, []int{201, 200})
	assert.Equal(t, apperrors.CodeUpstreamConflict, apperrors.CodeOf(err))
}

func TestServicePlanService_Instructions(t *testing.T) {
	svc, _ := newServicePlanService(t)
	ctx := context.Background()

	insts, err := svc.Instructions(ctx, 300)
	require.NoError(t, err)
	require.Len(t, insts, 1)
	assert.Equal(t, 500, insts[0].ID)

	require.NoError(t, svc.DeleteInstruction(ctx, 500))
	insts, err = svc.Instructions(ctx, 300)
	require.NoError(t, err)
	assert.Empty(t, insts)

	err = svc.DeleteInstruction(ctx, 999)
	assert.Equal(t, apperrors.CodeInstructionNotFound, apperrors.CodeOf(err))
}
