package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppmdesk.io/ppmdesk/internal/domain"
	apperrors "ppmdesk.io/ppmdesk/internal/pkg/errors"
)

func intPtr(v int) *int { return &v }

func seeded() *MockProvider {
	p := NewMockProvider()
	p.Seed(Dataset{
		Organizations: []domain.Organization{{ID: 1, Name: "Org"}},
		Buildings:     []domain.Building{{ID: 10, Name: "B", OrgID: 1}},
		Locations:     []domain.Location{{ID: 100, Name: "L", BuildingID: 10}},
		Assets:        []domain.Asset{{ID: 200, Name: "A", LocationID: 100, PPMDisciplineID: intPtr(2)}},
		ServicePlans: []domain.ServicePlan{{
			ID: 300, ServiceName: "Plan",
			BuildingPlans: []domain.BuildingServicePlan{{Key: 400, BuildingID: 10}},
		}},
		AssetPlans: []domain.AssetServicePlan{{AssetID: 200, PlanID: 300}},
	})
	return p
}

func TestMockProvider_CreateAssetUsesColumns(t *testing.T) {
	p := seeded()
	ctx := context.Background()

	id, err := p.CreateAsset(ctx, Columns{"as_name": "Pump", "fk_loc_id": 100, "fk_disc_id": 1})
	require.NoError(t, err)
	assert.Greater(t, id, 400, "generated ids stay above seeded ids")

	a, err := p.GetAsset(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Pump", a.Name)
	require.NotNil(t, a.PPMDisciplineID)
	assert.Equal(t, 1, *a.PPMDisciplineID)

	_, err = p.CreateAsset(ctx, Columns{"as_name": "Orphan", "fk_loc_id": 999})
	assert.Equal(t, apperrors.CodeUpstreamConflict, apperrors.CodeOf(err))
}

func TestMockProvider_UpdateAssetOverlaysOnlyGivenColumns(t *testing.T) {
	p := seeded()
	ctx := context.Background()

	require.NoError(t, p.UpdateAsset(ctx, 200, Columns{"as_serial_num": "SN-1"}))
	a, _ := p.GetAsset(ctx, 200)
	assert.Equal(t, "SN-1", a.SerialNum)
	assert.Equal(t, "A", a.Name)
	assert.Equal(t, 2, *a.PPMDisciplineID)

	require.NoError(t, p.UpdateAssetPPMDiscipline(ctx, 200, nil))
	a, _ = p.GetAsset(ctx, 200)
	assert.Nil(t, a.PPMDisciplineID)
}

func TestMockProvider_FailOnAndCalls(t *testing.T) {
	p := seeded()
	boom := errors.New("boom")
	p.FailOn("DeleteAssetServicePlanLinks", boom)

	_, err := p.DeleteAssetServicePlanLinks(context.Background(), 200)
	assert.ErrorIs(t, err, boom)

	p.FailOn("DeleteAssetServicePlanLinks", nil)
	n, err := p.DeleteAssetServicePlanLinks(context.Background(), 200)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"DeleteAssetServicePlanLinks", "DeleteAssetServicePlanLinks"}, p.Calls())
}

func TestMockProvider_BulkUpdateSkipsUnknownKeys(t *testing.T) {
	p := seeded()
	n, err := p.BulkUpdateBuildingServicePlans(context.Background(), []BuildingPlanUpdate{
		{Key: 400, Set: Columns{"ppm_b_schedule_date": "2025-05-01"}},
		{Key: 999, Set: Columns{"ppm_b_schedule_date": "2025-05-01"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	b, ok := p.BuildingPlan(400)
	require.True(t, ok)
	assert.Equal(t, "2025-05-01", b.ScheduleDate.String())
	assert.Equal(t, 300, b.PlanID)
}

func TestMockProvider_BulkReviseAtomicIsAllOrNothing(t *testing.T) {
	p := seeded()
	_, _, err := p.BulkReviseAtomic(context.Background(),
		[]BuildingPlanUpdate{{Key: 400, Set: Columns{"ppm_cost": "not a number"}}},
		[]domain.BulkChange{{ChangeType: "ppm_cost"}},
	)
	require.Error(t, err)
	assert.Empty(t, p.BulkChanges())
	b, _ := p.BuildingPlan(400)
	assert.Nil(t, b.Cost)
}

func TestMockProvider_DeleteGuardsChildren(t *testing.T) {
	p := seeded()
	ctx := context.Background()

	assert.Equal(t, apperrors.CodeUpstreamConflict, apperrors.CodeOf(p.DeleteOrganization(ctx, 1)))
	assert.Equal(t, apperrors.CodeOrganizationNotFound, apperrors.CodeOf(p.DeleteOrganization(ctx, 2)))
}

func TestMockProvider_Reset(t *testing.T) {
	p := seeded()
	p.Reset()
	orgs, err := p.ListOrganizations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orgs)
	assert.Equal(t, []string{"ListOrganizations"}, p.Calls())
}
