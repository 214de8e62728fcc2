package provider_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppmdesk.io/ppmdesk/internal/domain"
	"ppmdesk.io/ppmdesk/internal/hasura"
	apperrors "ppmdesk.io/ppmdesk/internal/pkg/errors"
	"ppmdesk.io/ppmdesk/internal/provider"
	"ppmdesk.io/ppmdesk/internal/testutil"
)

func newHasuraProvider(t *testing.T) (*provider.HasuraProvider, *testutil.FakeHasura) {
	t.Helper()
	f := testutil.NewFakeHasura(t)
	return provider.NewHasuraProvider(f.Client(t)), f
}

func TestHasuraProvider_NullByPKIsNotFound(t *testing.T) {
	ctx := context.Background()
	p, f := newHasuraProvider(t)
	f.Respond(hasura.OpGetAssetByPK, map[string]any{"asset_by_pk": nil})
	f.Respond(hasura.OpDeleteOrganization, map[string]any{"delete_organizations_by_pk": nil})
	f.Respond(hasura.OpSoftDeleteInstruction, map[string]any{"update_instruction_set_by_pk": nil})
	f.Respond(hasura.OpRescheduleBuildingServicePlan, map[string]any{"update_ppm_building_service_plan_by_pk": nil})

	tests := []struct {
		name string
		call func() error
		code string
	}{
		{"asset", func() error { _, err := p.GetAsset(ctx, 9); return err }, apperrors.CodeAssetNotFound},
		{"organization", func() error { return p.DeleteOrganization(ctx, 9) }, apperrors.CodeOrganizationNotFound},
		{"instruction", func() error { return p.SoftDeleteInstruction(ctx, 9) }, apperrors.CodeInstructionNotFound},
		{"building plan", func() error {
			return p.RescheduleBuildingServicePlan(ctx, 9, domain.MustDate("2025-01-01"))
		}, apperrors.CodeBuildingPlanNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			appErr, ok := apperrors.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.code, appErr.Code)
			assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
		})
	}
}

func TestHasuraProvider_MapsUpstreamErrors(t *testing.T) {
	p, f := newHasuraProvider(t)
	f.Fail(hasura.OpDeleteBuilding, "Foreign key violation", "constraint-violation")

	err := p.DeleteBuilding(context.Background(), 10)
	assert.Equal(t, apperrors.CodeUpstreamConflict, apperrors.CodeOf(err))
}

func TestHasuraProvider_LocationContext(t *testing.T) {
	p, f := newHasuraProvider(t)
	f.Respond(hasura.OpGetLocationContext, map[string]any{
		"locations_by_pk": map[string]any{
			"pk_loc_id": 100, "loc_name": "Plant Room", "fk_bld_id": 10,
			"building": map[string]any{
				"pk_bld_id": 10, "bld_name": "Central Library", "fk_org_id": 1,
				"organization": map[string]any{"pk_org_id": 1, "org_name": "Northwind Estates"},
			},
		},
	})

	lc, err := p.LocationContext(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, domain.LocationContext{
		LocationID: 100, LocationName: "Plant Room",
		BuildingID: 10, BuildingName: "Central Library",
		OrgID: 1, OrgName: "Northwind Estates",
	}, lc)
}

func TestHasuraProvider_BulkUpdateShape(t *testing.T) {
	p, f := newHasuraProvider(t)
	f.Respond(hasura.OpBulkUpdateBuildingServicePlans, map[string]any{
		"update_ppm_building_service_plan_many": []map[string]any{{"affected_rows": 1}, {"affected_rows": 1}},
	})

	n, err := p.BulkUpdateBuildingServicePlans(context.Background(), []provider.BuildingPlanUpdate{
		{Key: 400, Set: provider.Columns{"ppm_cost": 12.5}},
		{Key: 402, Set: provider.Columns{"ppm_cost": 12.5}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	calls := f.Calls(hasura.OpBulkUpdateBuildingServicePlans)
	require.Len(t, calls, 1)
	updates, ok := calls[0].Variables["updates"].([]any)
	require.True(t, ok)
	require.Len(t, updates, 2)
	first := updates[0].(map[string]any)
	assert.Equal(t, map[string]any{"ppm_bsp_key": map[string]any{"_eq": 400.0}}, first["where"])
	assert.Equal(t, map[string]any{"ppm_cost": 12.5}, first["_set"])
}

func TestHasuraProvider_BulkUpdateSendsCostAsExactDecimal(t *testing.T) {
	p, f := newHasuraProvider(t)
	f.Respond(hasura.OpBulkUpdateBuildingServicePlans, map[string]any{
		"update_ppm_building_service_plan_many": []map[string]any{{"affected_rows": 1}},
	})

	_, err := p.BulkUpdateBuildingServicePlans(context.Background(), []provider.BuildingPlanUpdate{
		{Key: 400, Set: provider.Columns{"ppm_cost": json.Number("12345678901234567.89")}},
	})
	require.NoError(t, err)

	calls := f.Calls(hasura.OpBulkUpdateBuildingServicePlans)
	require.Len(t, calls, 1)
	assert.Contains(t, string(calls[0].Body), `"ppm_cost":12345678901234567.89`)
}

func TestHasuraProvider_BulkReviseAtomic(t *testing.T) {
	p, f := newHasuraProvider(t)
	f.Respond(hasura.OpBulkReviseAtomic, map[string]any{
		"update_ppm_building_service_plan_many": []map[string]any{{"affected_rows": 1}},
		"insert_ppm_bulk_change":                map[string]any{"affected_rows": 1},
	})

	updated, inserted, err := p.BulkReviseAtomic(context.Background(),
		[]provider.BuildingPlanUpdate{{Key: 400, Set: provider.Columns{"ppm_frequency": "3 weeks"}}},
		[]domain.BulkChange{{ChangeType: "ppm_frequency", ChangeReason: "contract", RequestedBy: "alice", ServicePlanID: 300, BuildingID: 10}},
	)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
	assert.Equal(t, 1, inserted)

	objects := f.Calls(hasura.OpBulkReviseAtomic)[0].Variables["objects"].([]any)
	assert.Equal(t, "alice", objects[0].(map[string]any)["change_request_by"])
}

func TestHasuraProvider_CreateOrganizationOmitsKey(t *testing.T) {
	p, f := newHasuraProvider(t)
	f.Respond(hasura.OpAddOrganization, map[string]any{
		"insert_organizations_one": map[string]any{"pk_org_id": 5, "org_name": "Harbour Trust"},
	})

	org, err := p.CreateOrganization(context.Background(), domain.Organization{Name: "Harbour Trust"})
	require.NoError(t, err)
	assert.Equal(t, 5, org.ID)

	object := f.Calls(hasura.OpAddOrganization)[0].Variables["object"].(map[string]any)
	assert.Equal(t, map[string]any{"org_name": "Harbour Trust"}, object)
}

func TestHasuraProvider_SetAssetArchivedUnarchiveSendsOnlyFlag(t *testing.T) {
	p, f := newHasuraProvider(t)
	f.Respond(hasura.OpSetAssetArchived, map[string]any{"update_asset_by_pk": map[string]any{"as_id": 3, "as_archived": false}})

	require.NoError(t, p.SetAssetArchived(context.Background(), 3, false, "ops", domain.Date{}))
	vars := f.Calls(hasura.OpSetAssetArchived)[0].Variables
	assert.Equal(t, map[string]any{"as_id": 3.0, "archived": false}, vars)
}

func TestHasuraProvider_UpdateInstructionIsScopedToPlan(t *testing.T) {
	ctx := context.Background()
	p, f := newHasuraProvider(t)
	f.On(hasura.OpUpdateInstruction, func(call testutil.Call) (any, []hasura.GraphQLError) {
		rows := 0
		if call.Int("inst_id") == 502 && call.Int("ppm_id") == 301 {
			rows = 1
		}
		return map[string]any{"update_instruction_set": map[string]any{"affected_rows": rows}}, nil
	})

	err := p.UpdateInstruction(ctx, domain.Instruction{ID: 502, PlanID: 301, Detail: "Thermal imaging"})
	require.NoError(t, err)

	err = p.UpdateInstruction(ctx, domain.Instruction{ID: 502, PlanID: 300, Detail: "Rewritten"})
	assert.Equal(t, apperrors.CodeInstructionNotFound, apperrors.CodeOf(err))

	calls := f.Calls(hasura.OpUpdateInstruction)
	require.Len(t, calls, 2)
	assert.Equal(t, 300, calls[1].Int("ppm_id"))
	assert.Contains(t, calls[1].Query, "fk_ppm_id")
}
