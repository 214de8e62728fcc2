package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppmdesk.io/ppmdesk/internal/domain"
	"ppmdesk.io/ppmdesk/internal/governance/audit"
	apperrors "ppmdesk.io/ppmdesk/internal/pkg/errors"
	"ppmdesk.io/ppmdesk/internal/testutil"
)

func floatPtr(v float64) *float64 { return &v }

func newPlanInput() CreateServicePlanInput {
	return CreateServicePlanInput{
		ServiceName:  "Lift inspection",
		Description:  "LOLER thorough examination",
		Standard:     "LOLER 1998",
		Status:       "Active",
		Type:         "Statutory",
		Frequency:    "6 months",
		Cost:         floatPtr(250),
		DisciplineID: 2,
		SupplierID:   3,
		Schedule:     domain.MustDate("2025-07-01"),
		Buildings: []BuildingLinkInput{
			{BuildingID: 10},
			{BuildingID: 12, Cost: floatPtr(400), SupplierID: intPtr(1), ScheduleDate: domain.MustDate("2025-08-15")},
		},
		Instructions: []InstructionInput{
			{Detail: "Inspect ropes", Pass: "No broken wires"},
			{Detail: "Test overspeed governor"},
		},
		CreatedBy: "alice",
	}
}

func TestCreateServicePlan(t *testing.T) {
	mock := testutil.SeededProvider(t)
	uc := NewCreateServicePlanUseCase(mock, testutil.Pools(t).Mutation).WithAuditLogger(audit.NewLogger(mock))
	ctx := context.Background()

	out, err := uc.Execute(ctx, newPlanInput())
	require.NoError(t, err)
	assert.Greater(t, out.PlanID, 603)
	require.Len(t, out.BuildingPlanIDs, 2)
	require.Len(t, out.InstructionIDs, 2)

	plan, err := mock.GetServicePlan(ctx, out.PlanID)
	require.NoError(t, err)
	assert.Equal(t, "Lift inspection", plan.ServiceName)
	assert.Equal(t, "2025-07-01", plan.Schedule.String())

	inherited, ok := mock.BuildingPlan(out.BuildingPlanIDs[0])
	require.True(t, ok)
	assert.Equal(t, 10, inherited.BuildingID)
	assert.Equal(t, out.PlanID, inherited.PlanID)
	assert.Equal(t, 250.0, *inherited.Cost)
	assert.Equal(t, 3, *inherited.SupplierID)
	assert.Equal(t, "6 months", inherited.Frequency)
	assert.Equal(t, "2025-07-01", inherited.ScheduleDate.String())

	overridden, ok := mock.BuildingPlan(out.BuildingPlanIDs[1])
	require.True(t, ok)
	assert.Equal(t, 400.0, *overridden.Cost)
	assert.Equal(t, 1, *overridden.SupplierID)
	assert.Equal(t, "2025-08-15", overridden.ScheduleDate.String())

	insts, err := mock.Instructions(ctx, out.PlanID)
	require.NoError(t, err)
	require.Len(t, insts, 2)
}

func TestCreateServicePlan_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateServicePlanInput)
		field  string
	}{
		{"missing name", func(in *CreateServicePlanInput) { in.ServiceName = "" }, "ppm_service_name"},
		{"missing cost", func(in *CreateServicePlanInput) { in.Cost = nil }, "ppm_cost"},
		{"negative cost", func(in *CreateServicePlanInput) { in.Cost = floatPtr(-1) }, "ppm_cost"},
		{"missing schedule", func(in *CreateServicePlanInput) { in.Schedule = domain.Date{} }, "ppm_schedule"},
		{"no buildings", func(in *CreateServicePlanInput) { in.Buildings = nil }, "buildings"},
		{"link without building", func(in *CreateServicePlanInput) { in.Buildings[1].BuildingID = 0 }, "buildings[1].fk_bld_id"},
		{"empty instruction", func(in *CreateServicePlanInput) { in.Instructions[0].Detail = "" }, "instructions[0].inst_set_detail"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := testutil.SeededProvider(t)
			uc := NewCreateServicePlanUseCase(mock, testutil.Pools(t).Mutation)

			in := newPlanInput()
			tt.mutate(&in)
			out, err := uc.Execute(context.Background(), in)
			assert.Nil(t, out)

			appErr, ok := apperrors.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
			var fields []string
			for _, fe := range appErr.FieldErrors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
			assert.NotContains(t, mock.Calls(), "CreateServicePlan")
		})
	}
}

func TestCreateServicePlan_PlanInsertFails(t *testing.T) {
	mock := testutil.SeededProvider(t)
	mock.FailOn("CreateServicePlan", apperrors.Unprocessable(apperrors.CodeUpstreamRejected, "permission denied"))
	uc := NewCreateServicePlanUseCase(mock, testutil.Pools(t).Mutation)

	out, err := uc.Execute(context.Background(), newPlanInput())
	assert.Nil(t, out)
	assert.Equal(t, apperrors.CodeUpstreamRejected, apperrors.CodeOf(err))
	assert.NotContains(t, mock.Calls(), "LinkServicePlanToBuilding")
}

func TestCreateServicePlan_PartialFailure(t *testing.T) {
	t.Run("building link", func(t *testing.T) {
		mock := testutil.SeededProvider(t)
		uc := NewCreateServicePlanUseCase(mock, testutil.Pools(t).Mutation)

		in := newPlanInput()
		in.Buildings = append(in.Buildings, BuildingLinkInput{BuildingID: 999})
		out, err := uc.Execute(context.Background(), in)
		require.NotNil(t, out)

		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeServicePlanCreateFail, appErr.Code)
		assert.Equal(t, 409, appErr.HTTPStatus)
		assert.Equal(t, out.PlanID, appErr.Params["ppm_id"])
		assert.Equal(t, "link buildings", appErr.Params["step"])

		// The plan row and the other links stay.
		_, err = mock.GetServicePlan(context.Background(), out.PlanID)
		require.NoError(t, err)
		assert.NotContains(t, mock.Calls(), "InsertInstruction")
	})

	t.Run("instruction", func(t *testing.T) {
		mock := testutil.SeededProvider(t)
		mock.FailOn("InsertInstruction", apperrors.BadGateway(apperrors.CodeUpstreamUnavailable, "hasura unreachable"))
		uc := NewCreateServicePlanUseCase(mock, testutil.Pools(t).Mutation)

		out, err := uc.Execute(context.Background(), newPlanInput())
		require.NotNil(t, out)
		assert.Len(t, out.BuildingPlanIDs, 2)

		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeServicePlanCreateFail, appErr.Code)
		assert.Equal(t, 502, appErr.HTTPStatus)
		assert.Equal(t, "insert instructions", appErr.Params["step"])
	})
}

func TestLinkColumns(t *testing.T) {
	plan := newPlanInput()

	cols := linkColumns(7, plan, BuildingLinkInput{BuildingID: 10})
	assert.Equal(t, 7, cols["ppm_fk_ppm_id"])
	assert.Equal(t, 250.0, cols["ppm_cost"])
	assert.Equal(t, 3, cols["fk_sup_id"])
	assert.Equal(t, plan.Schedule, cols["ppm_b_schedule_date"])

	cols = linkColumns(7, plan, plan.Buildings[1])
	assert.Equal(t, 400.0, cols["ppm_cost"])
	assert.Equal(t, 1, cols["fk_sup_id"])
	assert.Equal(t, plan.Buildings[1].ScheduleDate, cols["ppm_b_schedule_date"])
}
