package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppmdesk.io/ppmdesk/internal/domain"
	"ppmdesk.io/ppmdesk/internal/pkg/worker"
	"ppmdesk.io/ppmdesk/internal/testutil"
)

func floatPtr(v float64) *float64 { return &v }

func TestProjectServicePlanRows_Fallbacks(t *testing.T) {
	t.Parallel()

	plans := []domain.ServicePlan{{
		ID:          1,
		ServiceName: "Gutter clean",
		Cost:        floatPtr(100),
		Frequency:   "6 months",
		Schedule:    domain.MustDate("2025-01-01"),
		BuildingPlans: []domain.BuildingServicePlan{
			{Key: 9, BuildingID: 3, Cost: floatPtr(75), Frequency: "1 years", SupplierID: intPtr(4), Supplier: &domain.Supplier{ID: 4, Name: "Roofers Ltd"}},
			{Key: 2, BuildingID: 3},
		},
	}}

	rows := ProjectServicePlanRows(plans)
	require.Len(t, rows, 2)

	// Sorted by link key.
	assert.Equal(t, 2, rows[0].Key)
	assert.Equal(t, 100.0, *rows[0].Cost)
	assert.Equal(t, "6 months", rows[0].Frequency)
	assert.Equal(t, "2025-01-01", rows[0].Schedule.String())
	assert.Equal(t, NotAvailable, rows[0].SupplierName)
	assert.Equal(t, NotAvailable, rows[0].DisciplineName)

	assert.Equal(t, 9, rows[1].Key)
	assert.Equal(t, 75.0, *rows[1].Cost)
	assert.Equal(t, "1 years", rows[1].Frequency)
	assert.Equal(t, "Roofers Ltd", rows[1].SupplierName)
}

func TestProjectServicePlanRows_Empty(t *testing.T) {
	t.Parallel()

	rows := ProjectServicePlanRows([]domain.ServicePlan{{ID: 1}})
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func newServicePlanService(t *testing.T) (*ServicePlanService, *worker.Pools) {
	t.Helper()
	pools := testutil.Pools(t)
	return NewServicePlanService(testutil.SeededProvider(t), pools.Mutation), pools
}

func TestServicePlanService_Rows(t *testing.T) {
	svc, _ := newServicePlanService(t)

	rows, err := svc.Rows(context.Background())
	require.NoError(t, err)

	var keys []int
	for _, r := range rows {
		keys = append(keys, r.Key)
	}
	assert.Equal(t, []int{400, 401, 402, 403, 404}, keys)

	idx := IndexRows(rows)
	assert.Equal(t, "CoolAir Services", idx[400].SupplierName)
	assert.Equal(t, "Mechanical", idx[400].DisciplineName)
	assert.Equal(t, "Central Library", idx[400].BuildingName)
	assert.Equal(t, "Northwind Estates", idx[400].OrgName)

	// 401 inherits frequency, supplier and schedule from its plan.
	assert.Equal(t, 300.0, *idx[401].Cost)
	assert.Equal(t, "3 months", idx[401].Frequency)
	assert.Equal(t, "CoolAir Services", idx[401].SupplierName)
	assert.Equal(t, "2025-01-10", idx[401].Schedule.String())

	assert.Equal(t, "Harbour Trust", idx[403].OrgName)
	assert.Equal(t, "Brightline Electrical", idx[403].SupplierName)
}
