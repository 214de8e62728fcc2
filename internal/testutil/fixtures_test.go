package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDataset_Estate(t *testing.T) {
	ds := LoadDataset(t, EstateFixture)

	assert.Len(t, ds.Organizations, 2)
	assert.Len(t, ds.Buildings, 3)
	require.Len(t, ds.ServicePlans, 3)
	assert.Len(t, ds.ServicePlans[0].BuildingPlans, 2)
	assert.Equal(t, "2025-02-03", ds.ServicePlans[0].BuildingPlans[0].ScheduleDate.String())
	require.NotNil(t, ds.ServicePlans[0].Cost)
	assert.InDelta(t, 450.0, *ds.ServicePlans[0].Cost, 0.001)
	require.NotNil(t, ds.Assets[0].PPMDisciplineID)
	assert.Equal(t, 2, *ds.Assets[0].PPMDisciplineID)
}

func TestSeededProvider_JoinsBuildingPlans(t *testing.T) {
	p := SeededProvider(t)

	plans, err := p.ServicePlanRows(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 3)
	require.Len(t, plans[0].BuildingPlans, 2)
	assert.Equal(t, 300, plans[0].BuildingPlans[0].PlanID)
	require.NotNil(t, plans[0].BuildingPlans[0].Building)
	assert.Equal(t, "Central Library", plans[0].BuildingPlans[0].Building.Name)
	assert.Equal(t, "CoolAir Services", plans[0].SupplierName())
}

func TestDecodeYAML_InvalidInput(t *testing.T) {
	var out map[string]any
	assert.Error(t, DecodeYAML([]byte("a: [unterminated"), &out))
}
