package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppmdesk.io/ppmdesk/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestProjectAssetOverview(t *testing.T) {
	t.Parallel()

	overview := []domain.AssetOverview{
		{AssetID: 1, AssetName: "Chiller", LocationName: "Basement", BuildingName: "HQ", OrgName: "Acme"},
		{AssetID: 2, AssetName: "Pump", LocationName: "Basement", BuildingName: "HQ", OrgName: "Acme"},
		{AssetID: 3, AssetName: "Lift", LocationName: "Core", BuildingName: "HQ", OrgName: "Acme"},
		{AssetID: 4, AssetName: "Orphan", LocationName: "Roof", BuildingName: "HQ", OrgName: "Acme"},
	}
	details := []domain.Asset{
		{ID: 1, Manufacturer: "Carrier", CategoryID: intPtr(7), Status: true},
		{ID: 2, Deleted: true},
		{ID: 3, Archived: true, CategoryID: intPtr(99)},
	}
	categories := []domain.AssetCategory{{
		ID:   7,
		Name: "Chiller",
		Type: &domain.AssetType{Name: "Cooling", Group: &domain.AssetGroup{Name: "Mechanical"}},
	}}

	rows := ProjectAssetOverview(overview, details, categories)
	require.Len(t, rows, 3)

	assert.Equal(t, 1, rows[0].AssetID)
	assert.Equal(t, "Carrier", rows[0].Manufacturer)
	assert.Equal(t, "Chiller", rows[0].CategoryName)
	assert.Equal(t, "Cooling", rows[0].TypeName)
	assert.Equal(t, "Mechanical", rows[0].GroupName)
	assert.True(t, rows[0].Status)

	// Unknown category keeps the id but no names.
	assert.Equal(t, 3, rows[1].AssetID)
	require.NotNil(t, rows[1].CategoryID)
	assert.Equal(t, 99, *rows[1].CategoryID)
	assert.Empty(t, rows[1].CategoryName)
	assert.True(t, rows[1].Archived)

	// No detail row at all.
	assert.Equal(t, 4, rows[2].AssetID)
	assert.Equal(t, "Orphan", rows[2].AssetName)
	assert.False(t, rows[2].Archived)
	assert.Empty(t, rows[2].Manufacturer)
}

func TestProjectAssetOverview_Empty(t *testing.T) {
	t.Parallel()

	rows := ProjectAssetOverview(nil, nil, nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestFilterArchived(t *testing.T) {
	t.Parallel()

	rows := []AssetRow{
		{AssetID: 1},
		{AssetID: 2, Archived: true},
		{AssetID: 3},
	}

	tests := []struct {
		name     string
		archived bool
		want     []int
	}{
		{name: "active only", archived: false, want: []int{1, 3}},
		{name: "archived only", archived: true, want: []int{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []int
			for _, r := range FilterArchived(rows, tt.archived) {
				got = append(got, r.AssetID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
