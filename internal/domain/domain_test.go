package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"calendar date", `"2025-03-14"`, "2025-03-14", false},
		{"timestamp", `"2025-03-14T22:10:00Z"`, "2025-03-14", false},
		{"null", `null`, "", false},
		{"empty string", `""`, "", false},
		{"garbage", `"14/03/2025"`, "", true},
		{"number", `20250314`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDate_MarshalOmitsZero(t *testing.T) {
	plan := BuildingServicePlan{Key: 7, PlanID: 1, BuildingID: 2}
	b, err := json.Marshal(plan)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "ppm_b_schedule_date")

	plan.ScheduleDate = MustDate("2025-06-01")
	b, err = json.Marshal(plan)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"ppm_b_schedule_date":"2025-06-01"`)
}

func TestNewDate_TruncatesTime(t *testing.T) {
	d := NewDate(time.Date(2025, 1, 2, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "2025-01-02", d.String())
	assert.True(t, d.Before(MustDate("2025-01-03")))
	assert.True(t, d.After(MustDate("2025-01-01")))
}

func TestServicePlan_NestedNames(t *testing.T) {
	var p ServicePlan
	assert.Empty(t, p.DisciplineName())
	assert.Empty(t, p.SupplierName())

	p.Discipline = &Discipline{ID: 1, Name: "Electrical"}
	p.Supplier = &Supplier{ID: 2, Name: "Acme FM"}
	assert.Equal(t, "Electrical", p.DisciplineName())
	assert.Equal(t, "Acme FM", p.SupplierName())
}
