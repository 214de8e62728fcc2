package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppmdesk.io/ppmdesk/internal/domain"
	apperrors "ppmdesk.io/ppmdesk/internal/pkg/errors"
	"ppmdesk.io/ppmdesk/internal/testutil"
)

func eventIDs(events []CalendarEvent) []int {
	ids := make([]int, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestProjectCalendarEvents(t *testing.T) {
	t.Parallel()

	plans := []domain.ServicePlan{
		{
			ID:          1,
			ServiceName: "Boiler service",
			Discipline:  &domain.Discipline{Name: "Mechanical"},
			BuildingPlans: []domain.BuildingServicePlan{
				{Key: 10, BuildingID: 5, ScheduleDate: domain.MustDate("2025-06-01")},
				{Key: 11, BuildingID: 6, Building: &domain.Building{Name: "Nested Name"}, ScheduleDate: domain.MustDate("2025-07-01")},
				{Key: 12, BuildingID: 5},
			},
			AssetPlans: []domain.AssetServicePlan{
				{AssetID: 100, PlanID: 1, Asset: &domain.Asset{Name: "Boiler A"}},
				{AssetID: 101, PlanID: 2, Asset: &domain.Asset{Name: "Other plan"}},
			},
		},
		{
			ID:          2,
			ServiceName: "Lift inspection",
			BuildingPlans: []domain.BuildingServicePlan{
				{Key: 20, BuildingID: 5, ScheduleDate: domain.MustDate("2025-06-15")},
			},
		},
	}
	buildings := []domain.Building{{ID: 5, Name: "Town Hall"}}

	events := ProjectCalendarEvents(plans, buildings)
	require.Equal(t, []int{10, 11, 12, 20}, eventIDs(events))

	first := events[0]
	assert.Equal(t, "Boiler service", first.Title)
	assert.Equal(t, "2025-06-01", first.Start.String())
	assert.Equal(t, "Mechanical", first.Meta.DisciplineName)
	assert.Equal(t, "Town Hall", first.Meta.BuildingName)
	assert.Equal(t, []CalendarAsset{{ID: 100, Name: "Boiler A"}}, first.Meta.Assets)

	assert.Equal(t, "Nested Name", events[1].Meta.BuildingName)

	unscheduled := events[2]
	assert.True(t, unscheduled.Start.IsZero())
	assert.Equal(t, "Town Hall", unscheduled.Meta.BuildingName)
	assert.Equal(t, []CalendarAsset{{ID: 100, Name: "Boiler A"}}, unscheduled.Meta.Assets)

	assert.Empty(t, events[3].Meta.Assets)
	assert.Empty(t, events[3].Meta.DisciplineName)
}

func TestProjectCalendarEvents_OneEventPerBuildingLink(t *testing.T) {
	t.Parallel()

	plans := []domain.ServicePlan{{
		ID:          7,
		ServiceName: "Gutter clearance",
		BuildingPlans: []domain.BuildingServicePlan{
			{Key: 70, BuildingID: 1, ScheduleDate: domain.MustDate("2025-09-01")},
			{Key: 71, BuildingID: 2},
		},
	}}

	events := ProjectCalendarEvents(plans, nil)
	require.Len(t, events, len(plans[0].BuildingPlans))
	assert.Equal(t, []int{70, 71}, eventIDs(events))

	// Only a date window drops the unscheduled link.
	window := CalendarFilter{Start: domain.MustDate("2025-01-01"), End: domain.MustDate("2026-01-01")}
	assert.Equal(t, []int{70}, eventIDs(FilterCalendarEvents(events, window)))
	assert.Equal(t, []int{70, 71}, eventIDs(FilterCalendarEvents(events, CalendarFilter{})))
}

func TestFilterCalendarEvents(t *testing.T) {
	t.Parallel()

	events := []CalendarEvent{
		{ID: 1, Start: domain.MustDate("2025-01-31"), Meta: CalendarEventMeta{DisciplineName: "Mechanical", BuildingName: "A"}},
		{ID: 2, Start: domain.MustDate("2025-02-01"), Meta: CalendarEventMeta{DisciplineName: "Mechanical", BuildingName: "B"}},
		{ID: 3, Start: domain.MustDate("2025-02-14"), Meta: CalendarEventMeta{DisciplineName: "Electrical", BuildingName: "A"}},
		{ID: 4, Start: domain.MustDate("2025-03-01"), Meta: CalendarEventMeta{DisciplineName: "Mechanical", BuildingName: "A"}},
	}
	feb := CalendarFilter{Start: domain.MustDate("2025-02-01"), End: domain.MustDate("2025-03-01")}

	tests := []struct {
		name   string
		filter CalendarFilter
		want   []int
	}{
		{name: "no filter", filter: CalendarFilter{}, want: []int{1, 2, 3, 4}},
		{name: "window is half open", filter: feb, want: []int{2, 3}},
		{name: "start only", filter: CalendarFilter{Start: domain.MustDate("2025-02-14")}, want: []int{3, 4}},
		{name: "discipline", filter: CalendarFilter{Discipline: "Mechanical"}, want: []int{1, 2, 4}},
		{name: "building", filter: CalendarFilter{Building: "A"}, want: []int{1, 3, 4}},
		{
			name:   "filters compose",
			filter: CalendarFilter{Start: feb.Start, End: feb.End, Discipline: "Mechanical", Building: "A"},
			want:   []int{},
		},
		{name: "unknown discipline", filter: CalendarFilter{Discipline: "Plumbing"}, want: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, eventIDs(FilterCalendarEvents(events, tt.filter)))
		})
	}
}

func TestParseCalendarFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start, end string
		wantField  string
	}{
		{name: "empty", start: "", end: ""},
		{name: "window", start: "2025-01-01", end: "2025-02-01"},
		{name: "bad start", start: "01/01/2025", wantField: "start"},
		{name: "bad end", start: "2025-01-01", end: "2025-13-01", wantField: "end"},
		{name: "end before start", start: "2025-02-01", end: "2025-01-01", wantField: "end"},
		{name: "empty window", start: "2025-02-01", end: "2025-02-01", wantField: "end"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCalendarFilter(tt.start, tt.end, "", "")
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			appErr, ok := apperrors.IsAppError(err)
			require.True(t, ok)
			require.Len(t, appErr.FieldErrors, 1)
			assert.Equal(t, tt.wantField, appErr.FieldErrors[0].Field)
		})
	}
}

func TestCalendarService_Events(t *testing.T) {
	mock := testutil.SeededProvider(t)
	svc := NewCalendarService(mock)

	view, err := svc.Events(context.Background(), CalendarFilter{})
	require.NoError(t, err)

	// Ordered by start; 401 has no schedule date and comes last.
	assert.Equal(t, []int{400, 404, 402, 403, 401}, eventIDs(view.Events))
	assert.True(t, view.Events[4].Start.IsZero())
	assert.Equal(t, []string{"Electrical", "Fire Safety", "Mechanical"}, view.Disciplines)
	require.Len(t, view.Buildings, 3)
	assert.Equal(t, "Central Library", view.Buildings[0].Name)

	ahu := view.Events[0]
	assert.Equal(t, "AHU quarterly service", ahu.Title)
	assert.Equal(t, "Central Library", ahu.Meta.BuildingName)
	assert.Equal(t, []CalendarAsset{{ID: 200, Name: "AHU-01"}, {ID: 202, Name: "Roof Extract Fan"}}, ahu.Meta.Assets)
}

func TestCalendarService_Events_Filtered(t *testing.T) {
	mock := testutil.SeededProvider(t)
	svc := NewCalendarService(mock)

	f, err := ParseCalendarFilter("2025-02-01", "2025-04-01", "", "Harbour House")
	require.NoError(t, err)

	view, err := svc.Events(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, []int{404}, eventIDs(view.Events))
	// Option lists are never filtered.
	assert.Len(t, view.Disciplines, 3)
}

func TestCalendarService_Reschedule(t *testing.T) {
	mock := testutil.SeededProvider(t)
	svc := NewCalendarService(mock)
	ctx := context.Background()

	view, err := svc.Reschedule(ctx, 400, "2025-05-01", CalendarFilter{})
	require.NoError(t, err)
	assert.Equal(t, []int{404, 402, 403, 400, 401}, eventIDs(view.Events))

	bsp, ok := mock.BuildingPlan(400)
	require.True(t, ok)
	assert.Equal(t, "2025-05-01", bsp.ScheduleDate.String())

	calls := mock.Calls()
	assert.Equal(t, []string{"RescheduleBuildingServicePlan", "CalendarPlans"}, calls[len(calls)-2:])
}

func TestCalendarService_Reschedule_Invalid(t *testing.T) {
	mock := testutil.SeededProvider(t)
	svc := NewCalendarService(mock)
	ctx := context.Background()

	_, err := svc.Reschedule(ctx, 400, "2025-02-30", CalendarFilter{})
	assert.Equal(t, apperrors.CodeValidationFailed, apperrors.CodeOf(err))
	assert.Empty(t, mock.Calls())

	_, err = svc.Reschedule(ctx, 999, "2025-02-28", CalendarFilter{})
	assert.Equal(t, apperrors.CodeBuildingPlanNotFound, apperrors.CodeOf(err))
}
