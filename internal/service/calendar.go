package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"ppmdesk.io/ppmdesk/internal/domain"
	"ppmdesk.io/ppmdesk/internal/pkg/logger"
	"ppmdesk.io/ppmdesk/internal/provider"
)

// CalendarEvent is one scheduled visit: a service plan at one building.
type CalendarEvent struct {
	// ID is the building service plan key.
	ID    int               `json:"id"`
	Title string            `json:"title"`
	Start domain.Date       `json:"start"`
	Meta  CalendarEventMeta `json:"meta"`
}

// CalendarEventMeta is the event side panel.
type CalendarEventMeta struct {
	PlanID         int             `json:"ppm_id"`
	Description    string          `json:"ppm_description,omitempty"`
	DisciplineName string          `json:"disc_name"`
	BuildingID     int             `json:"bld_id"`
	BuildingName   string          `json:"bld_name"`
	Assets         []CalendarAsset `json:"assets"`
}

// CalendarAsset is an asset covered by the event's plan.
type CalendarAsset struct {
	ID   int    `json:"as_id"`
	Name string `json:"as_name"`
}

// CalendarBuilding is a building filter option.
type CalendarBuilding struct {
	ID   int    `json:"bld_id"`
	Name string `json:"bld_name"`
}

// CalendarView is the calendar response: filtered events plus filter options.
type CalendarView struct {
	Events      []CalendarEvent    `json:"events"`
	Disciplines []string           `json:"disciplines"`
	Buildings   []CalendarBuilding `json:"buildings"`
}

// ProjectCalendarEvents emits exactly one event per building link. The event
// starts on the link's own schedule date, which is zero (start: null) for an
// unscheduled link. Its asset list holds only the assets linked to the
// owning plan. Building names come from the flat list, falling back to the
// nested building.
func ProjectCalendarEvents(plans []domain.ServicePlan, buildings []domain.Building) []CalendarEvent {
	names := make(map[int]string, len(buildings))
	for _, b := range buildings {
		names[b.ID] = b.Name
	}

	var events []CalendarEvent
	for _, p := range plans {
		assets := make([]CalendarAsset, 0, len(p.AssetPlans))
		for _, ap := range p.AssetPlans {
			if ap.PlanID != 0 && ap.PlanID != p.ID {
				continue
			}
			a := CalendarAsset{ID: ap.AssetID}
			if ap.Asset != nil {
				a.Name = ap.Asset.Name
			}
			assets = append(assets, a)
		}

		for _, bsp := range p.BuildingPlans {
			name, ok := names[bsp.BuildingID]
			if !ok && bsp.Building != nil {
				name = bsp.Building.Name
			}
			events = append(events, CalendarEvent{
				ID:    bsp.Key,
				Title: p.ServiceName,
				Start: bsp.ScheduleDate,
				Meta: CalendarEventMeta{
					PlanID:         p.ID,
					Description:    p.Description,
					DisciplineName: p.DisciplineName(),
					BuildingID:     bsp.BuildingID,
					BuildingName:   name,
					Assets:         append(make([]CalendarAsset, 0, len(assets)), assets...),
				},
			})
		}
	}
	return events
}

// CalendarFilter narrows the event list. Zero fields do not filter.
type CalendarFilter struct {
	// Start is inclusive, End is exclusive.
	Start      domain.Date
	End        domain.Date
	Discipline string
	Building   string
}

// ParseCalendarFilter parses query-string values. Dates are YYYY-MM-DD.
func ParseCalendarFilter(start, end, discipline, building string) (CalendarFilter, error) {
	f := CalendarFilter{Discipline: discipline, Building: building}
	var err error
	if start != "" {
		if f.Start, err = domain.ParseDate(start); err != nil {
			return f, fieldError("start", "datetime", "start must be a YYYY-MM-DD date")
		}
	}
	if end != "" {
		if f.End, err = domain.ParseDate(end); err != nil {
			return f, fieldError("end", "datetime", "end must be a YYYY-MM-DD date")
		}
	}
	if !f.Start.IsZero() && !f.End.IsZero() && !f.Start.Before(f.End) {
		return f, fieldError("end", "gtfield", "end must be after start")
	}
	return f, nil
}

// FilterCalendarEvents applies the date window and the exact-name
// discipline and building filters together. Unscheduled events fall outside
// any date window.
func FilterCalendarEvents(events []CalendarEvent, f CalendarFilter) []CalendarEvent {
	windowed := !f.Start.IsZero() || !f.End.IsZero()
	out := make([]CalendarEvent, 0, len(events))
	for _, e := range events {
		if windowed && e.Start.IsZero() {
			continue
		}
		if !f.Start.IsZero() && e.Start.Before(f.Start) {
			continue
		}
		if !f.End.IsZero() && !e.Start.Before(f.End) {
			continue
		}
		if f.Discipline != "" && e.Meta.DisciplineName != f.Discipline {
			continue
		}
		if f.Building != "" && e.Meta.BuildingName != f.Building {
			continue
		}
		out = append(out, e)
	}
	return out
}

// CalendarService serves the PPM calendar.
type CalendarService struct {
	plans provider.ServicePlanProvider
}

// NewCalendarService creates a new CalendarService.
func NewCalendarService(plans provider.ServicePlanProvider) *CalendarService {
	return &CalendarService{plans: plans}
}

// Events loads the calendar and applies f.
func (s *CalendarService) Events(ctx context.Context, f CalendarFilter) (*CalendarView, error) {
	data, err := s.plans.CalendarPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("load calendar: %w", err)
	}

	events := FilterCalendarEvents(ProjectCalendarEvents(data.Plans, data.Buildings), f)
	// Scheduled events by start date, unscheduled ones last.
	sort.SliceStable(events, func(i, j int) bool {
		if ui, uj := events[i].Start.IsZero(), events[j].Start.IsZero(); ui != uj {
			return uj
		}
		if !events[i].Start.Equal(events[j].Start.Time) {
			return events[i].Start.Before(events[j].Start)
		}
		return events[i].ID < events[j].ID
	})

	view := &CalendarView{
		Events:      events,
		Disciplines: make([]string, 0, len(data.Disciplines)),
		Buildings:   make([]CalendarBuilding, 0, len(data.Buildings)),
	}
	for _, d := range data.Disciplines {
		view.Disciplines = append(view.Disciplines, d.Name)
	}
	for _, b := range data.Buildings {
		view.Buildings = append(view.Buildings, CalendarBuilding{ID: b.ID, Name: b.Name})
	}
	return view, nil
}

// Reschedule moves one building link to date and returns the refetched,
// filtered calendar. Nothing is patched locally.
func (s *CalendarService) Reschedule(ctx context.Context, bspKey int, date string, f CalendarFilter) (*CalendarView, error) {
	d, err := domain.ParseDate(date)
	if err != nil {
		return nil, fieldError("date", "datetime", "date must be a YYYY-MM-DD date")
	}
	if err := s.plans.RescheduleBuildingServicePlan(ctx, bspKey, d); err != nil {
		return nil, fmt.Errorf("reschedule: %w", err)
	}
	logger.FromContext(ctx).Info("Building service plan rescheduled",
		zap.Int("ppm_bsp_key", bspKey),
		zap.String("date", d.String()),
	)
	return s.Events(ctx, f)
}
