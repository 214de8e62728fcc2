package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"ppmdesk.io/ppmdesk/internal/api/generated"
	"ppmdesk.io/ppmdesk/internal/service"
)

// calendarFilter parses the shared calendar query string.
func calendarFilter(start, end, discipline, building *string) (service.CalendarFilter, error) {
	return service.ParseCalendarFilter(valueOf(start), valueOf(end), valueOf(discipline), valueOf(building))
}

// ListCalendarEvents handles
// GET /calendar/events?start=&end=&discipline=&building=.
func (s *Server) ListCalendarEvents(c *gin.Context, params generated.ListCalendarEventsParams) {
	f, err := calendarFilter(params.Start, params.End, params.Discipline, params.Building)
	if err != nil {
		fail(c, err)
		return
	}
	view, err := latest(c, s, "calendar", func(ctx context.Context) (*service.CalendarView, error) {
		return s.calendar.Events(ctx, f)
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// RescheduleCalendarEvent handles PUT /calendar/events/{bsp_key}/schedule.
// The response is the refetched calendar for the same query string.
func (s *Server) RescheduleCalendarEvent(c *gin.Context, bspKey int, params generated.RescheduleCalendarEventParams) {
	f, err := calendarFilter(params.Start, params.End, params.Discipline, params.Building)
	if err != nil {
		fail(c, err)
		return
	}
	var req generated.RescheduleCalendarEventJSONRequestBody
	if !bindJSON(c, &req) {
		return
	}
	view, err := s.calendar.Reschedule(c.Request.Context(), bspKey, req.PpmBScheduleDate, f)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
