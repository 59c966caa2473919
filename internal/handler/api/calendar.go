package api

import (
	"net/http"
	"strconv"
	"strings"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const calendarContentType = "text/calendar; charset=utf-8"

type CalendarHandler struct {
	calendars    queries.CalendarQueries
	availability queries.AvailabilityQueries
	sources      commands.CalendarSourceCommands
	sync         commands.CalendarSyncCommands
}

func NewCalendarHandler(
	calendars queries.CalendarQueries,
	availability queries.AvailabilityQueries,
	sources commands.CalendarSourceCommands,
	sync commands.CalendarSyncCommands,
) *CalendarHandler {
	return &CalendarHandler{
		calendars:    calendars,
		availability: availability,
		sources:      sources,
		sync:         sync,
	}
}

// @Summary Export property calendar
// @Description iCalendar feed with one all-day event per booking
// @Tags calendar
// @Security BearerAuth
// @Produce text/calendar
// @Param id path string true "Property ID"
// @Success 200 {string} string
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id}/calendar.ics [get]
func (h *CalendarHandler) ExportProperty(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	propertyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	feed, err := h.calendars.ExportProperty(c.Request.Context(), userID, propertyID)
	if err != nil {
		respondError(c, err)
		return
	}
	writeFeed(c, feed)
}

// @Summary Public calendar feed
// @Description Token protected feed meant to be imported by OTAs
// @Tags calendar
// @Produce text/calendar
// @Param token path string true "Export token, optionally suffixed with .ics"
// @Success 200 {string} string
// @Failure 404 {object} httperr.Response
// @Router /calendar/{token} [get]
func (h *CalendarHandler) ExportByToken(c *gin.Context) {
	token := strings.TrimSuffix(c.Param("token"), ".ics")

	feed, err := h.calendars.ExportByToken(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}
	writeFeed(c, feed)
}

// @Summary List calendar sources
// @Tags calendar
// @Security BearerAuth
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {array} resdto.CalendarSourceResponse
// @Router /properties/{id}/calendar-sources [get]
func (h *CalendarHandler) ListSources(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	propertyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	views, err := h.calendars.ListSources(c.Request.Context(), userID, propertyID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := resdto.FromCalendarSourceViews(views)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Add calendar source
// @Description Registers an external iCalendar URL whose events are imported as availabilities
// @Tags calendar
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body reqdto.CreateCalendarSourceRequest true "Source"
// @Success 201 {object} resdto.CalendarSourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /properties/{id}/calendar-sources [post]
func (h *CalendarHandler) AddSource(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	propertyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.CreateCalendarSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := h.sources.AddSource(c.Request.Context(), userID, propertyID, commands.AddCalendarSourceInput{
		Name:    req.Name,
		URL:     req.URL,
		Enabled: req.Enabled,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := resdto.FromCalendarSourceView(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Remove calendar source
// @Description Removes the source and the availabilities imported from it
// @Tags calendar
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param sourceId path string true "Source ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /properties/{id}/calendar-sources/{sourceId} [delete]
func (h *CalendarHandler) RemoveSource(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	propertyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	sourceID, ok := uuidParam(c, "sourceId")
	if !ok {
		return
	}

	if err := h.sources.RemoveSource(c.Request.Context(), userID, propertyID, sourceID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Sync calendar source
// @Description Fetches the source now. Fetch or parse failures are reported in the result, not as an HTTP error.
// @Tags calendar
// @Security BearerAuth
// @Produce json
// @Param id path string true "Property ID"
// @Param sourceId path string true "Source ID"
// @Success 200 {object} resdto.SyncResultResponse
// @Failure 404 {object} httperr.Response
// @Router /properties/{id}/calendar-sources/{sourceId}/sync [post]
func (h *CalendarHandler) SyncSource(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	propertyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	sourceID, ok := uuidParam(c, "sourceId")
	if !ok {
		return
	}

	result, err := h.sync.SyncSource(c.Request.Context(), userID, propertyID, sourceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSyncResult(result))
}

// @Summary List availabilities
// @Description Advisory blocks imported from external calendars
// @Tags calendar
// @Security BearerAuth
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {array} resdto.AvailabilityResponse
// @Router /properties/{id}/availabilities [get]
func (h *CalendarHandler) ListAvailabilities(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	propertyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	views, err := h.availability.ListForProperty(c.Request.Context(), userID, propertyID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := resdto.FromAvailabilityViews(views)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func writeFeed(c *gin.Context, feed *queries.CalendarFeed) {
	c.Header("Content-Disposition", `inline; filename="`+feed.Filename+`"`)
	c.Header("X-Event-Count", strconv.Itoa(feed.EventCount))
	c.Data(http.StatusOK, calendarContentType, []byte(feed.Content))
}
