package api

import (
	"net/http"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		commands: cmds,
		queries:  q,
	}
}

// @Summary Create booking
// @Description Dates accept RFC3339 or YYYY-MM-DD (UTC). Overlapping bookings on the same property are rejected with 409.
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response{detail=resdto.ConflictDetail}
// @Router /properties/{id}/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	propertyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := h.commands.CreateBooking(c.Request.Context(), userID, propertyID, commands.CreateBookingInput{
		StartDate:    req.StartDate.Time,
		EndDate:      req.EndDate.Time,
		Type:         req.Type,
		Observations: req.Observations,
		GuestCount:   req.GuestCount,
		Guests:       req.Guests(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description Bookings of the property ordered by start date
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id}/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	propertyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	views, err := h.queries.ListBookingsForProperty(c.Request.Context(), userID, propertyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get booking
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Property ID"
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /properties/{id}/bookings/{bookingId} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, propertyID, bookingID, ok := bookingParams(c)
	if !ok {
		return
	}

	view, err := h.queries.GetBooking(c.Request.Context(), userID, propertyID, bookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Update booking
// @Description Partial update. The booking's own previous range never counts as a conflict.
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param bookingId path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Fields to change"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response{detail=resdto.ConflictDetail}
// @Router /properties/{id}/bookings/{bookingId} [patch]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	userID, propertyID, bookingID, ok := bookingParams(c)
	if !ok {
		return
	}

	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := h.commands.UpdateBooking(c.Request.Context(), userID, propertyID, bookingID, commands.UpdateBookingInput{
		StartDate:    req.StartDateField(),
		EndDate:      req.EndDateField(),
		Type:         req.Type,
		Observations: req.Observations,
		GuestCount:   req.GuestCount,
		Guests:       req.GuestsField(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Delete booking
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param bookingId path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /properties/{id}/bookings/{bookingId} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	userID, propertyID, bookingID, ok := bookingParams(c)
	if !ok {
		return
	}

	if err := h.commands.DeleteBooking(c.Request.Context(), userID, propertyID, bookingID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bookingParams(c *gin.Context) (userID, propertyID, bookingID uuid.UUID, ok bool) {
	if userID, ok = callerID(c); !ok {
		return
	}
	if propertyID, ok = uuidParam(c, "id"); !ok {
		return
	}
	bookingID, ok = uuidParam(c, "bookingId")
	return
}
